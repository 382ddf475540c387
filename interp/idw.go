package interp

import (
	"fmt"
	"time"

	"github.com/gogpu/ggmap"
	"github.com/gogpu/ggmap/feature"
	"github.com/gogpu/ggmap/projection"
)

// Defaults used by New.
const (
	DefaultResolution     = 10
	DefaultHoneySide      = 10
	DefaultHoneyLineWidth = 1
)

// DefaultHoneyStroke is the default hexagon outline, semi-transparent white.
var DefaultHoneyStroke = ggmap.MustParseHex("#ffffff88")

// InverseDistanceWeight renders an IDW surface from a point feature class.
//
// The exported fields are the surface configuration; changes take effect on
// the next Draw. Generate binds a dataset and must be called again whenever
// the feature class or its values change.
//
// InverseDistanceWeight implements ggmap.Raster. It is not safe for
// concurrent use.
type InverseDistanceWeight struct {
	// Radius limits which samples influence a cell, in screen units.
	// Zero or negative means every sample contributes.
	Radius float64

	// Resolution is the grid cell size in screen units. Must be positive
	// for the grid strategy.
	Resolution float64

	// Gradient is the color ramp definition.
	Gradient []ColorStop

	// Decay maps distance to weight.
	Decay DecayFunc

	// Honey selects the honeycomb strategy instead of the grid.
	Honey bool

	// HoneySide is the hexagon side length in screen units.
	HoneySide float64

	// HoneyStroke and HoneyLineWidth style the hexagon outlines.
	// A zero line width disables the outline.
	HoneyStroke    ggmap.RGBA
	HoneyLineWidth float64

	// Resample selects how the grid buffer is scaled to the surface.
	Resample Resample

	// Thin drops samples closer than this many screen units to an earlier
	// sample before weighting. Zero disables thinning.
	Thin float64

	fc         *feature.FeatureClass
	field      feature.Field
	valueRange ValueRange
	fixedRange bool
	ramp       *ColorRamp
}

var _ ggmap.Raster = (*InverseDistanceWeight)(nil)

// New creates a renderer with default configuration: resolution 10, the
// 11-class default gradient, 1/d³ decay, unbounded radius and honeycomb
// side 10 (off).
func New(opts ...Option) *InverseDistanceWeight {
	r := &InverseDistanceWeight{
		Resolution:     DefaultResolution,
		Gradient:       DefaultGradient(),
		Decay:          InverseCube,
		HoneySide:      DefaultHoneySide,
		HoneyStroke:    DefaultHoneyStroke,
		HoneyLineWidth: DefaultHoneyLineWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dynamic reports true: the surface depends on the view and is redrawn on
// every frame.
func (r *InverseDistanceWeight) Dynamic() bool {
	return true
}

// Generate binds fc and field, computes the value range and builds the
// color ramp. On error the previous dataset stays bound.
//
// fc must be a point feature class. Features whose attribute is missing are
// ignored; features with a non-numeric value are ignored and reported at
// warn level. An empty class is valid and renders nothing.
func (r *InverseDistanceWeight) Generate(fc *feature.FeatureClass, field feature.Field) error {
	if fc == nil {
		return fmt.Errorf("%w: interp: nil feature class", ggmap.ErrConfiguration)
	}
	if fc.Type != feature.GeometryPoint && !(fc.Type == feature.GeometryUnknown && fc.Len() == 0) {
		return fmt.Errorf("%w: got %s", ErrNotPointGeometry, fc.Type)
	}

	ramp, err := rampFor(r.Gradient)
	if err != nil {
		return err
	}

	st := scanRange(fc, field)
	if st.Invalid > 0 {
		ggmap.Logger().Warn("interp: non-numeric values ignored",
			"field", field.Name, "count", st.Invalid)
	}

	r.fc = fc
	r.field = field
	r.ramp = ramp
	if !r.fixedRange {
		r.valueRange = st.Range
	}

	ggmap.Logger().Info("interp: generated",
		"field", field.Name,
		"features", fc.Len(),
		"values", st.Valid,
		"missing", st.Missing,
		"min", r.valueRange.Min,
		"max", r.valueRange.Max)
	return nil
}

// SetValueRange fixes the normalization range instead of deriving it from
// the dataset. Useful to keep colors comparable across datasets.
func (r *InverseDistanceWeight) SetValueRange(vr ValueRange) error {
	if vr.Min > vr.Max {
		return fmt.Errorf("%w: interp: value range min %v > max %v", ggmap.ErrConfiguration, vr.Min, vr.Max)
	}
	r.valueRange = vr
	r.fixedRange = true
	return nil
}

// ResetValueRange makes the next Generate derive the range from the data.
func (r *InverseDistanceWeight) ResetValueRange() {
	r.fixedRange = false
}

// ValueRange returns the range used for normalization.
func (r *InverseDistanceWeight) ValueRange() ValueRange {
	return r.valueRange
}

// Generated reports whether a dataset is bound.
func (r *InverseDistanceWeight) Generated() bool {
	return r.ramp != nil
}

// Ramp returns the color ramp built by the last Generate, or nil. Draw uses
// the current Gradient, which may have changed since.
func (r *InverseDistanceWeight) Ramp() *ColorRamp {
	return r.ramp
}

// Samples projects the bound dataset for the canvas transform m, applying
// thinning. It returns nil before Generate.
func (r *InverseDistanceWeight) Samples(proj ggmap.Projection, m ggmap.Matrix) []Sample {
	if r.fc == nil {
		return nil
	}
	if proj == nil {
		proj = projection.WebMercator{}
	}
	samples := ProjectSamples(r.fc, r.field, proj, m, r.valueRange)
	return Thin(samples, r.Thin)
}

// Draw paints the surface onto c.
//
// Samples are projected with proj and the canvas's current transform;
// painting happens in screen space and the canvas transform is restored
// afterwards. A nil proj means Web Mercator. extent and zoom are only
// reported in diagnostics: every sample contributes regardless of extent.
//
// Draw does not modify the renderer.
func (r *InverseDistanceWeight) Draw(c ggmap.Canvas, proj ggmap.Projection, extent ggmap.Bound, zoom float64) error {
	if c == nil {
		return ggmap.ErrNilCanvas
	}
	if !r.Generated() {
		return ErrNotGenerated
	}
	if err := r.validate(); err != nil {
		return err
	}
	if proj == nil {
		proj = projection.WebMercator{}
	}
	if extent.IsZero() {
		extent = proj.Bound()
	}

	ramp, err := rampFor(r.Gradient)
	if err != nil {
		return err
	}

	start := time.Now()
	samples := r.Samples(proj, c.Transform())
	est := NewEstimator(samples, r.Decay, r.Radius)

	var (
		painted int
		mode    = "grid"
	)
	if r.Honey {
		mode = "honeycomb"
		painted, err = r.drawHoneycomb(c, est, ramp)
	} else {
		painted, err = r.drawGrid(c, est, ramp)
	}

	ggmap.Logger().Debug("interp: draw",
		"mode", mode,
		"samples", est.Len(),
		"cells", painted,
		"zoom", zoom,
		"extent", extent,
		"elapsed", time.Since(start))
	return err
}

func (r *InverseDistanceWeight) validate() error {
	if r.Decay == nil {
		return fmt.Errorf("%w: interp: nil decay function", ggmap.ErrConfiguration)
	}
	if r.Honey {
		if !(r.HoneySide > 0) {
			return fmt.Errorf("%w: interp: honeycomb side %v must be positive", ggmap.ErrConfiguration, r.HoneySide)
		}
		return nil
	}
	if !(r.Resolution > 0) {
		return fmt.Errorf("%w: interp: resolution %v must be positive", ggmap.ErrConfiguration, r.Resolution)
	}
	return nil
}
