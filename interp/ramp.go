package interp

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/ggmap"
	"github.com/gogpu/ggmap/internal/lru"
)

// RampSize is the number of entries in a ColorRamp lookup table.
const RampSize = 256

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Step  float64    // Position in gradient, 0.0 to 1.0
	Color ggmap.RGBA // Color at this position
}

// ColorRamp is a fixed 256-entry lookup table built from color stops.
// It is immutable after construction.
type ColorRamp struct {
	table [RampSize]color.NRGBA
}

// NewColorRamp builds the lookup table. Entry i holds the gradient color
// at t = i/255, linearly interpolated between the bracketing stops and
// clamped to the first and last stop outside their range.
//
// Stops may be given in any order; they are sorted on a copy. An empty
// slice fails with ErrEmptyGradient.
func NewColorRamp(stops []ColorStop) (*ColorRamp, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyGradient
	}
	for _, s := range stops {
		if math.IsNaN(s.Step) || s.Step < 0 || s.Step > 1 {
			return nil, fmt.Errorf("%w: step %v", ErrInvalidStop, s.Step)
		}
	}

	sorted := sortStops(stops)
	r := &ColorRamp{}
	for i := range r.table {
		t := float64(i) / (RampSize - 1)
		r.table[i] = colorAtStep(sorted, t).NRGBA()
	}
	return r, nil
}

// sortStops sorts color stops by step. Stops with equal steps keep their
// relative order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Step < sorted[j].Step
	})
	return sorted
}

// colorAtStep interpolates sorted stops at t. RGB channels are blended with
// go-colorful in sRGB space, alpha linearly.
func colorAtStep(stops []ColorStop, t float64) ggmap.RGBA {
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.Step {
		return first.Color
	}
	if t >= last.Step {
		return last.Color
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Step >= t
	})
	s0, s1 := stops[idx-1], stops[idx]
	if s1.Step == s0.Step {
		return s1.Color
	}

	local := (t - s0.Step) / (s1.Step - s0.Step)
	rgb := s0.Color.Colorful().BlendRgb(s1.Color.Colorful(), local)
	return ggmap.RGBA{
		R: rgb.R,
		G: rgb.G,
		B: rgb.B,
		A: s0.Color.A + (s1.Color.A-s0.Color.A)*local,
	}
}

// Index returns table entry i, clamped to [0, 255].
func (r *ColorRamp) Index(i int) color.NRGBA {
	if i < 0 {
		i = 0
	}
	if i >= RampSize {
		i = RampSize - 1
	}
	return r.table[i]
}

// At returns the color for a normalized value. v is clamped to [0, 1]
// and mapped to entry floor(v*255).
func (r *ColorRamp) At(v float64) color.NRGBA {
	return r.table[rampIndex(v)]
}

// rampIndex maps a normalized value to a table index. NaN maps to 0.
func rampIndex(v float64) int {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return RampSize - 1
	}
	return int(math.Floor(v * (RampSize - 1)))
}

// Image renders the ramp as a horizontal legend strip, left = 0, right = 1.
func (r *ColorRamp) Image(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		i := 0
		if width > 1 {
			i = x * (RampSize - 1) / (width - 1)
		}
		c := r.table[i]
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// DefaultGradient returns the 11-class red-yellow-green diverging gradient
// (low values green, high values red).
func DefaultGradient() []ColorStop {
	hexes := []string{
		"#006837", "#1a9850", "#66bd63", "#a6d96a", "#d9ef8b", "#ffffbf",
		"#fee08b", "#fdae61", "#f46d43", "#d73027", "#a50026",
	}
	stops := make([]ColorStop, len(hexes))
	for i, h := range hexes {
		stops[i] = ColorStop{Step: float64(i) / float64(len(hexes)-1), Color: ggmap.MustParseHex(h)}
	}
	return stops
}

// ParseGradient parses a comma-separated gradient description.
//
// Entries are either "step:color" ("0:#006837,0.5:#ffffbf,1:#a50026") or
// bare colors ("#313695,#ffffbf,#a50026"), which are spaced evenly. The two
// forms cannot be mixed.
func ParseGradient(s string) ([]ColorStop, error) {
	parts := strings.Split(s, ",")
	var stops []ColorStop
	explicit := -1
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		stepStr, hex, hasStep := strings.Cut(part, ":")
		if !hasStep {
			hex = stepStr
		}
		switch {
		case explicit == -1:
			explicit = boolToInt(hasStep)
		case (explicit == 1) != hasStep:
			return nil, fmt.Errorf("%w: interp: gradient entry %d mixes stepped and bare colors", ggmap.ErrConfiguration, i)
		}

		c, err := ggmap.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: interp: gradient entry %d: %w", ggmap.ErrConfiguration, i, err)
		}
		stop := ColorStop{Color: c}
		if hasStep {
			stop.Step, err = strconv.ParseFloat(strings.TrimSpace(stepStr), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: interp: gradient entry %d: %w", ggmap.ErrConfiguration, i, err)
			}
		}
		stops = append(stops, stop)
	}

	if len(stops) == 0 {
		return nil, ErrEmptyGradient
	}
	if explicit == 0 {
		for i := range stops {
			if len(stops) > 1 {
				stops[i].Step = float64(i) / float64(len(stops)-1)
			}
		}
	}
	return stops, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ramps memoizes lookup tables by gradient, so a Draw after a gradient
// change or a Generate with a previously seen gradient reuses the table.
var ramps = lru.New[string, *ColorRamp](32)

// rampFor returns the ColorRamp for stops, building it on first use.
func rampFor(stops []ColorStop) (*ColorRamp, error) {
	return ramps.GetOrCreate(stopsKey(stops), func() (*ColorRamp, error) {
		return NewColorRamp(stops)
	})
}

// stopsKey identifies a gradient exactly. Stops are keyed in sorted order
// since the table does not depend on input order.
func stopsKey(stops []ColorStop) string {
	var b strings.Builder
	for _, s := range sortStops(stops) {
		for _, v := range [...]float64{s.Step, s.Color.R, s.Color.G, s.Color.B, s.Color.A} {
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	return b.String()
}
