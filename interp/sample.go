package interp

import (
	"github.com/gogpu/ggmap"
	"github.com/gogpu/ggmap/feature"
)

// Sample is one point observation in screen space with its normalized value.
type Sample struct {
	X, Y  float64
	Value float64
}

// ValueRange is the dataset-wide attribute range used for normalization.
type ValueRange struct {
	Min, Max float64
}

// Degenerate reports whether the range has zero width.
func (r ValueRange) Degenerate() bool {
	return r.Min == r.Max
}

// Normalize maps v to (v-Min)/(Max-Min). A degenerate range maps every
// value to 0.5. Values outside the range are not clamped here; the color
// lookup clamps the final estimate.
func (r ValueRange) Normalize(v float64) float64 {
	if r.Degenerate() {
		return 0.5
	}
	return (v - r.Min) / (r.Max - r.Min)
}

// Extend widens the range to include v.
func (r ValueRange) Extend(v float64) ValueRange {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// rangeStats is the result of scanning a feature class for a field.
type rangeStats struct {
	Range   ValueRange
	Valid   int // features with a numeric value
	Missing int // features without the property
	Invalid int // features with a non-numeric value
}

// scanRange computes the value range of field over the point features of fc.
func scanRange(fc *feature.FeatureClass, field feature.Field) rangeStats {
	var st rangeStats
	for _, f := range fc.Features {
		if _, isPoint := f.Geometry.(feature.Point); !isPoint {
			continue
		}
		v, ok, err := f.Number(field.Name)
		switch {
		case err != nil:
			st.Invalid++
			continue
		case !ok:
			st.Missing++
			continue
		}
		if st.Valid == 0 {
			st.Range = ValueRange{Min: v, Max: v}
		} else {
			st.Range = st.Range.Extend(v)
		}
		st.Valid++
	}
	return st
}

// ProjectSamples projects every point feature carrying a numeric value for
// field to screen space: projection first, then the screen transform m.
// Values are normalized against r. Features without a usable value are
// skipped. Output order follows the feature order.
func ProjectSamples(fc *feature.FeatureClass, field feature.Field, proj ggmap.Projection, m ggmap.Matrix, r ValueRange) []Sample {
	if fc == nil {
		return nil
	}
	samples := make([]Sample, 0, len(fc.Features))
	for _, f := range fc.Features {
		pt, isPoint := f.Geometry.(feature.Point)
		if !isPoint {
			continue
		}
		v, ok, err := f.Number(field.Name)
		if err != nil || !ok {
			continue
		}
		sp := m.TransformPoint(pt.Project(proj))
		samples = append(samples, Sample{X: sp.X, Y: sp.Y, Value: r.Normalize(v)})
	}
	return samples
}
