package interp

import "github.com/gogpu/ggmap"

// Option configures an InverseDistanceWeight renderer.
//
// Example:
//
//	idw := interp.New(
//	    interp.WithResolution(4),
//	    interp.WithRadius(300),
//	)
type Option func(*InverseDistanceWeight)

// WithRadius sets the influence radius in screen units. Zero disables it.
func WithRadius(radius float64) Option {
	return func(r *InverseDistanceWeight) {
		r.Radius = radius
	}
}

// WithResolution sets the grid cell size in screen units.
func WithResolution(res float64) Option {
	return func(r *InverseDistanceWeight) {
		r.Resolution = res
	}
}

// WithGradient sets the color stops.
func WithGradient(stops []ColorStop) Option {
	return func(r *InverseDistanceWeight) {
		r.Gradient = append([]ColorStop(nil), stops...)
	}
}

// WithDecay sets the distance decay function.
func WithDecay(d DecayFunc) Option {
	return func(r *InverseDistanceWeight) {
		r.Decay = d
	}
}

// WithHoneycomb enables the honeycomb strategy with the given side length.
func WithHoneycomb(side float64) Option {
	return func(r *InverseDistanceWeight) {
		r.Honey = true
		r.HoneySide = side
	}
}

// WithHoneyStroke sets the hexagon outline color and width.
func WithHoneyStroke(c ggmap.RGBA, width float64) Option {
	return func(r *InverseDistanceWeight) {
		r.HoneyStroke = c
		r.HoneyLineWidth = width
	}
}

// WithResample sets the grid resampling mode.
func WithResample(m Resample) Option {
	return func(r *InverseDistanceWeight) {
		r.Resample = m
	}
}

// WithThin sets the sample thinning distance in screen units.
func WithThin(dist float64) Option {
	return func(r *InverseDistanceWeight) {
		r.Thin = dist
	}
}

// WithValueRange fixes the normalization range.
func WithValueRange(vr ValueRange) Option {
	return func(r *InverseDistanceWeight) {
		if vr.Min <= vr.Max {
			r.valueRange = vr
			r.fixedRange = true
		}
	}
}
