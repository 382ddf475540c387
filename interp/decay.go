package interp

import "math"

// DecayFunc maps a planar screen distance to a non-negative weight.
// Distances passed in are already clamped to at least MinDistance.
type DecayFunc func(distance float64) float64

// InverseCube is the default decay, 1/d³.
func InverseCube(d float64) float64 {
	return 1 / (d * d * d)
}

// InverseSquare is the classic Shepard decay, 1/d².
func InverseSquare(d float64) float64 {
	return 1 / (d * d)
}

// InversePower returns the decay 1/d^p. Larger p makes the surface follow
// the nearest samples more closely.
func InversePower(p float64) DecayFunc {
	switch p {
	case 2:
		return InverseSquare
	case 3:
		return InverseCube
	}
	return func(d float64) float64 {
		return 1 / math.Pow(d, p)
	}
}
