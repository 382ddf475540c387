package interp

import (
	"image/color"
	"math"
)

// MinDistance is the lower clamp applied to sample distances before
// weighting, so a cell sitting on a sample gets a large but finite weight.
const MinDistance = 1

// accumulator sums weighted values for one cell.
type accumulator struct {
	sum   float64
	total float64
}

func (a *accumulator) add(s *Sample, x, y float64, decay DecayFunc, radius float64) {
	d := math.Hypot(s.X-x, s.Y-y)
	if radius > 0 && d > radius {
		return
	}
	w := decay(math.Max(MinDistance, d))
	a.sum += w * s.Value
	a.total += w
}

// mean returns the weighted mean. ok is false when no weight accumulated.
func (a *accumulator) mean() (float64, bool) {
	if !(a.total > 0) {
		return 0, false
	}
	return a.sum / a.total, true
}

// Estimate returns the inverse-distance-weighted mean of samples at (x, y).
// ok is false if the total weight is zero, in particular for no samples.
func Estimate(samples []Sample, x, y float64, decay DecayFunc) (float64, bool) {
	var acc accumulator
	for i := range samples {
		acc.add(&samples[i], x, y, decay, 0)
	}
	return acc.mean()
}

// Estimator evaluates the weighted mean at arbitrary screen points. It is
// built once per draw and shared by both rendering strategies.
//
// With a positive radius, samples farther than radius from the query point
// are ignored and an R-tree limits each query to nearby samples. Candidates
// are visited in input order, so results equal the brute-force sum.
//
// An Estimator is not safe for concurrent use.
type Estimator struct {
	samples []Sample
	decay   DecayFunc
	radius  float64
	index   *sampleIndex
	buf     []int
}

// NewEstimator creates an Estimator. radius <= 0 means unbounded.
func NewEstimator(samples []Sample, decay DecayFunc, radius float64) *Estimator {
	e := &Estimator{samples: samples, decay: decay, radius: radius}
	if radius > 0 && len(samples) > 0 {
		e.index = newSampleIndex(samples)
	}
	return e
}

// Len returns the number of samples.
func (e *Estimator) Len() int {
	return len(e.samples)
}

// At returns the weighted estimate at (x, y).
func (e *Estimator) At(x, y float64) (float64, bool) {
	var acc accumulator
	if e.index == nil {
		for i := range e.samples {
			acc.add(&e.samples[i], x, y, e.decay, e.radius)
		}
		return acc.mean()
	}

	e.buf = e.index.candidates(x, y, e.radius, e.buf)
	for _, i := range e.buf {
		acc.add(&e.samples[i], x, y, e.decay, e.radius)
	}
	return acc.mean()
}

// cellColor maps an estimate to the painted color: the ramp entry at
// floor(clamp(v)*255) with that same index as alpha.
func cellColor(ramp *ColorRamp, v float64) color.NRGBA {
	i := rampIndex(v)
	c := ramp.Index(i)
	c.A = uint8(i)
	return c
}
