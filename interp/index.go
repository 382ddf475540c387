package interp

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
)

// Branching factors for the sample R-tree.
const (
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
)

// pointTolerance is the half-size of the box a sample occupies in the
// tree. rtreego rejects zero-length rectangles.
const pointTolerance = 1e-6

// indexedSample is a sample stored in the R-tree. idx is its position in
// the original slice so queries can restore input order.
type indexedSample struct {
	idx  int
	x, y float64
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *indexedSample) Bounds() rtreego.Rect {
	return s.rect
}

func newIndexedSample(idx int, x, y float64) *indexedSample {
	rect, _ := rtreego.NewRect(
		rtreego.Point{x - pointTolerance, y - pointTolerance},
		[]float64{2 * pointTolerance, 2 * pointTolerance},
	)
	return &indexedSample{idx: idx, x: x, y: y, rect: rect}
}

// sampleIndex is a 2D R-tree over screen-space samples.
type sampleIndex struct {
	tree *rtreego.Rtree
}

func newSampleIndex(samples []Sample) *sampleIndex {
	objs := make([]rtreego.Spatial, len(samples))
	for i, s := range samples {
		objs[i] = newIndexedSample(i, s.X, s.Y)
	}
	return &sampleIndex{tree: rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren, objs...)}
}

// candidates appends to buf the indices of samples whose box intersects the
// square of half-size radius around (x, y), sorted ascending.
func (ix *sampleIndex) candidates(x, y, radius float64, buf []int) []int {
	buf = buf[:0]
	if radius <= 0 {
		return buf
	}
	query, err := rtreego.NewRect(rtreego.Point{x - radius, y - radius}, []float64{2 * radius, 2 * radius})
	if err != nil {
		return buf
	}
	for _, obj := range ix.tree.SearchIntersect(query) {
		buf = append(buf, obj.(*indexedSample).idx)
	}
	slices.Sort(buf)
	return buf
}

// Thin drops samples closer than minDist (screen units) to an already kept
// sample, visiting samples in input order. minDist <= 0 returns samples
// unchanged.
//
// Dense clusters otherwise dominate the weighted sum and cost time without
// changing the picture much.
func Thin(samples []Sample, minDist float64) []Sample {
	if minDist <= 0 || len(samples) < 2 {
		return samples
	}

	tree := rtreego.NewTree(2, rtreeMinChildren, rtreeMaxChildren)
	kept := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if tree.Size() > 0 {
			nn, ok := tree.NearestNeighbor(rtreego.Point{s.X, s.Y}).(*indexedSample)
			if ok && math.Hypot(nn.x-s.X, nn.y-s.Y) <= minDist {
				continue
			}
		}
		tree.Insert(newIndexedSample(len(kept), s.X, s.Y))
		kept = append(kept, s)
	}
	return kept
}
