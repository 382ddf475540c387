package ggmap

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Bound is an axis-aligned rectangle in projected map units.
// The zero value is treated as "no extent" by callers that accept one.
type Bound struct {
	XMin, YMin, XMax, YMax float64
}

// NewBound returns the bound spanning both corners, in any order.
func NewBound(x1, y1, x2, y2 float64) Bound {
	return BoundFromRect(r2.RectFromPoints(r2.Point{X: x1, Y: y1}, r2.Point{X: x2, Y: y2}))
}

// BoundFromRect converts an r2.Rect to a Bound.
func BoundFromRect(r r2.Rect) Bound {
	return Bound{XMin: r.X.Lo, YMin: r.Y.Lo, XMax: r.X.Hi, YMax: r.Y.Hi}
}

// Rect returns the bound as an r2.Rect.
func (b Bound) Rect() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: b.XMin, Hi: b.XMax},
		Y: r1.Interval{Lo: b.YMin, Hi: b.YMax},
	}
}

// IsZero reports whether b is the zero Bound.
func (b Bound) IsZero() bool {
	return b == Bound{}
}

// Width returns the horizontal extent.
func (b Bound) Width() float64 {
	return b.Rect().Size().X
}

// Height returns the vertical extent.
func (b Bound) Height() float64 {
	return b.Rect().Size().Y
}

// Center returns the midpoint of the bound.
func (b Bound) Center() Point {
	c := b.Rect().Center()
	return Point{X: c.X, Y: c.Y}
}

// Contains reports whether p lies inside b, edges included.
func (b Bound) Contains(p Point) bool {
	return b.Rect().ContainsPoint(r2.Point{X: p.X, Y: p.Y})
}

// Extend returns the smallest bound containing both b and p.
func (b Bound) Extend(p Point) Bound {
	return BoundFromRect(b.Rect().AddPoint(r2.Point{X: p.X, Y: p.Y}))
}
