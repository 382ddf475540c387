// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"math"

	"github.com/gogpu/ggmap"
)

// subpath is a polyline in device space.
type subpath struct {
	points []ggmap.Point
	closed bool
}

// Path records subpaths in device coordinates.
type Path struct {
	subpaths []subpath
}

// Reset discards all subpaths.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	for _, sp := range p.subpaths {
		if len(sp.points) > 1 {
			return false
		}
	}
	return true
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt ggmap.Point) {
	p.subpaths = append(p.subpaths, subpath{points: []ggmap.Point{pt}})
}

// LineTo adds a segment to pt. Without a current subpath it acts as MoveTo.
func (p *Path) LineTo(pt ggmap.Point) {
	if len(p.subpaths) == 0 || p.subpaths[len(p.subpaths)-1].closed {
		p.MoveTo(pt)
		return
	}
	last := &p.subpaths[len(p.subpaths)-1]
	last.points = append(last.points, pt)
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	p.subpaths[len(p.subpaths)-1].closed = true
}

// Bounds returns the device-space bounding box of the path.
func (p *Path) Bounds() ggmap.Bound {
	var b ggmap.Bound
	first := true
	for _, sp := range p.subpaths {
		for _, pt := range sp.points {
			if first {
				b = ggmap.NewBound(pt.X, pt.Y, pt.X, pt.Y)
				first = false
				continue
			}
			b = b.Extend(pt)
		}
	}
	return b
}

// segments calls fn for every segment, including the closing segment of
// closed subpaths.
func (p *Path) segments(fn func(a, b ggmap.Point)) {
	for _, sp := range p.subpaths {
		n := len(sp.points)
		for i := 1; i < n; i++ {
			fn(sp.points[i-1], sp.points[i])
		}
		if sp.closed && n > 2 {
			fn(sp.points[n-1], sp.points[0])
		}
	}
}

// strokeQuad returns the rectangle covering segment a-b at the given
// width, extended by half the width at both ends so adjacent segments
// overlap at the joins.
func strokeQuad(a, b ggmap.Point, width float64) ([4]ggmap.Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return [4]ggmap.Point{}, false
	}
	h := width / 2
	ux, uy := dx/l*h, dy/l*h // along
	nx, ny := -uy, ux         // normal
	a = ggmap.Pt(a.X-ux, a.Y-uy)
	b = ggmap.Pt(b.X+ux, b.Y+uy)
	return [4]ggmap.Point{
		ggmap.Pt(a.X+nx, a.Y+ny),
		ggmap.Pt(b.X+nx, b.Y+ny),
		ggmap.Pt(b.X-nx, b.Y-ny),
		ggmap.Pt(a.X-nx, a.Y-ny),
	}, true
}
