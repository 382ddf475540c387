package interp

import (
	"fmt"
	"math"

	"github.com/gogpu/ggmap"
)

var sqrt3 = math.Sqrt(3)

// hexVertices are the unit hexagon offsets, flat-top, starting west and
// running clockwise on screen (Y down).
var hexVertices = [6]ggmap.Point{
	{X: -1, Y: 0},
	{X: -0.5, Y: -sqrt3 / 2},
	{X: 0.5, Y: -sqrt3 / 2},
	{X: 1, Y: 0},
	{X: 0.5, Y: sqrt3 / 2},
	{X: -0.5, Y: sqrt3 / 2},
}

// HexCenters returns the centers of flat-top hexagons of the given side
// length covering a width x height surface.
//
// Rows are side*√3/2 apart starting at y = 0. Even rows start at x = 0,
// odd rows at x = 1.5*side, and centers within a row are 3*side apart.
// Centers up to and including the far edges are produced.
func HexCenters(width, height, side float64) []ggmap.Point {
	var pts []ggmap.Point
	eachHexCenter(width, height, side, func(x, y float64) {
		pts = append(pts, ggmap.Pt(x, y))
	})
	return pts
}

func eachHexCenter(width, height, side float64, fn func(x, y float64)) {
	if !(side > 0) || width < 0 || height < 0 {
		return
	}
	rowStep := side * sqrt3 / 2
	colStep := 3 * side
	for row := 0; ; row++ {
		y := float64(row) * rowStep
		if y > height {
			return
		}
		x0 := 0.0
		if row%2 == 1 {
			x0 = 1.5 * side
		}
		for col := 0; ; col++ {
			x := x0 + float64(col)*colStep
			if x > width {
				break
			}
			fn(x, y)
		}
	}
}

// hexPath builds a closed hexagon around (x, y) on c.
func hexPath(c ggmap.Canvas, x, y, side float64) {
	c.BeginPath()
	for i, v := range hexVertices {
		px, py := x+v.X*side, y+v.Y*side
		if i == 0 {
			c.MoveTo(px, py)
		} else {
			c.LineTo(px, py)
		}
	}
	c.ClosePath()
}

// drawHoneycomb renders the honeycomb strategy: one filled and stroked
// hexagon per center with non-zero weight, in screen space.
func (r *InverseDistanceWeight) drawHoneycomb(c ggmap.Canvas, est *Estimator, ramp *ColorRamp) (painted int, err error) {
	c.Push()
	defer c.Pop()
	c.SetTransform(ggmap.Identity())
	c.SetStrokeColor(r.HoneyStroke)
	c.SetLineWidth(r.HoneyLineWidth)

	side := r.HoneySide
	eachHexCenter(float64(c.Width()), float64(c.Height()), side, func(x, y float64) {
		if err != nil {
			return
		}
		v, ok := est.At(x, y)
		if !ok {
			return
		}
		c.SetFillColor(cellColor(ramp, v))
		hexPath(c, x, y, side)
		if err = c.Fill(); err != nil {
			err = fmt.Errorf("interp: fill hexagon: %w", err)
			return
		}
		if r.HoneyLineWidth > 0 {
			if err = c.Stroke(); err != nil {
				err = fmt.Errorf("interp: stroke hexagon: %w", err)
				return
			}
		}
		painted++
	})
	return painted, err
}
