// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggmap"
)

// ErrNilImage is returned when drawing a nil image.
var ErrNilImage = errors.New("canvas: nil image")

// ImageCanvas is a CPU canvas that renders to an *image.RGBA.
//
// Paths are anti-aliased with golang.org/x/image/vector using the nonzero
// winding rule and composited source-over. Strokes are drawn as one
// rectangle per segment, without round joins.
//
// Example:
//
//	cv := canvas.NewImageCanvas(800, 600)
//	cv.SetFillColor(color.NRGBA{R: 255, A: 128})
//	cv.MoveTo(10, 10)
//	cv.LineTo(100, 10)
//	cv.LineTo(55, 80)
//	cv.ClosePath()
//	_ = cv.Fill()
type ImageCanvas struct {
	width  int
	height int
	img    *image.RGBA

	matrix ggmap.Matrix
	stack  []ggmap.Matrix

	path      Path
	fill      color.Color
	stroke    color.Color
	lineWidth float64

	rast *vector.Rasterizer
}

var _ ggmap.Canvas = (*ImageCanvas)(nil)

// NewImageCanvas creates a transparent canvas of the given size.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageCanvasFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageCanvasFromImage creates a canvas that renders into img directly.
func NewImageCanvasFromImage(img *image.RGBA) *ImageCanvas {
	b := img.Bounds()
	return &ImageCanvas{
		width:     b.Dx(),
		height:    b.Dy(),
		img:       img,
		matrix:    ggmap.Identity(),
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		rast:      vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the canvas width.
func (c *ImageCanvas) Width() int {
	return c.width
}

// Height returns the canvas height.
func (c *ImageCanvas) Height() int {
	return c.height
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the canvas with col, replacing existing pixels.
func (c *ImageCanvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// SavePNG writes the canvas to a PNG file.
func (c *ImageCanvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Transform returns the current transformation matrix.
func (c *ImageCanvas) Transform() ggmap.Matrix {
	return c.matrix
}

// SetTransform replaces the current transformation matrix.
func (c *ImageCanvas) SetTransform(m ggmap.Matrix) {
	c.matrix = m
}

// Push saves the current transform.
func (c *ImageCanvas) Push() {
	c.stack = append(c.stack, c.matrix)
}

// Pop restores the last saved transform. Pop on an empty stack is a no-op.
func (c *ImageCanvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.matrix = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// BeginPath discards the current path.
func (c *ImageCanvas) BeginPath() {
	c.path.Reset()
}

// MoveTo starts a new subpath.
func (c *ImageCanvas) MoveTo(x, y float64) {
	c.path.MoveTo(c.matrix.TransformPoint(ggmap.Pt(x, y)))
}

// LineTo adds a line segment.
func (c *ImageCanvas) LineTo(x, y float64) {
	c.path.LineTo(c.matrix.TransformPoint(ggmap.Pt(x, y)))
}

// ClosePath closes the current subpath.
func (c *ImageCanvas) ClosePath() {
	c.path.Close()
}

// SetFillColor sets the fill color.
func (c *ImageCanvas) SetFillColor(col color.Color) {
	c.fill = col
}

// SetStrokeColor sets the stroke color.
func (c *ImageCanvas) SetStrokeColor(col color.Color) {
	c.stroke = col
}

// SetLineWidth sets the stroke width in pixels.
func (c *ImageCanvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

// Fill fills the current path.
func (c *ImageCanvas) Fill() error {
	if c.path.IsEmpty() {
		return nil
	}
	c.rast.Reset(c.width, c.height)
	for _, sp := range c.path.subpaths {
		if len(sp.points) < 2 {
			continue
		}
		c.rast.MoveTo(float32(sp.points[0].X), float32(sp.points[0].Y))
		for _, pt := range sp.points[1:] {
			c.rast.LineTo(float32(pt.X), float32(pt.Y))
		}
		c.rast.ClosePath()
	}
	c.rasterize(c.fill)
	return nil
}

// Stroke strokes the current path.
func (c *ImageCanvas) Stroke() error {
	if c.path.IsEmpty() || c.lineWidth <= 0 {
		return nil
	}
	c.rast.Reset(c.width, c.height)
	c.path.segments(func(a, b ggmap.Point) {
		q, ok := strokeQuad(a, b, c.lineWidth)
		if !ok {
			return
		}
		c.rast.MoveTo(float32(q[0].X), float32(q[0].Y))
		for _, pt := range q[1:] {
			c.rast.LineTo(float32(pt.X), float32(pt.Y))
		}
		c.rast.ClosePath()
	})
	c.rasterize(c.stroke)
	return nil
}

func (c *ImageCanvas) rasterize(col color.Color) {
	c.rast.DrawOp = draw.Over
	c.rast.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// DrawImage composites img at (x, y) in user space. Under a pure
// translation pixels are copied 1:1; any other transform is resampled
// bilinearly.
func (c *ImageCanvas) DrawImage(img image.Image, x, y float64) error {
	if img == nil {
		return ErrNilImage
	}
	m := c.matrix.Multiply(ggmap.Translate(x, y))
	sb := img.Bounds()

	if m.IsTranslationOnly() && m.C == math.Trunc(m.C) && m.F == math.Trunc(m.F) {
		dp := image.Pt(int(m.C), int(m.F))
		dr := image.Rectangle{Min: dp, Max: dp.Add(sb.Size())}
		draw.Draw(c.img, dr, img, sb.Min, draw.Over)
		return nil
	}

	// f64.Aff3 maps source pixel coordinates (relative to sb.Min) to dst.
	m = m.Multiply(ggmap.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	aff := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	xdraw.BiLinear.Transform(c.img, aff, img, sb, xdraw.Over, nil)
	return nil
}
