// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggmap"
)

// ErrNilContext is returned by NewGGCanvas for a nil context.
var ErrNilContext = errors.New("canvas: nil gg context")

// GGCanvas adapts a *gg.Context to ggmap.Canvas.
//
// gg shares one brush between fill and stroke, so GGCanvas keeps both
// colors itself and selects the right one before each Fill or Stroke.
//
// GGCanvas is NOT safe for concurrent use.
type GGCanvas struct {
	ctx    *gg.Context
	fill   color.Color
	stroke color.Color
}

var _ ggmap.Canvas = (*GGCanvas)(nil)

// NewGGCanvas wraps ctx.
func NewGGCanvas(ctx *gg.Context) (*GGCanvas, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return &GGCanvas{ctx: ctx, fill: color.Black, stroke: color.Black}, nil
}

// Context returns the wrapped gg context.
func (c *GGCanvas) Context() *gg.Context {
	return c.ctx
}

// Width returns the context width.
func (c *GGCanvas) Width() int {
	return c.ctx.Width()
}

// Height returns the context height.
func (c *GGCanvas) Height() int {
	return c.ctx.Height()
}

// Transform returns the current transformation matrix.
func (c *GGCanvas) Transform() ggmap.Matrix {
	return fromGGMatrix(c.ctx.GetTransform())
}

// SetTransform replaces the current transformation matrix.
func (c *GGCanvas) SetTransform(m ggmap.Matrix) {
	c.ctx.SetTransform(toGGMatrix(m))
}

// Push saves the gg state.
func (c *GGCanvas) Push() {
	c.ctx.Push()
}

// Pop restores the gg state.
func (c *GGCanvas) Pop() {
	c.ctx.Pop()
}

// BeginPath discards the current path.
func (c *GGCanvas) BeginPath() {
	c.ctx.ClearPath()
}

// MoveTo starts a new subpath.
func (c *GGCanvas) MoveTo(x, y float64) {
	c.ctx.MoveTo(x, y)
}

// LineTo adds a line segment.
func (c *GGCanvas) LineTo(x, y float64) {
	c.ctx.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (c *GGCanvas) ClosePath() {
	c.ctx.ClosePath()
}

// SetFillColor sets the fill color.
func (c *GGCanvas) SetFillColor(col color.Color) {
	c.fill = col
}

// SetStrokeColor sets the stroke color.
func (c *GGCanvas) SetStrokeColor(col color.Color) {
	c.stroke = col
}

// SetLineWidth sets the stroke width.
func (c *GGCanvas) SetLineWidth(w float64) {
	c.ctx.SetLineWidth(w)
}

// Fill fills the current path, keeping it.
func (c *GGCanvas) Fill() error {
	c.ctx.SetColor(c.fill)
	return c.ctx.FillPreserve()
}

// Stroke strokes the current path, keeping it.
func (c *GGCanvas) Stroke() error {
	c.ctx.SetColor(c.stroke)
	return c.ctx.StrokePreserve()
}

// DrawImage composites img at (x, y) under the current transform.
func (c *GGCanvas) DrawImage(img image.Image, x, y float64) error {
	if img == nil {
		return ErrNilImage
	}
	// gg's RGBA8 buffers hold straight alpha.
	buf := gg.ImageBufFromImage(toNRGBA(img))
	c.ctx.DrawImageEx(buf, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

func toGGMatrix(m ggmap.Matrix) gg.Matrix {
	return gg.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func fromGGMatrix(m gg.Matrix) ggmap.Matrix {
	return ggmap.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}
