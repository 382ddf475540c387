// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggmap"
)

func newTestGGCanvas(t *testing.T, w, h int) *GGCanvas {
	t.Helper()
	ctx := gg.NewContext(w, h)
	t.Cleanup(func() { _ = ctx.Close() })
	c, err := NewGGCanvas(ctx)
	if err != nil {
		t.Fatalf("NewGGCanvas() error = %v", err)
	}
	return c
}

func TestNewGGCanvasNil(t *testing.T) {
	if _, err := NewGGCanvas(nil); err != ErrNilContext {
		t.Errorf("NewGGCanvas(nil) error = %v, want ErrNilContext", err)
	}
}

func TestGGCanvasSize(t *testing.T) {
	c := newTestGGCanvas(t, 64, 32)
	if c.Width() != 64 || c.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", c.Width(), c.Height())
	}
	if c.Context() == nil {
		t.Error("Context() returned nil")
	}
}

func TestGGCanvasTransform(t *testing.T) {
	c := newTestGGCanvas(t, 64, 64)
	m := ggmap.Matrix{A: 2, B: 0, C: 3, D: 0, E: -2, F: 40}
	c.SetTransform(m)
	if got := c.Transform(); got != m {
		t.Errorf("Transform() = %+v, want %+v", got, m)
	}

	c.Push()
	c.SetTransform(ggmap.Identity())
	c.Pop()
	if got := c.Transform(); got != m {
		t.Errorf("after Pop Transform() = %+v, want %+v", got, m)
	}
}

func TestGGCanvasFill(t *testing.T) {
	c := newTestGGCanvas(t, 64, 64)
	c.SetFillColor(red)
	c.SetStrokeColor(blue)
	square(c, 8, 8, 56, 56)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	r, g, b, a := c.Context().Image().At(32, 32).RGBA()
	if r>>8 < 250 || g>>8 > 5 || b>>8 > 5 || a>>8 < 250 {
		t.Errorf("fill pixel = (%d,%d,%d,%d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestGGCanvasDrawImage(t *testing.T) {
	c := newTestGGCanvas(t, 32, 32)
	src := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			src.SetRGBA(x, y, blue)
		}
	}
	if err := c.DrawImage(src, 0, 0); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}

	r, _, b, a := c.Context().Image().At(16, 16).RGBA()
	if r>>8 > 5 || b>>8 < 250 || a>>8 < 250 {
		t.Errorf("blit pixel = (%d,_,%d,%d), want opaque blue", r>>8, b>>8, a>>8)
	}

	if err := c.DrawImage(nil, 0, 0); err != ErrNilImage {
		t.Errorf("DrawImage(nil) error = %v, want ErrNilImage", err)
	}
}

func TestToNRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 2, 4, 4))
	src.SetRGBA(2, 2, blue)
	n := toNRGBA(src)
	if n.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("bounds = %v", n.Bounds())
	}
	if got := n.NRGBAAt(0, 0); got.B != 255 || got.A != 255 {
		t.Errorf("NRGBAAt(0,0) = %v", got)
	}
}
