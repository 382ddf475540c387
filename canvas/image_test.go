// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggmap"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func square(c ggmap.Canvas, x0, y0, x1, y1 float64) {
	c.BeginPath()
	c.MoveTo(x0, y0)
	c.LineTo(x1, y0)
	c.LineTo(x1, y1)
	c.LineTo(x0, y1)
	c.ClosePath()
}

// TestNewImageCanvas tests canvas creation.
func TestNewImageCanvas(t *testing.T) {
	c := NewImageCanvas(100, 50)
	if c.Width() != 100 || c.Height() != 50 {
		t.Errorf("size = %dx%d, want 100x50", c.Width(), c.Height())
	}
	if !c.Transform().IsIdentity() {
		t.Errorf("initial transform = %+v, want identity", c.Transform())
	}

	// Should clamp to minimum of 1x1
	c = NewImageCanvas(0, -3)
	if c.Width() != 1 || c.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", c.Width(), c.Height())
	}
}

func TestImageCanvasFill(t *testing.T) {
	c := NewImageCanvas(100, 100)
	c.SetFillColor(red)
	square(c, 10, 10, 60, 60)
	if err := c.Fill(); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	if got := c.Image().RGBAAt(30, 30); got != red {
		t.Errorf("inside = %v, want %v", got, red)
	}
	if got := c.Image().RGBAAt(80, 80); got != (color.RGBA{}) {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestImageCanvasFillKeepsPath(t *testing.T) {
	c := NewImageCanvas(40, 40)
	c.SetFillColor(red)
	c.SetStrokeColor(blue)
	c.SetLineWidth(4)
	square(c, 10, 10, 30, 30)
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}

	if got := c.Image().RGBAAt(20, 20); got != red {
		t.Errorf("center = %v, want fill %v", got, red)
	}
	if got := c.Image().RGBAAt(20, 10); got != blue {
		t.Errorf("edge = %v, want stroke %v", got, blue)
	}
}

func TestImageCanvasTransform(t *testing.T) {
	c := NewImageCanvas(100, 100)
	c.SetTransform(ggmap.Translate(50, 50))
	c.Push()
	c.SetTransform(ggmap.Identity())
	c.Pop()
	if got := c.Transform(); got != ggmap.Translate(50, 50) {
		t.Fatalf("after Pop transform = %+v", got)
	}

	c.SetFillColor(red)
	square(c, 0, 0, 10, 10)
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	if got := c.Image().RGBAAt(55, 55); got != red {
		t.Errorf("translated fill = %v, want %v", got, red)
	}
	if got := c.Image().RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Errorf("untranslated area = %v, want transparent", got)
	}

	// Extra Pop is harmless.
	c.Pop()
	c.Pop()
}

func TestImageCanvasBeginPath(t *testing.T) {
	c := NewImageCanvas(20, 20)
	c.SetFillColor(red)
	square(c, 0, 0, 20, 20)
	c.BeginPath()
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	if got := c.Image().RGBAAt(10, 10); got != (color.RGBA{}) {
		t.Errorf("fill after BeginPath painted %v", got)
	}
}

func TestImageCanvasDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, blue)
		}
	}

	t.Run("translate", func(t *testing.T) {
		c := NewImageCanvas(20, 20)
		c.SetTransform(ggmap.Translate(5, 6))
		if err := c.DrawImage(src, 1, 1); err != nil {
			t.Fatal(err)
		}
		if got := c.Image().RGBAAt(6, 7); got != blue {
			t.Errorf("top-left = %v, want %v", got, blue)
		}
		if got := c.Image().RGBAAt(10, 11); got != (color.RGBA{}) {
			t.Errorf("past image = %v, want transparent", got)
		}
	})

	t.Run("scale", func(t *testing.T) {
		c := NewImageCanvas(20, 20)
		c.SetTransform(ggmap.Scale(4, 4))
		if err := c.DrawImage(src, 0, 0); err != nil {
			t.Fatal(err)
		}
		if got := c.Image().RGBAAt(8, 8); got != blue {
			t.Errorf("scaled center = %v, want %v", got, blue)
		}
	})

	t.Run("nil", func(t *testing.T) {
		c := NewImageCanvas(20, 20)
		if err := c.DrawImage(nil, 0, 0); err != ErrNilImage {
			t.Errorf("DrawImage(nil) error = %v, want ErrNilImage", err)
		}
	})
}

func TestImageCanvasClearAndSave(t *testing.T) {
	c := NewImageCanvas(8, 8)
	c.Clear(color.White)
	if got := c.Image().RGBAAt(3, 3); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("after Clear = %v", got)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
}

func TestStrokeQuad(t *testing.T) {
	q, ok := strokeQuad(ggmap.Pt(0, 0), ggmap.Pt(10, 0), 2)
	if !ok {
		t.Fatal("strokeQuad returned !ok")
	}
	want := [4]ggmap.Point{{X: -1, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: -1}, {X: -1, Y: -1}}
	if q != want {
		t.Errorf("strokeQuad = %v, want %v", q, want)
	}

	if _, ok := strokeQuad(ggmap.Pt(1, 1), ggmap.Pt(1, 1), 2); ok {
		t.Error("degenerate segment should be skipped")
	}
}

func TestPathBounds(t *testing.T) {
	var p Path
	if !p.IsEmpty() {
		t.Error("zero Path should be empty")
	}
	p.MoveTo(ggmap.Pt(3, 4))
	p.LineTo(ggmap.Pt(-1, 10))
	p.Close()
	p.LineTo(ggmap.Pt(7, 0))

	b := p.Bounds()
	if b != (ggmap.Bound{XMin: -1, YMin: 0, XMax: 7, YMax: 10}) {
		t.Errorf("Bounds() = %+v", b)
	}

	n := 0
	p.segments(func(a, b ggmap.Point) { n++ })
	if n != 1 {
		t.Errorf("segments = %d, want 1 (two-point closed subpath adds no closing edge)", n)
	}
}
