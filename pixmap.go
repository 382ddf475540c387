package ggmap

import (
	"image"
	"image/color"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular buffer of non-premultiplied RGBA pixels.
// It plays the role of an off-screen canvas whose pixels are written
// directly, like getImageData/putImageData on a scratch canvas.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // NRGBA format, 4 bytes per pixel
}

// NewPixmap creates a new, fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (NRGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-range writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear resets every pixel to transparent.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// Image returns an *image.NRGBA sharing the pixmap's memory.
func (p *Pixmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// Resample scales the pixmap onto a new width x height image. The whole
// pixmap is mapped onto dr, which may extend past the destination bounds;
// the part outside is clipped.
func (p *Pixmap) Resample(width, height int, dr image.Rectangle, interp xdraw.Interpolator) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if p.width == 0 || p.height == 0 || dr.Empty() {
		return dst
	}
	if interp == nil {
		interp = xdraw.ApproxBiLinear
	}
	interp.Scale(dst, dr, p.Image(), p.Image().Bounds(), xdraw.Src, nil)
	return dst
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.Image())
}
