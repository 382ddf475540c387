package interp

import (
	"fmt"
	"image"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggmap"
)

// Resample selects how the reduced grid buffer is scaled to the surface.
type Resample int

const (
	// ResampleBilinear smooths between cells (default).
	ResampleBilinear Resample = iota

	// ResampleNearest keeps hard cell edges.
	ResampleNearest

	// ResampleCatmullRom uses bicubic Catmull-Rom filtering.
	ResampleCatmullRom
)

// String returns the resample mode name.
func (r Resample) String() string {
	switch r {
	case ResampleBilinear:
		return "bilinear"
	case ResampleNearest:
		return "nearest"
	case ResampleCatmullRom:
		return "catmullrom"
	default:
		return fmt.Sprintf("Resample(%d)", int(r))
	}
}

// ParseResample parses a resample mode name.
func ParseResample(s string) (Resample, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bilinear", "linear":
		return ResampleBilinear, nil
	case "nearest", "none":
		return ResampleNearest, nil
	case "catmullrom", "bicubic", "cubic":
		return ResampleCatmullRom, nil
	}
	return ResampleBilinear, fmt.Errorf("%w: interp: unknown resample mode %q", ggmap.ErrConfiguration, s)
}

func (r Resample) interpolator() xdraw.Interpolator {
	switch r {
	case ResampleNearest:
		return xdraw.NearestNeighbor
	case ResampleCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// gridSize returns the reduced buffer size for a surface at resolution res.
func gridSize(width, height int, res float64) (int, int) {
	return int(math.Ceil(float64(width) / res)), int(math.Ceil(float64(height) / res))
}

// rasterizeGrid evaluates one estimate per cell of pm. Cell (cx, cy) is
// sampled at screen point (cx*res, cy*res). Cells without weight stay
// transparent. It returns the number of painted cells.
func rasterizeGrid(pm *ggmap.Pixmap, res float64, est *Estimator, ramp *ColorRamp) int {
	painted := 0
	for cy := 0; cy < pm.Height(); cy++ {
		y := float64(cy) * res
		for cx := 0; cx < pm.Width(); cx++ {
			v, ok := est.At(float64(cx)*res, y)
			if !ok {
				continue
			}
			pm.SetPixel(cx, cy, cellColor(ramp, v))
			painted++
		}
	}
	return painted
}

// drawGrid renders the grid strategy: a reduced buffer resampled to the
// surface size and blitted in screen space.
func (r *InverseDistanceWeight) drawGrid(c ggmap.Canvas, est *Estimator, ramp *ColorRamp) (int, error) {
	w, h := c.Width(), c.Height()
	if w <= 0 || h <= 0 {
		return 0, nil
	}
	gw, gh := gridSize(w, h, r.Resolution)
	pm := ggmap.NewPixmap(gw, gh)
	painted := rasterizeGrid(pm, r.Resolution, est, ramp)

	// Each cell covers [cx*res, (cx+1)*res); the last row and column may
	// extend past the surface and are clipped.
	dr := image.Rect(0, 0, int(math.Round(float64(gw)*r.Resolution)), int(math.Round(float64(gh)*r.Resolution)))
	img := pm.Resample(w, h, dr, r.Resample.interpolator())

	c.Push()
	defer c.Pop()
	c.SetTransform(ggmap.Identity())
	if err := c.DrawImage(img, 0, 0); err != nil {
		return painted, fmt.Errorf("interp: draw grid: %w", err)
	}
	return painted, nil
}
