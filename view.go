package ggmap

// View describes what part of the projected plane a surface shows.
//
// Viewport state management belongs to the host map; View only turns a
// center and a resolution into the screen transform and extent that
// rasters receive on each draw.
type View struct {
	// Center is the projected coordinate shown at the middle of the surface.
	Center Point

	// Resolution is the number of projected units per screen pixel.
	Resolution float64

	// Width and Height are the surface size in pixels.
	Width, Height int
}

// NewView creates a View.
func NewView(center Point, resolution float64, width, height int) View {
	return View{Center: center, Resolution: resolution, Width: width, Height: height}
}

// Matrix returns the affine transform from projected coordinates to screen
// pixels. Projected Y grows north, so the transform flips it.
func (v View) Matrix() Matrix {
	if v.Resolution <= 0 {
		return Identity()
	}
	s := 1 / v.Resolution
	return Matrix{
		A: s, B: 0, C: float64(v.Width)/2 - v.Center.X*s,
		D: 0, E: -s, F: float64(v.Height)/2 + v.Center.Y*s,
	}
}

// Extent returns the projected bound covered by the surface.
func (v View) Extent() Bound {
	inv := v.Matrix().Invert()
	tl := inv.TransformPoint(Pt(0, 0))
	br := inv.TransformPoint(Pt(float64(v.Width), float64(v.Height)))
	return NewBound(tl.X, tl.Y, br.X, br.Y)
}
