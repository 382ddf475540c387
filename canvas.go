package ggmap

import (
	"image"
	"image/color"
)

// Canvas is the immediate-mode drawing surface rasters paint onto.
//
// The contract follows the HTML canvas model that gg also mirrors: a
// current transform with a save/restore stack, a current path that is
// built with MoveTo/LineTo/ClosePath and kept across Fill and Stroke
// until BeginPath, and an image blit.
//
// Canvases are NOT safe for concurrent use.
//
// Implementations live in the canvas sub-package:
//
//	cv := canvas.NewImageCanvas(800, 600)            // pure software
//	cv := canvas.NewGGCanvas(gg.NewContext(800, 600)) // gg-backed
type Canvas interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Transform returns the current transformation matrix.
	Transform() Matrix

	// SetTransform replaces the current transformation matrix.
	SetTransform(m Matrix)

	// Push saves the current transform.
	Push()

	// Pop restores the last saved transform.
	Pop()

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y) in user space.
	MoveTo(x, y float64)

	// LineTo adds a line segment to (x, y) in user space.
	LineTo(x, y float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// SetFillColor sets the color used by Fill.
	SetFillColor(c color.Color)

	// SetStrokeColor sets the color used by Stroke.
	SetStrokeColor(c color.Color)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)

	// Fill fills the current path. The path is kept.
	Fill() error

	// Stroke strokes the current path. The path is kept.
	Stroke() error

	// DrawImage composites img (source-over) with its top-left corner at
	// (x, y) in user space, at the image's own pixel size.
	DrawImage(img image.Image, x, y float64) error
}

// Raster is a layer element that paints a synthesized image.
//
// Dynamic rasters depend on the view and must be redrawn on every frame
// instead of being cached by the host.
type Raster interface {
	// Dynamic reports whether the raster must be redrawn every frame.
	Dynamic() bool

	// Draw paints the raster onto c for the given projection, visible
	// extent and zoom level.
	Draw(c Canvas, proj Projection, extent Bound, zoom float64) error
}

// Projection maps geographic coordinates (degrees) to a planar frame.
type Projection interface {
	// Project converts longitude/latitude to planar coordinates.
	Project(lng, lat float64) Point

	// Unproject converts planar coordinates back to longitude/latitude.
	Unproject(p Point) (lng, lat float64)

	// Bound returns the default full extent of the projection.
	Bound() Bound
}
