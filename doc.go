// Package ggmap renders continuous surfaces from sparse map samples.
//
// # Overview
//
// ggmap is the map-side companion of the gg 2D graphics library. It takes
// point features carrying a scalar attribute, projects them into screen
// space for the current view, and synthesizes a densely shaded raster by
// inverse distance weighting. The surface is recomputed on every view
// change, so it stays correct while the map pans and zooms.
//
// # Quick Start
//
//	fc, err := feature.LoadGeoJSON(f)
//	if err != nil {
//	    return err
//	}
//
//	idw := interp.New(interp.WithResolution(8))
//	if err := idw.Generate(fc, feature.Field{Name: "pm25"}); err != nil {
//	    return err
//	}
//
//	proj := projection.WebMercator{}
//	view := ggmap.NewView(proj.Project(106.55, 29.56), projection.Resolution(proj, 9), 800, 600)
//
//	cv := canvas.NewImageCanvas(800, 600)
//	cv.SetTransform(view.Matrix())
//	if err := idw.Draw(cv, proj, view.Extent(), 9); err != nil {
//	    return err
//	}
//	cv.SavePNG("surface.png")
//
// # Architecture
//
// The root package holds the contracts shared by all sub-packages:
//   - [Canvas]: the immediate-mode drawing surface rasters paint onto
//   - [Raster]: a dynamic layer element redrawn every frame
//   - [Projection]: geographic to planar coordinate mapping
//   - [Matrix], [Point], [Bound], [RGBA], [Pixmap], [View]: value types
//
// Implementations live in sub-packages:
//   - feature: point features, fields and GeoJSON loading
//   - projection: Web Mercator and plate carrée projections
//   - interp: color ramps, decay functions and the IDW renderer
//   - canvas: software and gg-backed Canvas implementations
//
// # Coordinate System
//
// Screen coordinates follow gg: origin at top-left, X right, Y down.
// Projected coordinates are planar map units (meters for Web Mercator)
// with Y up; the view matrix flips them.
//
// # Concurrency
//
// Rendering is synchronous and single-threaded. A renderer must not be
// drawn from two goroutines at once; hosts coalesce view-change events.
package ggmap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
