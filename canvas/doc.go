// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas provides ggmap.Canvas implementations.
//
// Two canvases are available:
//
//   - ImageCanvas renders into an *image.RGBA with golang.org/x/image/vector.
//     It has no dependencies beyond the x/image module and is the canvas
//     used by tests and the ggmap command.
//   - GGCanvas adapts a *gg.Context, so rasters can paint into a gg scene
//     next to everything else drawn with gg.
//
// Both follow the same model: a current transform with a save/restore
// stack, a current path built in user space and transformed when points
// are added, separate fill and stroke colors, and an image blit.
//
// Example:
//
//	cv := canvas.NewImageCanvas(800, 600)
//	cv.SetTransform(view.Matrix())
//	if err := idw.Draw(cv, proj, view.Extent(), zoom); err != nil {
//	    return err
//	}
//	_ = cv.SavePNG("surface.png")
package canvas
