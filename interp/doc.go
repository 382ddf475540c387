// Package interp synthesizes continuous raster surfaces from point samples
// by Inverse Distance Weighting (IDW).
//
// # Pipeline
//
// A renderer is configured once per dataset and drawn once per frame:
//
//	idw := interp.New()
//	if err := idw.Generate(fc, feature.Field{Name: "rain"}); err != nil { // value range + color ramp
//	    return err
//	}
//	for frame := range frames {
//	    if err := idw.Draw(cv, proj, frame.Extent, frame.Zoom); err != nil { // projection + weighting + paint
//	        return err
//	    }
//	}
//
// Draw projects every feature carrying the attribute into screen space
// using the canvas transform, then evaluates one weighted estimate per
// output cell:
//
//	v(p) = Σ decay(max(1, |p - sᵢ|)) · valueᵢ / Σ decay(max(1, |p - sᵢ|))
//
// The estimate is looked up in a 256-entry ColorRamp; its alpha is the
// estimate itself, so low values fade out. Cells with zero total weight
// stay transparent.
//
// # Strategies
//
// The grid strategy evaluates a reduced buffer of ceil(W/res) x ceil(H/res)
// cells and resamples it to the surface. The honeycomb strategy evaluates
// hexagon centers and paints filled, stroked hexagons directly in screen
// space. Both share one weighting core (Estimator).
//
// Cost is O(cells × samples). A Radius cutoff turns on an R-tree over the
// samples so each cell only visits nearby samples.
package interp
