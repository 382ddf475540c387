package main

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/ggmap"
	"github.com/gogpu/ggmap/feature"
	"github.com/gogpu/ggmap/projection"
)

// loadFeatures reads a GeoJSON FeatureCollection from path.
func loadFeatures(path string) (*feature.FeatureClass, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file given")
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	fc, err := feature.LoadGeoJSON(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fc, nil
}

// parseCenter parses "lng,lat".
func parseCenter(s string) (lng, lat float64, err error) {
	lngStr, latStr, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid center %q, want lng,lat", s)
	}
	if lng, err = strconv.ParseFloat(strings.TrimSpace(lngStr), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid center longitude %q: %w", lngStr, err)
	}
	if lat, err = strconv.ParseFloat(strings.TrimSpace(latStr), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid center latitude %q: %w", latStr, err)
	}
	if lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("center %v,%v out of range", lng, lat)
	}
	return lng, lat, nil
}

// dataBound returns the projected bound of all point features. ok is false
// when the class has no points.
func dataBound(fc *feature.FeatureClass, proj ggmap.Projection) (b ggmap.Bound, ok bool) {
	for _, f := range fc.Features {
		pt, isPoint := f.Geometry.(feature.Point)
		if !isPoint {
			continue
		}
		p := pt.Project(proj)
		if !ok {
			b = ggmap.NewBound(p.X, p.Y, p.X, p.Y)
			ok = true
			continue
		}
		b = b.Extend(p)
	}
	return b, ok
}

// fitResolution returns the resolution that shows b in a width x height
// surface with a 10% margin, or fallback for a single point.
func fitResolution(b ggmap.Bound, width, height int, fallback float64) float64 {
	res := math.Max(b.Width()/float64(width), b.Height()/float64(height)) * 1.1
	if !(res > 0) {
		return fallback
	}
	return res
}

// zoomFor is the inverse of projection.Resolution.
func zoomFor(proj ggmap.Projection, res float64) float64 {
	return math.Log2(projection.Resolution(proj, 0) / res)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
