// Package projection provides ggmap.Projection implementations.
//
// WebMercator (EPSG:3857) is the default projection for map rasters;
// LngLat (plate carrée, EPSG:4326 treated as planar degrees) is useful for
// small-area data and tests.
package projection

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/gogpu/ggmap"
)

const (
	// EarthRadius is the WGS84 semi-major axis in meters used by Web Mercator.
	EarthRadius = 6378137.0

	// MaxLatitude is the latitude at which Web Mercator becomes square.
	MaxLatitude = 85.0511287798

	// TileSize is the pixel size of a zoom-0 world tile.
	TileSize = 256
)

// halfWorld is the Web Mercator coordinate of the antimeridian.
var halfWorld = math.Pi * EarthRadius

// WebMercator is the spherical Mercator projection (EPSG:3857).
// Coordinates are in meters.
type WebMercator struct{}

var _ ggmap.Projection = WebMercator{}

// Project implements ggmap.Projection. Latitudes are clamped to
// ±MaxLatitude.
func (WebMercator) Project(lng, lat float64) ggmap.Point {
	lat = math.Max(-MaxLatitude, math.Min(MaxLatitude, lat))
	ll := s2.LatLngFromDegrees(lat, lng)
	return ggmap.Point{
		X: EarthRadius * ll.Lng.Radians(),
		Y: EarthRadius * math.Log(math.Tan(math.Pi/4+ll.Lat.Radians()/2)),
	}
}

// Unproject implements ggmap.Projection.
func (WebMercator) Unproject(p ggmap.Point) (lng, lat float64) {
	lngAngle := s1.Angle(p.X/EarthRadius) * s1.Radian
	latAngle := s1.Angle(2*math.Atan(math.Exp(p.Y/EarthRadius))-math.Pi/2) * s1.Radian
	return lngAngle.Degrees(), latAngle.Degrees()
}

// Bound implements ggmap.Projection.
func (WebMercator) Bound() ggmap.Bound {
	return ggmap.NewBound(-halfWorld, -halfWorld, halfWorld, halfWorld)
}

// LngLat treats longitude/latitude degrees as planar coordinates.
type LngLat struct{}

var _ ggmap.Projection = LngLat{}

// Project implements ggmap.Projection.
func (LngLat) Project(lng, lat float64) ggmap.Point {
	return ggmap.Point{X: lng, Y: lat}
}

// Unproject implements ggmap.Projection.
func (LngLat) Unproject(p ggmap.Point) (lng, lat float64) {
	return p.X, p.Y
}

// Bound implements ggmap.Projection.
func (LngLat) Bound() ggmap.Bound {
	return ggmap.NewBound(-180, -90, 180, 90)
}

// Resolution returns the projected units per pixel at a zoom level, for a
// pyramid whose zoom-0 level shows the projection bound in one TileSize
// tile.
func Resolution(proj ggmap.Projection, zoom float64) float64 {
	b := proj.Bound()
	return b.Width() / TileSize / math.Pow(2, zoom)
}

// ByName returns the projection registered under name ("mercator",
// "3857", "lnglat", "4326"). ok is false for unknown names.
func ByName(name string) (ggmap.Projection, bool) {
	switch name {
	case "", "mercator", "webmercator", "3857", "EPSG:3857":
		return WebMercator{}, true
	case "lnglat", "4326", "EPSG:4326":
		return LngLat{}, true
	}
	return nil, false
}
