package feature

import (
	"fmt"
	"io"

	"github.com/gogpu/ggmap"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON reads a GeoJSON FeatureCollection into a FeatureClass.
// See FromGeoJSON for how geometries are mapped.
func LoadGeoJSON(r io.Reader) (*FeatureClass, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("feature: read geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("feature: decode geojson: %w", err)
	}
	return FromGeoJSON(fc)
}

// FromGeoJSON converts a decoded FeatureCollection into a FeatureClass.
//
// The class takes the geometry type of the first feature with a supported
// geometry. Features of another type, or without geometry, are skipped and
// counted in a debug log record. Properties are shared, not copied.
func FromGeoJSON(collection *geojson.FeatureCollection) (*FeatureClass, error) {
	if collection == nil {
		return nil, fmt.Errorf("feature: nil feature collection")
	}

	fc := NewFeatureClass(GeometryUnknown)
	skipped := 0
	for _, gf := range collection.Features {
		g := convertGeometry(gf.Geometry)
		if g == nil {
			skipped++
			continue
		}
		if err := fc.AddFeature(NewFeature(g, gf.Properties)); err != nil {
			skipped++
		}
	}

	if skipped > 0 {
		ggmap.Logger().Debug("feature: skipped geojson features",
			"skipped", skipped, "kept", fc.Len(), "type", fc.Type.String())
	}
	return fc, nil
}

func convertGeometry(g orb.Geometry) Geometry {
	switch v := g.(type) {
	case orb.Point:
		return Point{X: v[0], Y: v[1]}
	case orb.MultiPoint:
		mp := make(MultiPoint, len(v))
		for i, p := range v {
			mp[i] = Point{X: p[0], Y: p[1]}
		}
		return mp
	case orb.LineString:
		return Polyline{lineCoords(v)}
	case orb.MultiLineString:
		pl := make(Polyline, len(v))
		for i, ls := range v {
			pl[i] = lineCoords(ls)
		}
		return pl
	case orb.Polygon:
		return Polygon{polygonCoords(v)}
	case orb.MultiPolygon:
		pg := make(Polygon, len(v))
		for i, p := range v {
			pg[i] = polygonCoords(p)
		}
		return pg
	default:
		return nil
	}
}

func lineCoords(ls []orb.Point) [][2]float64 {
	out := make([][2]float64, len(ls))
	for i, p := range ls {
		out[i] = [2]float64(p)
	}
	return out
}

func polygonCoords(p orb.Polygon) [][][2]float64 {
	out := make([][][2]float64, len(p))
	for i, ring := range p {
		out[i] = lineCoords(ring)
	}
	return out
}
