// Package feature provides the minimal vector data model consumed by ggmap
// rasters: geometries, features with attribute properties, fields and
// feature classes.
package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/ggmap"
)

// ErrGeometryMismatch is returned when a feature's geometry type differs
// from the type of the class it is added to.
var ErrGeometryMismatch = errors.New("feature: geometry type mismatch")

// GeometryType identifies the kind of geometry a feature class holds.
type GeometryType int

const (
	// GeometryUnknown is the type of an empty class.
	GeometryUnknown GeometryType = iota
	// GeometryPoint is a single position.
	GeometryPoint
	// GeometryMultiPoint is a set of positions.
	GeometryMultiPoint
	// GeometryPolyline is one or more line strings.
	GeometryPolyline
	// GeometryPolygon is one or more polygons.
	GeometryPolygon
)

// String returns the geometry type name.
func (t GeometryType) String() string {
	switch t {
	case GeometryPoint:
		return "Point"
	case GeometryMultiPoint:
		return "MultiPoint"
	case GeometryPolyline:
		return "Polyline"
	case GeometryPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Geometry is implemented by every geometry kind.
type Geometry interface {
	Type() GeometryType
}

// Point is a geographic position in degrees.
type Point struct {
	X float64 // longitude
	Y float64 // latitude
}

// Type implements Geometry.
func (Point) Type() GeometryType { return GeometryPoint }

// Project returns the point in the planar frame of proj.
// The point itself is not modified.
func (p Point) Project(proj ggmap.Projection) ggmap.Point {
	return proj.Project(p.X, p.Y)
}

// MultiPoint is a set of geographic positions.
type MultiPoint []Point

// Type implements Geometry.
func (MultiPoint) Type() GeometryType { return GeometryMultiPoint }

// Polyline holds one or more line strings as [lng, lat] pairs.
type Polyline [][][2]float64

// Type implements Geometry.
func (Polyline) Type() GeometryType { return GeometryPolyline }

// Polygon holds one or more polygons, each a list of rings.
type Polygon [][][][2]float64

// Type implements Geometry.
func (Polygon) Type() GeometryType { return GeometryPolygon }

// Feature is a geometry with attribute properties.
type Feature struct {
	Geometry   Geometry
	Properties map[string]any
}

// NewFeature creates a feature. A nil properties map is replaced by an
// empty one.
func NewFeature(g Geometry, props map[string]any) *Feature {
	if props == nil {
		props = map[string]any{}
	}
	return &Feature{Geometry: g, Properties: props}
}

// Number returns the named property as a float64.
//
// ok is false when the property is absent or null. err is non-nil when the
// property is present but cannot be read as a finite number.
func (f *Feature) Number(name string) (v float64, ok bool, err error) {
	raw, present := f.Properties[name]
	if !present || raw == nil {
		return 0, false, nil
	}
	v, err = toFloat(raw)
	if err != nil {
		return 0, false, fmt.Errorf("feature: property %q: %w", name, err)
	}
	return v, true, nil
}

func toFloat(raw any) (float64, error) {
	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int32:
		v = float64(x)
	case int64:
		v = float64(x)
	case uint:
		v = float64(x)
	case uint32:
		v = float64(x)
	case uint64:
		v = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, err
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, err
		}
		v = f
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %v", v)
	}
	return v, nil
}

// FieldType describes the kind of values stored under a field.
type FieldType int

const (
	// FieldString holds text values.
	FieldString FieldType = iota
	// FieldNumber holds numeric values.
	FieldNumber
)

// Field names an attribute of a feature class.
type Field struct {
	Name  string
	Alias string
	Type  FieldType
}

// FeatureClass is an ordered collection of features sharing one geometry type.
type FeatureClass struct {
	Type     GeometryType
	Features []*Feature
}

// NewFeatureClass creates an empty class for the given geometry type.
func NewFeatureClass(t GeometryType) *FeatureClass {
	return &FeatureClass{Type: t}
}

// AddFeature appends f. An untyped class adopts the type of its first
// feature; later features must match it.
func (fc *FeatureClass) AddFeature(f *Feature) error {
	if f == nil || f.Geometry == nil {
		return fmt.Errorf("%w: feature has no geometry", ErrGeometryMismatch)
	}
	gt := f.Geometry.Type()
	if fc.Type == GeometryUnknown {
		fc.Type = gt
	}
	if gt != fc.Type {
		return fmt.Errorf("%w: class is %s, feature is %s", ErrGeometryMismatch, fc.Type, gt)
	}
	fc.Features = append(fc.Features, f)
	return nil
}

// Len returns the number of features.
func (fc *FeatureClass) Len() int {
	return len(fc.Features)
}
