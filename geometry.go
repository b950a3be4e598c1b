package geoson

import "github.com/woozymasta/geoson/geo"

// Geometry is one decoded geometry variant. Every coordinate is an ENU
// point in the owning collection's datum frame. The variant set is closed:
// Point, Segment, Path and Polygon.
type Geometry interface {
	// GeoJSONType is the geometry type name written on encode.
	GeoJSONType() string

	isGeometry()
}

// Point is a single position.
type Point struct {
	Coordinates geo.Point
}

// Segment is a line of exactly two positions. A LineString with two valid
// positions decodes into it; every other length becomes a Path.
type Segment struct {
	A geo.Point
	B geo.Point
}

// Path is an open polyline. Its length is never exactly two.
type Path struct {
	Points []geo.Point
}

// Polygon holds the exterior ring of a GeoJSON polygon. Ring closure is
// kept exactly as read and interior rings are not represented.
type Polygon struct {
	Ring []geo.Point
}

func (Point) GeoJSONType() string   { return "Point" }
func (Segment) GeoJSONType() string { return "LineString" }
func (Path) GeoJSONType() string    { return "LineString" }
func (Polygon) GeoJSONType() string { return "Polygon" }

func (Point) isGeometry()   {}
func (Segment) isGeometry() {}
func (Path) isGeometry()    {}
func (Polygon) isGeometry() {}
