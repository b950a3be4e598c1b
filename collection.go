package geoson

import (
	"fmt"
	"strings"

	"github.com/woozymasta/geoson/geo"
)

// Feature pairs one geometry with its flattened properties. GeoJSON
// features holding Multi or GeometryCollection geometries expand into
// several Features that carry equal property copies.
type Feature struct {
	Geometry   Geometry
	Properties Properties
}

// FeatureCollection is a decoded document. Every coordinate of every
// feature lives in the ENU frame anchored at Datum, regardless of the frame
// the document was read in.
type FeatureCollection struct {
	Datum    geo.Datum
	Heading  geo.Euler
	Features []Feature

	// Properties keeps the top-level document properties besides crs,
	// datum and heading.
	Properties Properties
}

// String renders a short multi-line summary of the collection, one line
// per feature.
func (fc *FeatureCollection) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "datum: %v, %v, %v\n", fc.Datum.Lat, fc.Datum.Lon, fc.Datum.Alt)
	fmt.Fprintf(&b, "heading: %v\n", fc.Heading.Yaw)
	fmt.Fprintf(&b, "features: %d\n", len(fc.Features))
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case Point:
			fmt.Fprintf(&b, "  point (%.1f, %.1f, %.1f)", g.Coordinates.X, g.Coordinates.Y, g.Coordinates.Z)
		case Segment:
			fmt.Fprintf(&b, "  segment (%.1f, %.1f) -> (%.1f, %.1f)", g.A.X, g.A.Y, g.B.X, g.B.Y)
		case Path:
			fmt.Fprintf(&b, "  path, %d points", len(g.Points))
		case Polygon:
			fmt.Fprintf(&b, "  polygon, %d points", len(g.Ring))
		}
		if n := f.Properties.Len(); n > 0 {
			fmt.Fprintf(&b, ", %d properties", n)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
