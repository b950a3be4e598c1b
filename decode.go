package geoson

import (
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/woozymasta/geoson/geo"
)

// Decode builds a FeatureCollection from GeoJSON document bytes.
//
// The top-level properties object must carry crs, datum and heading. Bare
// Feature and bare geometry documents are wrapped into a synthesized
// FeatureCollection without one, so they fail with a MissingFieldError for
// "properties".
//
// Decoding is all or nothing: the first invalid position aborts with an
// error and no partial collection. Unknown geometry types, features without
// geometry and features that are not objects are skipped instead.
func Decode(data []byte) (*FeatureCollection, error) {
	root, err := normalizeDocument(data)
	if err != nil {
		return nil, err
	}

	props := root.Get("properties")
	if !props.IsObject() {
		return nil, &MissingFieldError{Field: "properties"}
	}

	crsValue := props.Get("crs")
	if crsValue.Type != gjson.String {
		return nil, &MissingFieldError{Field: "crs"}
	}
	crs, err := ParseCRS(crsValue.Str)
	if err != nil {
		return nil, err
	}

	datumValue := props.Get("datum")
	if !datumValue.IsArray() {
		return nil, &MissingFieldError{Field: "datum"}
	}
	elems := datumValue.Array()
	if len(elems) < 3 {
		return nil, &MissingFieldError{Field: "datum"}
	}
	datum := geo.Datum{
		Lat: numberValue(elems[0]),
		Lon: numberValue(elems[1]),
		Alt: numberValue(elems[2]),
	}

	heading := props.Get("heading")
	if heading.Type != gjson.Number {
		return nil, &MissingFieldError{Field: "heading"}
	}

	fc := &FeatureCollection{
		Datum:   datum,
		Heading: geo.Euler{Yaw: heading.Num},
	}
	props.ForEach(func(key, value gjson.Result) bool {
		switch key.Str {
		case "crs", "datum", "heading":
			return true
		}
		fc.Properties.Set(key.Str, flattenValue(value))
		return true
	})

	features := root.Get("features")
	if !features.IsArray() {
		return fc, nil
	}
	var decodeErr error
	features.ForEach(func(_, feature gjson.Result) bool {
		if !feature.IsObject() {
			log.Trace().Msg("Skipping feature that is not an object")
			return true
		}
		geometry := feature.Get("geometry")
		if !geometry.Exists() || geometry.Type == gjson.Null {
			log.Trace().Msg("Skipping feature without geometry")
			return true
		}
		geoms, err := decodeGeometry(geometry, datum, crs)
		if err != nil {
			decodeErr = err
			return false
		}
		featProps := flattenProperties(feature.Get("properties"))
		for _, g := range geoms {
			fc.Features = append(fc.Features, Feature{
				Geometry:   g,
				Properties: featProps.Clone(),
			})
		}
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return fc, nil
}

// decodeGeometry converts one GeoJSON geometry object into zero or more
// geometry variants. Unknown types and missing coordinate members decode to
// nothing, which keeps documents with unrecognized geometries readable.
func decodeGeometry(value gjson.Result, datum geo.Datum, crs CRS) ([]Geometry, error) {
	if !value.IsObject() {
		return nil, nil
	}
	coords := value.Get("coordinates")

	var out []Geometry
	switch typeName := stringValue(value.Get("type")); typeName {
	case "Point":
		if coords.IsArray() {
			pt, err := decodePosition(coords, datum, crs)
			if err != nil {
				return nil, err
			}
			out = append(out, Point{Coordinates: pt})
		}
	case "LineString":
		if coords.IsArray() {
			g, err := decodeLine(coords, datum, crs)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
	case "Polygon":
		if coords.IsArray() {
			g, err := decodePolygon(coords, datum, crs)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
	case "MultiPoint":
		if !coords.IsArray() {
			break
		}
		for _, el := range coords.Array() {
			if !el.IsArray() {
				continue
			}
			pt, err := decodePosition(el, datum, crs)
			if err != nil {
				return nil, err
			}
			out = append(out, Point{Coordinates: pt})
		}
	case "MultiLineString":
		if !coords.IsArray() {
			break
		}
		for _, el := range coords.Array() {
			if !el.IsArray() {
				continue
			}
			g, err := decodeLine(el, datum, crs)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
	case "MultiPolygon":
		if !coords.IsArray() {
			break
		}
		for _, el := range coords.Array() {
			if !el.IsArray() {
				continue
			}
			g, err := decodePolygon(el, datum, crs)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
		}
	case "GeometryCollection":
		members := value.Get("geometries")
		if !members.IsArray() {
			break
		}
		for _, el := range members.Array() {
			if !el.IsObject() {
				continue
			}
			sub, err := decodeGeometry(el, datum, crs)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	default:
		log.Trace().Str("type", typeName).Msg("Skipping unsupported geometry type")
	}
	return out, nil
}

// decodePosition reads one coordinate array. Geodetic positions arrive as
// lon, lat, alt and are projected into the datum frame; ENU positions are
// taken as is. A missing third coordinate defaults to zero.
func decodePosition(coords gjson.Result, datum geo.Datum, crs CRS) (geo.Point, error) {
	elems := coords.Array()
	if len(elems) < 2 {
		return geo.Point{}, &InvalidCoordinatesError{}
	}
	x := numberValue(elems[0])
	y := numberValue(elems[1])
	var z float64
	if len(elems) > 2 {
		z = numberValue(elems[2])
	}
	if crs == WGS {
		return geo.WGS{Lat: y, Lon: x, Alt: z}.ToENU(datum), nil
	}
	return geo.Point{X: x, Y: y, Z: z}, nil
}

// decodeLine reads a LineString coordinate list: exactly two positions make
// a Segment, any other count a Path. Entries that are not arrays are
// skipped before the count is taken.
func decodeLine(coords gjson.Result, datum geo.Datum, crs CRS) (Geometry, error) {
	var pts []geo.Point
	for _, el := range coords.Array() {
		if !el.IsArray() {
			continue
		}
		pt, err := decodePosition(el, datum, crs)
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	if len(pts) == 2 {
		return Segment{A: pts[0], B: pts[1]}, nil
	}
	return Path{Points: pts}, nil
}

// decodePolygon keeps only the exterior ring of a polygon.
func decodePolygon(coords gjson.Result, datum geo.Datum, crs CRS) (Polygon, error) {
	rings := coords.Array()
	if len(rings) > 1 {
		log.Trace().Int("rings", len(rings)-1).Msg("Dropping polygon interior rings")
	}
	if len(rings) == 0 || !rings[0].IsArray() {
		return Polygon{}, nil
	}
	var pts []geo.Point
	for _, el := range rings[0].Array() {
		if !el.IsArray() {
			continue
		}
		pt, err := decodePosition(el, datum, crs)
		if err != nil {
			return Polygon{}, err
		}
		pts = append(pts, pt)
	}
	return Polygon{Ring: pts}, nil
}
