package geoson

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/woozymasta/geoson/geo"
)

// Encode serializes the collection as a compact GeoJSON document in the
// requested frame. ENU writes the stored coordinates unchanged; WGS
// projects every point back through the collection datum. Positions always
// carry three components and document members keep a fixed order: type,
// properties (crs, datum, heading, then extras), features.
func (fc *FeatureCollection) Encode(crs CRS) []byte {
	out := make([]byte, 0, 256+len(fc.Features)*96)
	out = append(out, `{"type":"FeatureCollection","properties":{"crs":`...)
	out = appendString(out, crs.String())
	out = append(out, `,"datum":[`...)
	out = appendFloat(out, fc.Datum.Lat)
	out = append(out, ',')
	out = appendFloat(out, fc.Datum.Lon)
	out = append(out, ',')
	out = appendFloat(out, fc.Datum.Alt)
	out = append(out, `],"heading":`...)
	out = appendFloat(out, fc.Heading.Yaw)
	for _, key := range fc.Properties.Keys() {
		value, _ := fc.Properties.Get(key)
		out = append(out, ',')
		out = appendString(out, key)
		out = append(out, ':')
		out = appendPropertyValue(out, value)
	}
	out = append(out, `},"features":[`...)
	for i := range fc.Features {
		if i > 0 {
			out = append(out, ',')
		}
		out = fc.appendFeature(out, &fc.Features[i], crs)
	}
	out = append(out, `]}`...)
	return out
}

func (fc *FeatureCollection) appendFeature(out []byte, f *Feature, crs CRS) []byte {
	out = append(out, `{"type":"Feature","geometry":`...)
	out = fc.appendGeometry(out, f.Geometry, crs)
	out = append(out, `,"properties":{`...)
	for i, key := range f.Properties.Keys() {
		if i > 0 {
			out = append(out, ',')
		}
		value, _ := f.Properties.Get(key)
		out = appendString(out, key)
		out = append(out, ':')
		out = appendPropertyValue(out, value)
	}
	out = append(out, `}}`...)
	return out
}

func (fc *FeatureCollection) appendGeometry(out []byte, g Geometry, crs CRS) []byte {
	out = append(out, `{"type":`...)
	out = appendString(out, g.GeoJSONType())
	out = append(out, `,"coordinates":`...)
	switch v := g.(type) {
	case Point:
		out = fc.appendPosition(out, v.Coordinates, crs)
	case Segment:
		out = append(out, '[')
		out = fc.appendPosition(out, v.A, crs)
		out = append(out, ',')
		out = fc.appendPosition(out, v.B, crs)
		out = append(out, ']')
	case Path:
		out = append(out, '[')
		for i, p := range v.Points {
			if i > 0 {
				out = append(out, ',')
			}
			out = fc.appendPosition(out, p, crs)
		}
		out = append(out, ']')
	case Polygon:
		out = append(out, `[[`...)
		for i, p := range v.Ring {
			if i > 0 {
				out = append(out, ',')
			}
			out = fc.appendPosition(out, p, crs)
		}
		out = append(out, `]]`...)
	}
	out = append(out, '}')
	return out
}

// appendPosition writes one coordinate triple, projected back to geodetic
// lon, lat, alt when the target frame is WGS.
func (fc *FeatureCollection) appendPosition(out []byte, p geo.Point, crs CRS) []byte {
	x, y, z := p.X, p.Y, p.Z
	if crs == WGS {
		w := p.ToWGS(fc.Datum)
		x, y, z = w.Lon, w.Lat, w.Alt
	}
	out = append(out, '[')
	out = appendFloat(out, x)
	out = append(out, ',')
	out = appendFloat(out, y)
	out = append(out, ',')
	out = appendFloat(out, z)
	out = append(out, ']')
	return out
}

func appendFloat(out []byte, v float64) []byte {
	return strconv.AppendFloat(out, v, 'f', -1, 64)
}

func appendString(out []byte, s string) []byte {
	b, _ := json.Marshal(s)
	return append(out, b...)
}

// appendPropertyValue restores a flattened property value: text that parses
// as JSON is emitted as that JSON, anything else as a JSON string.
func appendPropertyValue(out []byte, value string) []byte {
	if gjson.Valid(value) {
		return append(out, value...)
	}
	return appendString(out, value)
}
