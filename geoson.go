// Package geoson reads and writes GeoJSON documents whose coordinates live
// in a local tangent plane anchored at a geodetic datum.
//
// Decoding accepts a FeatureCollection, a bare Feature or a bare geometry,
// resolves the document frame from the top-level properties (crs, datum,
// heading) and normalizes every position into ENU meters: X east, Y north,
// Z up relative to the datum. Encoding runs the same path backwards and can
// emit either frame from the same collection.
package geoson

import "os"

// ReadFile reads and decodes the GeoJSON document at path.
func ReadFile(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// WriteFile encodes fc in the requested frame and writes it to path.
func WriteFile(path string, fc *FeatureCollection, crs CRS) error {
	return os.WriteFile(path, fc.Encode(crs), 0644)
}
