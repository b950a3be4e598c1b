// Package geo holds the coordinate types shared by the geoson codec and the
// conversions between geodetic WGS84 positions and a local tangent plane.
package geo

// Datum anchors a local tangent plane to the WGS84 ellipsoid. Lat and Lon
// are degrees, Alt is meters above the ellipsoid.
type Datum struct {
	Lat float64
	Lon float64
	Alt float64
}

// Euler is an orientation in degrees. Documents carry only Yaw; Roll and
// Pitch stay zero until a source provides them.
type Euler struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// Point is a position in the local tangent plane: X east, Y north, Z up,
// all meters relative to the datum.
type Point struct {
	X float64
	Y float64
	Z float64
}

// WGS is a geodetic position: degrees latitude and longitude, meters
// altitude above the ellipsoid.
type WGS struct {
	Lat float64
	Lon float64
	Alt float64
}
