package geoson

// CRS identifies the frame used by a document's coordinate arrays. It only
// matters at the read and write boundary: decoded collections always hold
// ENU points.
type CRS int

const (
	// ENU is the local tangent plane frame, meters relative to the datum.
	ENU CRS = iota
	// WGS is the geodetic frame: coordinates are longitude, latitude and
	// altitude on the WGS84 ellipsoid.
	WGS
)

// ParseCRS maps a document crs string onto a CRS value.
func ParseCRS(s string) (CRS, error) {
	switch s {
	case "EPSG:4326", "WGS84", "WGS":
		return WGS, nil
	case "ENU", "ECEF":
		return ENU, nil
	}
	return ENU, &UnknownCRSError{Value: s}
}

// String returns the form written into documents on encode.
func (c CRS) String() string {
	if c == WGS {
		return "EPSG:4326"
	}
	return "ENU"
}
