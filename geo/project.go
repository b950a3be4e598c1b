package geo

import (
	"math"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
)

var wgs84 = ellipsoid.Init("WGS84", ellipsoid.Degrees, ellipsoid.Meter,
	ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingIsSymmetric)

// ToENU projects w into the tangent plane anchored at d. The planar part is
// the geodesic from the datum split into east and north components; the
// vertical part is the plain altitude difference.
func (w WGS) ToENU(d Datum) Point {
	p := Point{Z: w.Alt - d.Alt}
	dist, bearing := wgs84.To(d.Lat, d.Lon, w.Lat, w.Lon)
	if dist > 0 {
		sin, cos := math.Sincos(bearing * math.Pi / 180)
		p.X = dist * sin
		p.Y = dist * cos
	}
	return p
}

// ToWGS projects p back onto the ellipsoid relative to the datum d.
func (p Point) ToWGS(d Datum) WGS {
	dist := math.Hypot(p.X, p.Y)
	if dist == 0 {
		return WGS{Lat: d.Lat, Lon: d.Lon, Alt: p.Z + d.Alt}
	}
	bearing := math.Atan2(p.X, p.Y) * 180 / math.Pi
	lat, lon := wgs84.At(d.Lat, d.Lon, dist, bearing)
	return WGS{Lat: lat, Lon: lon, Alt: p.Z + d.Alt}
}
