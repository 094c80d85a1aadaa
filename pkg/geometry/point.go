package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Point is a geographic coordinate. It shares the memory layout of orb.Point ([lon, lat])
// so it can be used as a map key and converted without copying.
type Point orb.Point

// Create a new point from latitude and longitude (in degrees)
func MakePoint(lat, lon float64) Point {
	return Point{lon, lat}
}

func (p Point) Lat() float64 { return p[1] }
func (p Point) Lon() float64 { return p[0] }

// Return the point as orb.Point
func (p Point) Orb() orb.Point { return orb.Point(p) }

// Return the great circle distance to the other point in metres
func (p Point) DistanceTo(other Point) float64 {
	return geo.DistanceHaversine(p.Orb(), other.Orb())
}

// Return the compass bearing from p to the other point, see Bearing
func (p Point) BearingTo(other Point) float64 {
	return Bearing(p, other)
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat(), p.Lon())
}

// Bearing returns the initial great circle bearing from one point to another
// in degrees clockwise from north, normalised into [0, 360).
// The coordinates are not validated.
func Bearing(from, to Point) float64 {
	// geo.Bearing yields (-180, 180]
	return NormalizeDegrees(geo.Bearing(from.Orb(), to.Orb()))
}

// NormalizeDegrees maps any angle into [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// -1e-15 + 360 rounds to 360
		deg = 0
	}
	return deg
}

// Convert a slice of points to an orb.LineString
func LineString(points []Point) orb.LineString {
	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = p.Orb()
	}
	return ls
}
