// SPDX-License-Identifier: MIT

package openapi_server

import "github.com/natevvv/osm-turn-routing/pkg/geometry"

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AssertPointRequired checks if the required fields are not zero-ed.
// A coordinate of 0 is a valid value, so there is nothing to check.
func AssertPointRequired(obj Point) error {
	return nil
}

// AssertPointConstraints checks that the coordinate is inside the valid range
func AssertPointConstraints(obj Point) error {
	if obj.Lat < -90 || obj.Lat > 90 || obj.Lon < -180 || obj.Lon > 180 {
		return &ParsingError{Err: errInvalidCoordinate(obj)}
	}
	return nil
}

func (p Point) toGeometry() geometry.Point {
	return geometry.MakePoint(p.Lat, p.Lon)
}

func makePoint(p geometry.Point) Point {
	return Point{Lat: p.Lat(), Lon: p.Lon()}
}

func makePoints(points []geometry.Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		result = append(result, makePoint(p))
	}
	return result
}
