// SPDX-License-Identifier: MIT

package openapi_server

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
)

type RouteResult struct {
	Origin      Point `json:"origin"`
	Destination Point `json:"destination"`
	Reachable   bool  `json:"reachable"`
	Path        *Path `json:"path,omitempty"`
}

type Path struct {
	Length     int32            `json:"length"`     // metres
	TravelTime float64          `json:"travelTime"` // seconds, including turn penalties
	Waypoints  []Point          `json:"waypoints"`
	Maneuvers  []Maneuver       `json:"maneuvers"`
	Geometry   *geojson.Feature `json:"geometry,omitempty"`
}

type Maneuver struct {
	Location  Point   `json:"location"`
	Direction string  `json:"direction"`
	Penalty   float64 `json:"penalty"`
}

func errInvalidCoordinate(p Point) error {
	return fmt.Errorf("invalid coordinate (%v, %v)", p.Lat, p.Lon)
}
