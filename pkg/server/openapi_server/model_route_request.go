// SPDX-License-Identifier: MIT

package openapi_server

type RouteRequest struct {
	Origin         *Point   `json:"origin"`
	Destination    *Point   `json:"destination"`
	VehicleType    string   `json:"vehicleType,omitempty"`
	PreferHighway  *bool    `json:"preferHighway,omitempty"`
	MaxSpeed       int      `json:"maxSpeed,omitempty"`
	AvoidRoadTypes []string `json:"avoidRoadTypes,omitempty"`
}

// AssertRouteRequestRequired checks if the required fields are not zero-ed
func AssertRouteRequestRequired(obj RouteRequest) error {
	elements := map[string]interface{}{
		"origin":      obj.Origin,
		"destination": obj.Destination,
	}
	for name, el := range elements {
		if isZero := IsZeroValue(el); isZero {
			return &RequiredError{Field: name}
		}
	}

	if err := AssertPointConstraints(*obj.Origin); err != nil {
		return err
	}
	if err := AssertPointConstraints(*obj.Destination); err != nil {
		return err
	}
	return nil
}
