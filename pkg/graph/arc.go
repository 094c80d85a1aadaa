package graph

// Arc is an outgoing arc, stored at its tail node
type Arc struct {
	To       int
	Distance int     // length in metres
	RoadType string  // highway class, empty if unknown
	Bearing  float64 // direction of travel at the tail in degrees [0, 360), see AnnotateBearings
}

// Major roads are the ones a long distance route should prefer
func (a Arc) IsMajorRoad() bool {
	switch a.RoadType {
	case "motorway", "trunk", "primary", "secondary", "tertiary":
		return true
	default:
		return false
	}
}
