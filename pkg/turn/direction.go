package turn

import (
	"math"
)

// Direction is the kind of movement at an intersection
type Direction int

const (
	Straight Direction = iota
	Right
	Left
)

func (d Direction) String() string {
	switch d {
	case Straight:
		return "straight"
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return "invalid"
}

// RelativeBearing returns the turning angle (out - in) mod 360 in [0, 360)
func RelativeBearing(bearingIn, bearingOut float64) float64 {
	r := math.Mod(bearingOut-bearingIn, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

// Classify the turn from an arrival bearing to a departure bearing.
// The boundaries are asymmetric on purpose, 150 degrees is still a right turn:
//
//	right:    30 <  r <= 150
//	left:    150 <  r <  330
//	straight: everything else
func Classify(bearingIn, bearingOut float64) Direction {
	r := RelativeBearing(bearingIn, bearingOut)
	switch {
	case r > 150 && r < 330:
		return Left
	case r > 30 && r <= 150:
		return Right
	default:
		return Straight
	}
}
