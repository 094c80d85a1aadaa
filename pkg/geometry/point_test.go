package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearingCardinalDirections(t *testing.T) {
	origin := MakePoint(0, 0)
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"north", MakePoint(1, 0), 0},
		{"east", MakePoint(0, 1), 90},
		{"south", MakePoint(-1, 0), 180},
		{"west", MakePoint(0, -1), 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Bearing(origin, tt.to), 1e-9)
		})
	}
}

func TestBearingRange(t *testing.T) {
	points := []Point{
		MakePoint(41.87, -87.64),
		MakePoint(41.89, -87.62),
		MakePoint(-33.9, 151.2),
		MakePoint(51.5, -0.12),
		MakePoint(0, 179.9),
		MakePoint(0, -179.9),
	}
	for _, from := range points {
		for _, to := range points {
			b := Bearing(from, to)
			require.GreaterOrEqual(t, b, 0.0)
			require.Less(t, b, 360.0)
		}
	}
}

func TestBearingIsDeterministic(t *testing.T) {
	a := MakePoint(41.8781, -87.6298)
	b := MakePoint(41.8800, -87.6300)
	require.Equal(t, Bearing(a, b), Bearing(a, b))
	require.Equal(t, a.BearingTo(b), Bearing(a, b))
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 270.0, NormalizeDegrees(-90))
	assert.Equal(t, 10.0, NormalizeDegrees(730))
	assert.Equal(t, 150.0, NormalizeDegrees(150))
}

func TestPointAccessors(t *testing.T) {
	p := MakePoint(48.1, 11.5)
	assert.Equal(t, 48.1, p.Lat())
	assert.Equal(t, 11.5, p.Lon())
	assert.Equal(t, 11.5, p.Orb().Lon())

	// one degree of latitude is roughly 111 km
	d := MakePoint(0, 0).DistanceTo(MakePoint(1, 0))
	assert.InDelta(t, 111195, d, 100)
}
