package turn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		in, out float64
		want    Direction
	}{
		{0, 0, Straight},
		{0, 30, Straight},
		{0, 30.0001, Right},
		{0, 90, Right},
		{0, 150, Right},
		{0, 150.0001, Left},
		{0, 180, Left},
		{0, 270, Left},
		{0, 329.9999, Left},
		{0, 330, Straight},
		{0, 359.9, Straight},
		// wrap around north
		{350, 20, Straight},
		{300, 40, Right},
		{90, 0, Left},
		{270, 0, Right},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.in, tt.out), "classify(%v, %v)", tt.in, tt.out)
	}
}

func TestClassifyIdenticalBearingsIsStraight(t *testing.T) {
	for b := 0.0; b < 360; b += 7.5 {
		require.Equal(t, Straight, Classify(b, b))
	}
}

func TestClassifyPartitionsTheCircle(t *testing.T) {
	for i := 0; i < 3600; i++ {
		r := float64(i) / 10
		got := Classify(0, r)
		var want Direction
		switch {
		case r > 30 && r <= 150:
			want = Right
		case r > 150 && r < 330:
			want = Left
		default:
			want = Straight
		}
		require.Equal(t, want, got, "relative bearing %v", r)
	}
}

func TestRelativeBearing(t *testing.T) {
	assert.Equal(t, 270.0, RelativeBearing(90, 0))
	assert.Equal(t, 90.0, RelativeBearing(270, 0))
	assert.Equal(t, 0.0, RelativeBearing(42, 42))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "straight", Straight.String())
	assert.Equal(t, "invalid", Direction(7).String())
}
