package road

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/graph"
)

func TestParseRoadType(t *testing.T) {
	assert.Equal(t, Motorway, ParseRoadType("motorway"))
	assert.Equal(t, Motorway, ParseRoadType("motorway_link"))
	assert.Equal(t, Residential, ParseRoadType("residential"))
	assert.Equal(t, LivingStreet, ParseRoadType("living_street"))
	assert.Equal(t, Unknown, ParseRoadType("footway"))
	assert.Equal(t, Unknown, ParseRoadType("unknown"))
	assert.Equal(t, "secondary", Secondary.String())
}

func TestParseMaxSpeed(t *testing.T) {
	assert.Equal(t, 50, ParseMaxSpeed("50", 30))
	assert.Equal(t, 48, ParseMaxSpeed("30 mph", 30))
	assert.Equal(t, 30, ParseMaxSpeed("none", 30))
	assert.Equal(t, 30, ParseMaxSpeed("", 30))
}

func TestNewSegment(t *testing.T) {
	points := []geometry.Point{geometry.MakePoint(0, 0), geometry.MakePoint(0, 0.001), geometry.MakePoint(0, 0.002)}
	s := NewSegment(7, map[string]string{"highway": "primary", "oneway": "-1"}, points)
	assert.Equal(t, Primary, s.Type)
	assert.True(t, s.OneWay)
	assert.Equal(t, 80, s.MaxSpeed)
	assert.Equal(t, geometry.MakePoint(0, 0.002), s.Points[0])
	assert.InDelta(t, 222.4, s.Length(), 1)

	s = NewSegment(8, map[string]string{"highway": "motorway", "maxspeed": "130"}, points)
	assert.True(t, s.OneWay)
	assert.Equal(t, 130, s.MaxSpeed)

	s = NewSegment(9, map[string]string{"highway": "residential"}, points)
	assert.False(t, s.OneWay)
}

func TestRoadTypeJson(t *testing.T) {
	data, err := json.Marshal(Segment{ID: 1, Type: Trunk})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Type":"trunk"`)

	var s Segment
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, Trunk, s.Type)

	require.NoError(t, json.Unmarshal([]byte(`{"Type":3}`), &s))
	assert.Equal(t, Primary, s.Type)
}

func TestMerge(t *testing.T) {
	p := func(lon float64) geometry.Point { return geometry.MakePoint(0, lon) }
	q := geometry.MakePoint(0.001, 0.002)
	roads := []*Segment{
		{ID: 2, Type: Primary, Points: []geometry.Point{p(1), p(2)}},
		{ID: 1, Type: Primary, Points: []geometry.Point{p(0), p(1)}},
		// p(2) is an intersection, nothing gets merged across it
		{ID: 3, Type: Primary, Points: []geometry.Point{p(2), p(3)}},
		{ID: 4, Type: Secondary, Points: []geometry.Point{p(2), q}},
		{ID: 5, Type: Primary, Points: []geometry.Point{p(9)}},
	}

	m := NewMerger(roads)
	m.Merge()

	assert.Equal(t, 1, m.MergeCount())
	assert.Equal(t, 1, m.UnmergableRoadCount())
	require.Len(t, m.Roads(), 3)

	var merged *Segment
	for _, r := range m.Roads() {
		if r.ID == 1 {
			merged = r
		}
		assert.NotEqual(t, int64(2), r.ID)
	}
	require.NotNil(t, merged)
	assert.Equal(t, []geometry.Point{p(0), p(1), p(2)}, merged.Points)
}

func TestBuildGraph(t *testing.T) {
	a := geometry.MakePoint(0, 0)
	b := geometry.MakePoint(0, 0.001)
	c := geometry.MakePoint(0.001, 0.001)
	roads := []*Segment{
		{ID: 1, Type: Primary, Points: []geometry.Point{a, b}},
		{ID: 2, Type: Residential, OneWay: true, Points: []geometry.Point{b, b, c}},
	}

	g := BuildGraph(roads)
	require.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.ArcCount())
	assert.True(t, g.IsDirected())

	arc, ok := graph.FindArc(g, 0, 1)
	require.True(t, ok)
	assert.Equal(t, 111, arc.Distance)
	assert.Equal(t, "primary", arc.RoadType)
	assert.InDelta(t, 90, arc.Bearing, 1e-6)

	_, ok = graph.FindArc(g, 1, 0)
	assert.True(t, ok)

	arc, ok = graph.FindArc(g, 1, 2)
	require.True(t, ok)
	assert.Equal(t, "residential", arc.RoadType)
	assert.InDelta(t, 0, arc.Bearing, 1e-6)
	_, ok = graph.FindArc(g, 2, 1)
	assert.False(t, ok)
}
