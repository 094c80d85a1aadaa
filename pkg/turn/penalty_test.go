package turn

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geo "github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/graph"
)

// counter clockwise square: 0 (south west) -> 1 (south east) -> 2 (north east) -> 3 (north west) -> 0
const squareFmi = `4
4
0 0 0
1 0 0.001
2 0.001 0.001
3 0.001 0
0 1 10
1 2 10
2 3 10
3 0 10
`

// a plus sign around node 0
const crossFmi = `5
4
# undirected
0 0 0
1 0.001 0
2 0 0.001
3 -0.001 0
4 0 -0.001
0 1 10
0 2 10
0 3 10
0 4 10
`

func mustGraph(t *testing.T, fmi string) *graph.AdjacencyListGraph {
	t.Helper()
	g, err := graph.NewAdjacencyListFromFmiString(fmi)
	require.NoError(t, err)
	return g
}

func TestBuildPenaltyTableSquare(t *testing.T) {
	g := mustGraph(t, squareFmi)
	pt, err := BuildPenaltyTable(g, MakePenaltyOptions())
	require.NoError(t, err)

	expected := PenaltyTable{
		{From: 3, Via: 0, To: 1}: 60,
		{From: 0, Via: 1, To: 2}: 60,
		{From: 1, Via: 2, To: 3}: 60,
		{From: 2, Via: 3, To: 0}: 60,
	}
	require.Equal(t, expected, pt)
	assert.Equal(t, 60.0, pt.Get(0, 1, 2))
	assert.Equal(t, 0.0, pt.Get(0, 1, 3))
}

func TestBuildPenaltyTableUndirected(t *testing.T) {
	g := mustGraph(t, crossFmi)
	pt, err := BuildPenaltyTable(g, MakePenaltyOptions().SetLeftPenalty(45).SetRightPenalty(15))
	require.NoError(t, err)

	// coming from the north (heading south)
	assert.Equal(t, 45.0, pt.Get(1, 0, 2), "east is a left turn")
	assert.Equal(t, 15.0, pt.Get(1, 0, 4), "west is a right turn")
	_, ok := pt.Lookup(1, 0, 3)
	assert.False(t, ok, "going through has no entry")

	// the same physical edge is used to arrive and to leave
	penalty, ok := pt.Lookup(1, 0, 1)
	assert.True(t, ok)
	assert.Equal(t, 45.0, penalty)

	// the leaves only have their u-turn
	for leaf := 1; leaf <= 4; leaf++ {
		penalty, ok := pt.Lookup(0, leaf, 0)
		assert.True(t, ok)
		assert.Equal(t, 45.0, penalty)
	}
	// 4 arms * (left + right + u-turn) at the centre, one u-turn per leaf
	assert.Len(t, pt, 16)
}

func TestBuildPenaltyTableStraightHasNoEntry(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(7)), 40, 160)
	pt, err := BuildPenaltyTable(g, MakePenaltyOptions())
	require.NoError(t, err)

	for node := 0; node < g.NodeCount(); node++ {
		incoming, outgoing := graph.IncidentEdges(g, node)
		for _, in := range incoming {
			for _, out := range outgoing {
				penalty, ok := pt.Lookup(in.From, node, out.To)
				switch Classify(in.Bearing, out.Bearing) {
				case Straight:
					assert.False(t, ok, "straight movement %v -> %v -> %v has an entry", in.From, node, out.To)
				case Left:
					assert.Equal(t, DefaultLeftPenalty, penalty)
				case Right:
					assert.Equal(t, DefaultRightPenalty, penalty)
				}
			}
		}
	}
}

func TestBuildPenaltyTableIsIdempotent(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(3)), 30, 90)
	first, err := BuildPenaltyTable(g, MakePenaltyOptions())
	require.NoError(t, err)
	second, err := BuildPenaltyTable(g, MakePenaltyOptions())
	require.NoError(t, err)
	require.Equal(t, first, second)

	// fresh table each call
	first.Set(0, 0, 0, 1)
	require.NotEqual(t, first, second)
}

func TestBuildPenaltyTableOnArrayGraph(t *testing.T) {
	g := mustGraph(t, squareFmi)
	fromList, err := BuildPenaltyTable(g, MakePenaltyOptions())
	require.NoError(t, err)
	fromArray, err := BuildPenaltyTable(graph.NewAdjacencyArrayFromGraph(g), MakePenaltyOptions())
	require.NoError(t, err)
	require.Equal(t, fromList, fromArray)
}

func TestBuildPenaltyTableRejectsNegativePenalty(t *testing.T) {
	g := mustGraph(t, squareFmi)
	_, err := BuildPenaltyTable(g, MakePenaltyOptions().SetLeftPenalty(-1))
	require.True(t, errors.Is(err, ErrNegativePenalty))
	_, err = BuildPenaltyTable(g, MakePenaltyOptions().SetRightPenalty(-0.5))
	require.True(t, errors.Is(err, ErrNegativePenalty))
}

func TestPenaltyFile(t *testing.T) {
	g := mustGraph(t, crossFmi)
	pt, err := BuildPenaltyTable(g, MakePenaltyOptions())
	require.NoError(t, err)

	filename := filepath.Join(t.TempDir(), "penalties.txt")
	require.NoError(t, WritePenaltyFile(pt, filename))
	read, err := ReadPenaltyFile(filename)
	require.NoError(t, err)
	require.Equal(t, pt, read)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Equal(t, pt.AsString(), string(content))
}

func TestParsePenaltiesErrors(t *testing.T) {
	_, err := ParsePenalties("1 2 3\n")
	require.Error(t, err)
	_, err = ParsePenalties("1 2 x 4\n")
	require.Error(t, err)
	_, err = ParsePenalties("1 2 3 -4\n")
	require.True(t, errors.Is(err, ErrNegativePenalty))

	pt, err := ParsePenalties("# comment\n\n1 2 3 4.5\n")
	require.NoError(t, err)
	require.Equal(t, 4.5, pt.Get(1, 2, 3))
}

// random directed graph on a small grid of coordinates, without self loops
func randomGraph(rng *rand.Rand, nodes, arcs int) *graph.AdjacencyListGraph {
	g := graph.NewAdjacencyListGraph()
	for i := 0; i < nodes; i++ {
		g.AddNode(geo.MakePoint(rng.Float64()*0.01, rng.Float64()*0.01))
	}
	for i := 0; i < arcs; i++ {
		from, to := rng.Intn(nodes), rng.Intn(nodes)
		if from == to {
			continue
		}
		g.AddArc(from, to, 1+rng.Intn(100))
	}
	graph.AnnotateBearings(g)
	return g
}
