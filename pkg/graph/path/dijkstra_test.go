package path

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	geo "github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/graph"
)

const graphFmi = `10
26
# nodes
0 0 0
1 0 1
2 0 2
3 1 0
4 1 1
5 1 2
6 2 0
7 2 1
8 2 2
9 3 3
# edges
0 1 1
0 3 1
1 0 1
1 2 1
1 4 1
2 1 1
2 5 1
3 0 1
3 4 1
3 6 1
4 1 1
4 3 1
4 5 1
4 7 1
5 2 1
5 4 1
5 8 1
6 3 1
6 7 1
7 4 1
7 6 1
7 8 1
8 5 1
8 7 1
8 9 1
9 8 1`

func mustGraph(t testing.TB, fmi string) *graph.AdjacencyArrayGraph {
	t.Helper()
	g, err := graph.NewAdjacencyArrayFromFmiString(fmi)
	require.NoError(t, err)
	return g
}

// check that the path starts at origin, ends at target and only uses arcs of the graph
func requireValidPath(t *testing.T, g graph.Graph, path []graph.NodeId, origin, target graph.NodeId) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, origin, path[0])
	require.Equal(t, target, path[len(path)-1])
	for i := 0; i < len(path)-1; i++ {
		_, ok := graph.FindArc(g, path[i], path[i+1])
		require.True(t, ok, "path %v uses the missing arc %v -> %v", path, path[i], path[i+1])
	}
}

func TestPlainDijkstra(t *testing.T) {
	aag := mustGraph(t, graphFmi)
	d := NewDijkstra(aag)
	result, err := d.ComputeShortestPath(0, []graph.NodeId{9}, nil, nil)
	require.NoError(t, err)
	lengthReference := 5.0
	if result.Cost != lengthReference {
		t.Errorf("length is %v. Should be %v\n", result.Cost, lengthReference)
	}
	if len(result.Path) != 6 {
		t.Errorf("path has wrong length. Is %v, should be %v\n", len(result.Path), 6)
	}
	requireValidPath(t, aag, result.Path, 0, 9)
	require.Equal(t, result.Path, d.GetPath(0, 9))
	require.Contains(t, d.GetSearchSpace(), 9)
	require.Greater(t, d.GetPqPops(), 0)
	require.GreaterOrEqual(t, d.GetRelaxationAttempts(), d.GetEdgeRelaxations())
}

func TestPlainDijkstraErrors(t *testing.T) {
	aag := mustGraph(t, twoComponentsFmi)
	d := NewDijkstra(aag)

	_, err := d.ComputeShortestPath(0, []graph.NodeId{3}, nil, nil)
	require.True(t, errors.Is(err, ErrTargetUnreachable))

	_, err = d.ComputeShortestPath(7, []graph.NodeId{3}, nil, nil)
	require.True(t, errors.Is(err, ErrNodeNotFound))

	negative := mustGraph(t, negativeFmi)
	_, err = NewDijkstra(negative).ComputeShortestPath(0, []graph.NodeId{4}, nil, nil)
	require.True(t, errors.Is(err, ErrContradictoryPaths))
}

// random directed graph with coordinates on a small area and annotated bearings
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
		g.AddArc(from, to, rng.Intn(50))
	}
	graph.AnnotateBearings(g)
	return g
}

func BenchmarkTurnDijkstra(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := graph.NewAdjacencyArrayFromGraph(randomGraph(rng, 2000, 8000))
	queries := make([][2]graph.NodeId, 10)
	for i := range queries {
		queries[i] = [2]graph.NodeId{rng.Intn(2000), rng.Intn(2000)}
	}
	for _, navigator := range []Navigator{NewDijkstra(g), NewTurnDijkstra(g)} {
		b.Run(fmt.Sprintf("%T", navigator), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				for _, q := range queries {
					navigator.ComputeShortestPath(q[0], []graph.NodeId{q[1]}, nil, nil)
				}
			}
		})
	}
}
