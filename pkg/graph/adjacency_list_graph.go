package graph

import (
	"fmt"

	geo "github.com/natevvv/osm-turn-routing/pkg/geometry"
)

// Implementation for dynamic graphs
type AdjacencyListGraph struct {
	Nodes    []geo.Point // The nodes of the graph
	Edges    [][]Arc     // The Arcs of the graph. The first slice specifies to which the arc belongs
	incoming [][]NodeId  // the tails of the incoming arcs for each node
	arcCount int         // the number of arcs in the graph
	directed bool        // if false, every AddArc inserts both directions
}

var (
	_ DynamicGraph  = (*AdjacencyListGraph)(nil)
	_ DirectedGraph = (*AdjacencyListGraph)(nil)
	_ BearingSetter = (*AdjacencyListGraph)(nil)
)

// Create a new, empty directed graph
func NewAdjacencyListGraph() *AdjacencyListGraph {
	return &AdjacencyListGraph{
		Nodes:    make([]geo.Point, 0),
		Edges:    make([][]Arc, 0),
		incoming: make([][]NodeId, 0),
		directed: true,
	}
}

// Create a new, empty undirected graph. Each added arc is usable in both directions.
func NewUndirectedAdjacencyListGraph() *AdjacencyListGraph {
	alg := NewAdjacencyListGraph()
	alg.directed = false
	return alg
}

// Return the node for the given id
func (alg *AdjacencyListGraph) GetNode(id NodeId) *geo.Point {
	if id < 0 || id >= alg.NodeCount() {
		return nil
	}
	return &alg.Nodes[id]
}

// Return all nodes of the graph
func (alg *AdjacencyListGraph) GetNodes() []geo.Point {
	return alg.Nodes
}

// Get the arcs for the given node
func (alg *AdjacencyListGraph) GetArcsFrom(id NodeId) []Arc {
	if id < 0 || id >= alg.NodeCount() {
		return nil
	}
	return alg.Edges[id]
}

// Get the incoming edges of the given node
func (alg *AdjacencyListGraph) GetEdgesInto(id NodeId) []Edge {
	if id < 0 || id >= alg.NodeCount() {
		return nil
	}
	edges := make([]Edge, 0, len(alg.incoming[id]))
	for _, tail := range alg.incoming[id] {
		if arc, ok := FindArc(alg, tail, id); ok {
			edges = append(edges, arc.Edge(tail))
		}
	}
	return edges
}

// Return the number of total nodes
func (alg *AdjacencyListGraph) NodeCount() int {
	return len(alg.Nodes)
}

// Return the numebr of total arcs
func (alg *AdjacencyListGraph) ArcCount() int {
	return alg.arcCount
}

func (alg *AdjacencyListGraph) IsDirected() bool {
	return alg.directed
}

// Return a human readable string of the graph
func (alg *AdjacencyListGraph) AsString() string {
	return GraphAsString(alg)
}

// Add a node to the graph
func (alg *AdjacencyListGraph) AddNode(n geo.Point) {
	alg.Nodes = append(alg.Nodes, n)
	alg.Edges = append(alg.Edges, make([]Arc, 0))
	alg.incoming = append(alg.incoming, make([]NodeId, 0))
}

// Add an arc to the graph, going from source to target with the given distance.
// For undirected graphs the opposite arc is added as well.
// Returns false if an arc with a shorter or equal distance already exists.
func (alg *AdjacencyListGraph) AddArc(from, to NodeId, distance int) bool {
	if from < 0 || to < 0 || from >= alg.NodeCount() || to >= alg.NodeCount() {
		panic(fmt.Sprintf("Arc out of range %v -> %v", from, to))
	}
	added := alg.addSingleArc(from, to, distance)
	if !alg.directed && from != to {
		alg.addSingleArc(to, from, distance)
	}
	return added
}

func (alg *AdjacencyListGraph) addSingleArc(from, to NodeId, distance int) bool {
	// check for duplicates
	arcs := alg.Edges[from]
	for i := range arcs {
		arc := &arcs[i]
		if to == arc.To {
			// keep the shorter one
			if distance < arc.Distance {
				arc.Distance = distance
				return true
			}
			return false
		}
	}

	alg.Edges[from] = append(alg.Edges[from], MakeArc(to, distance, ""))
	alg.incoming[to] = append(alg.incoming[to], from)
	alg.arcCount++
	return true
}

// Set the road type of the arc from -> to (and to -> from for undirected graphs)
func (alg *AdjacencyListGraph) SetRoadType(from, to NodeId, roadType string) bool {
	if from < 0 || to < 0 || from >= alg.NodeCount() || to >= alg.NodeCount() {
		return false
	}

	found := false
	arcs := alg.Edges[from]
	for i := range arcs {
		if arcs[i].To == to {
			arcs[i].RoadType = roadType
			found = true
		}
	}
	if !alg.directed && from != to {
		reverse := alg.Edges[to]
		for i := range reverse {
			if reverse[i].To == from {
				reverse[i].RoadType = roadType
			}
		}
	}
	return found
}

// Set the bearing of an arc, identified by its tail and the index in the tail's arc list
func (alg *AdjacencyListGraph) SetBearing(from NodeId, arcIndex int, bearing float64) {
	alg.Edges[from][arcIndex].Bearing = bearing
}
