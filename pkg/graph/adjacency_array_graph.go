package graph

import (
	geo "github.com/natevvv/osm-turn-routing/pkg/geometry"
)

// Implementation for static graphs
type AdjacencyArrayGraph struct {
	Nodes          []geo.Point
	arcs           []Arc
	Offsets        []int
	reverseEdges   []Edge // incoming edges, grouped by head
	reverseOffsets []int
	directed       bool
}

var (
	_ DirectedGraph = (*AdjacencyArrayGraph)(nil)
	_ BearingSetter = (*AdjacencyArrayGraph)(nil)
)

// Create an AdjacencyArrayGraph from the given graph
func NewAdjacencyArrayFromGraph(g Graph) *AdjacencyArrayGraph {
	nodes := make([]geo.Point, 0, g.NodeCount())
	arcs := make([]Arc, 0, g.ArcCount())
	offsets := make([]int, g.NodeCount()+1)
	inDegree := make([]int, g.NodeCount())

	for i := 0; i < g.NodeCount(); i++ {
		// add node
		nodes = append(nodes, *g.GetNode(i))

		// add all edges of node
		arcs = append(arcs, g.GetArcsFrom(i)...)
		for _, arc := range g.GetArcsFrom(i) {
			inDegree[arc.To]++
		}

		// set stop-offset
		offsets[i+1] = len(arcs)
	}

	// counting sort of the arcs by their head
	reverseOffsets := make([]int, g.NodeCount()+1)
	for i, d := range inDegree {
		reverseOffsets[i+1] = reverseOffsets[i] + d
	}
	reverseEdges := make([]Edge, len(arcs))
	next := make([]int, g.NodeCount())
	copy(next, reverseOffsets[:g.NodeCount()])
	for from := 0; from < g.NodeCount(); from++ {
		for _, arc := range arcs[offsets[from]:offsets[from+1]] {
			reverseEdges[next[arc.To]] = arc.Edge(from)
			next[arc.To]++
		}
	}

	return &AdjacencyArrayGraph{
		Nodes:          nodes,
		arcs:           arcs,
		Offsets:        offsets,
		reverseEdges:   reverseEdges,
		reverseOffsets: reverseOffsets,
		directed:       g.IsDirected(),
	}
}

// Get the node for the given id
func (aag *AdjacencyArrayGraph) GetNode(id NodeId) *geo.Point {
	if id < 0 || id >= aag.NodeCount() {
		return nil
	}
	return &aag.Nodes[id]
}

// get all nodes of the graph
func (aag *AdjacencyArrayGraph) GetNodes() []geo.Point {
	return aag.Nodes
}

// Get the Arcs for the given node id
func (aag *AdjacencyArrayGraph) GetArcsFrom(id NodeId) []Arc {
	if id < 0 || id >= aag.NodeCount() {
		return nil
	}
	return aag.arcs[aag.Offsets[id]:aag.Offsets[id+1]]
}

// Get the incoming edges for the given node id
func (aag *AdjacencyArrayGraph) GetEdgesInto(id NodeId) []Edge {
	if id < 0 || id >= aag.NodeCount() {
		return nil
	}
	return aag.reverseEdges[aag.reverseOffsets[id]:aag.reverseOffsets[id+1]]
}

// Returns the number of Nodes in the graph
func (aag *AdjacencyArrayGraph) NodeCount() int {
	return len(aag.Nodes)
}

// Returns the total number of arcs in the graph
func (aag *AdjacencyArrayGraph) ArcCount() int {
	return len(aag.arcs)
}

func (aag *AdjacencyArrayGraph) IsDirected() bool {
	return aag.directed
}

// Returns a human readable string of the graph
func (aag *AdjacencyArrayGraph) AsString() string {
	return GraphAsString(aag)
}

// Set the bearing of an arc. The copy in the reverse index is updated as well.
func (aag *AdjacencyArrayGraph) SetBearing(from NodeId, arcIndex int, bearing float64) {
	arc := &aag.arcs[aag.Offsets[from]+arcIndex]
	arc.Bearing = bearing
	for i := aag.reverseOffsets[arc.To]; i < aag.reverseOffsets[arc.To+1]; i++ {
		if aag.reverseEdges[i].From == from {
			aag.reverseEdges[i].Bearing = bearing
		}
	}
}
