package graph

import (
	geo "github.com/natevvv/osm-turn-routing/pkg/geometry"
)

// Graphs implementing this interface can get their bearings annotated in place
type BearingSetter interface {
	Graph
	SetBearing(from NodeId, arcIndex int, bearing float64)
}

// AnnotateBearings stores the compass bearing of every arc, pointing from its tail to its head.
func AnnotateBearings(g BearingSetter) {
	for from := 0; from < g.NodeCount(); from++ {
		tail := *g.GetNode(from)
		for i, arc := range g.GetArcsFrom(from) {
			g.SetBearing(from, i, geo.Bearing(tail, *g.GetNode(arc.To)))
		}
	}
}

// IncidentEdges returns the incoming and outgoing edges of a node.
// For directed graphs the native in/out adjacency is used.
// In undirected graphs every incident edge is usable in both roles, so each neighbour shows up
// once as the tail of an incoming edge (with the bearing of travelling towards the node) and once
// as the head of an outgoing edge.
func IncidentEdges(g Graph, node NodeId) (incoming, outgoing []Edge) {
	arcs := g.GetArcsFrom(node)
	outgoing = make([]Edge, 0, len(arcs))
	for _, arc := range arcs {
		outgoing = append(outgoing, arc.Edge(node))
	}

	if dg, ok := g.(DirectedGraph); ok && g.IsDirected() {
		return dg.GetEdgesInto(node), outgoing
	}

	incoming = make([]Edge, 0, len(arcs))
	for _, arc := range arcs {
		reverse, ok := FindArc(g, arc.To, node)
		if !ok {
			// both directions are stored for undirected graphs, but don't rely on it
			reverse = Arc{To: node, Distance: arc.Distance, RoadType: arc.RoadType, Bearing: geo.Bearing(*g.GetNode(arc.To), *g.GetNode(node))}
		}
		incoming = append(incoming, reverse.Edge(arc.To))
	}
	return incoming, outgoing
}
