package graph

import (
	"fmt"
	"strings"

	geo "github.com/natevvv/osm-turn-routing/pkg/geometry"
)

type NodeId = int

// Graph is the read-only view the search algorithms work on.
// Arcs are stored at their tail, so GetArcsFrom enumerates the out-neighbours of a node.
type Graph interface {
	GetNode(id NodeId) *geo.Point
	GetNodes() []geo.Point
	GetArcsFrom(id NodeId) []Arc
	NodeCount() int
	ArcCount() int
	AsString() string
	IsDirected() bool // false if every arc has a counterpart in the opposite direction by construction
}

// DirectedGraph additionally knows the incoming arcs of a node
type DirectedGraph interface {
	Graph
	GetEdgesInto(id NodeId) []Edge
}

type DynamicGraph interface {
	Graph
	AddNode(n geo.Point)
	AddArc(from, to NodeId, distance int) bool
}

// Edge is a free-standing arc which knows both endpoints
type Edge struct {
	From     NodeId
	To       NodeId
	Distance int
	RoadType string
	Bearing  float64
}

func MakeArc(to NodeId, distance int, roadType string) Arc {
	return Arc{To: to, Distance: distance, RoadType: roadType}
}

// Turn the arc into an edge starting at from
func (a Arc) Edge(from NodeId) Edge {
	return Edge{From: from, To: a.To, Distance: a.Distance, RoadType: a.RoadType, Bearing: a.Bearing}
}

func (a Arc) Destination() NodeId {
	return a.To
}

func (a Arc) Cost() int {
	return a.Distance
}

// Return the arc from -> to, if there is one
func FindArc(g Graph, from, to NodeId) (Arc, bool) {
	for _, arc := range g.GetArcsFrom(from) {
		if arc.To == to {
			return arc, true
		}
	}
	return Arc{}, false
}

// Check if the node id is part of the graph
func ContainsNode(g Graph, id NodeId) bool {
	return id >= 0 && id < g.NodeCount()
}

func GraphAsString(g Graph) string {
	var sb strings.Builder

	// write number of nodes and number of edges
	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))
	if !g.IsDirected() {
		sb.WriteString(undirectedMarker + "\n")
	}

	sb.WriteString("#Nodes\n")
	// list all nodes structured as "id lat lon"
	for i := 0; i < g.NodeCount(); i++ {
		node := g.GetNode(i)
		sb.WriteString(fmt.Sprintf("%v %v %v\n", i, node.Lat(), node.Lon()))
	}

	sb.WriteString("#Edges\n")
	// list all edges structured as "fromId targetId distance [roadType]"
	// undirected graphs list each edge once
	for i := 0; i < g.NodeCount(); i++ {
		for _, arc := range g.GetArcsFrom(i) {
			if !g.IsDirected() && arc.To < i {
				continue
			}
			if arc.RoadType == "" {
				sb.WriteString(fmt.Sprintf("%v %v %v\n", i, arc.Destination(), arc.Cost()))
			} else {
				sb.WriteString(fmt.Sprintf("%v %v %v %v\n", i, arc.Destination(), arc.Cost(), arc.RoadType))
			}
		}
	}
	return sb.String()
}
