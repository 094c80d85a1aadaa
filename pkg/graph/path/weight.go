package path

import "github.com/natevvv/osm-turn-routing/pkg/graph"

// WeightFunc returns the cost of traversing the arc from -> to.
// If ok is false, the arc is hidden and the search ignores it.
type WeightFunc func(from, to graph.NodeId, arc graph.Arc) (cost float64, ok bool)

// Use the arc length as cost
func DistanceWeight(from, to graph.NodeId, arc graph.Arc) (float64, bool) {
	return float64(arc.Distance), true
}

// Hide every arc for which hidden returns true, use weight for all others
func HideArcs(weight WeightFunc, hidden func(from, to graph.NodeId, arc graph.Arc) bool) WeightFunc {
	return func(from, to graph.NodeId, arc graph.Arc) (float64, bool) {
		if hidden(from, to, arc) {
			return 0, false
		}
		return weight(from, to, arc)
	}
}
