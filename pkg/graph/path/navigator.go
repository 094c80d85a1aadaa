package path

import (
	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

// Result of a search
type Result struct {
	Path   []graph.NodeId // nodes from the origin to the reached target
	Cost   float64        // accumulated weights and turn penalties along the path
	Target graph.NodeId   // the target which was reached first
}

type Navigator interface {
	ComputeShortestPath(origin graph.NodeId, targets []graph.NodeId, weight WeightFunc, penalties turn.PenaltyTable) (Result, error) // Compute the shortest path from the origin to the nearest of the targets
	GetSearchSpace() []graph.NodeId                                                                                                 // Returns the nodes which were settled in the previous computation
	GetPqPops() int                                                                                                                 // Returns the amount of priority queue/heap pops which were performed during the search
	GetPqUpdates() int                                                                                                              // Get the number of pq updates
	GetEdgeRelaxations() int                                                                                                        // Get the number of relaxed edges
	GetRelaxationAttempts() int                                                                                                     // Get the number of attempted edge relaxations (some may early terminated)
	GetGraph() graph.Graph                                                                                                          // Get the used graph
}
