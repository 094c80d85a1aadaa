package turn

import (
	"errors"
	"fmt"
	"math"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
)

var ErrNegativePenalty = errors.New("turn: penalty must be non-negative")

// PenaltyKey identifies a movement: arrived at Via over From -> Via, leaving over Via -> To
type PenaltyKey struct {
	From graph.NodeId
	Via  graph.NodeId
	To   graph.NodeId
}

// PenaltyTable maps movements to their additional cost in seconds.
// Movements without an entry cost nothing; a nil table is a valid, empty table.
type PenaltyTable map[PenaltyKey]float64

// Return the penalty of the movement from -> via -> to, zero if there is none
func (pt PenaltyTable) Get(from, via, to graph.NodeId) float64 {
	return pt[PenaltyKey{From: from, Via: via, To: to}]
}

// Lookup reports whether the movement has an entry
func (pt PenaltyTable) Lookup(from, via, to graph.NodeId) (float64, bool) {
	p, ok := pt[PenaltyKey{From: from, Via: via, To: to}]
	return p, ok
}

func (pt PenaltyTable) Set(from, via, to graph.NodeId, penalty float64) {
	pt[PenaltyKey{From: from, Via: via, To: to}] = penalty
}

// Check that every entry is a non-negative number
func (pt PenaltyTable) Validate() error {
	for key, penalty := range pt {
		if penalty < 0 || math.IsNaN(penalty) {
			return fmt.Errorf("%w: %v -> %v -> %v has %v", ErrNegativePenalty, key.From, key.Via, key.To, penalty)
		}
	}
	return nil
}

// Check that both penalties are non-negative numbers
func (po PenaltyOptions) Validate() error {
	if po.LeftPenalty < 0 || math.IsNaN(po.LeftPenalty) {
		return fmt.Errorf("%w: left penalty %v", ErrNegativePenalty, po.LeftPenalty)
	}
	if po.RightPenalty < 0 || math.IsNaN(po.RightPenalty) {
		return fmt.Errorf("%w: right penalty %v", ErrNegativePenalty, po.RightPenalty)
	}
	return nil
}

// BuildPenaltyTable classifies every movement through every node of the graph and assigns
// the left or right penalty to it. Straight movements get no entry.
// The arc bearings of the graph must be annotated (see graph.AnnotateBearings).
// Self loops are not filtered.
func BuildPenaltyTable(g graph.Graph, options PenaltyOptions) (PenaltyTable, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}

	penalties := make(PenaltyTable)
	for node := 0; node < g.NodeCount(); node++ {
		incoming, outgoing := graph.IncidentEdges(g, node)
		for _, in := range incoming {
			for _, out := range outgoing {
				direction := Classify(in.Bearing, out.Bearing)
				if direction == Straight {
					continue
				}
				penalties.Set(in.From, node, out.To, options.Penalty(direction))
			}
		}
	}
	return penalties, nil
}
