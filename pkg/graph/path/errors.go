package path

import (
	"errors"
	"fmt"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
)

var (
	// the source, a target or the first hop is not part of the graph
	ErrNodeNotFound = errors.New("path: node not found in graph")

	// a finalized state got a cheaper cost later on, which needs negative weights or penalties
	ErrContradictoryPaths = errors.New("path: contradictory paths found, negative weights?")

	// the search space is exhausted without finalizing any target
	ErrTargetUnreachable = errors.New("path: no target is reachable")

	ErrNoTargets = errors.New("path: no targets given")

	// cost upper bound or the maximum number of settled states was exceeded
	ErrSearchLimitExceeded = errors.New("path: search limit exceeded")
)

// check that origin and targets are valid nodes of g
func validateQuery(g graph.Graph, origin graph.NodeId, targets []graph.NodeId) error {
	if !graph.ContainsNode(g, origin) {
		return fmt.Errorf("%w: origin %v", ErrNodeNotFound, origin)
	}
	if len(targets) == 0 {
		return ErrNoTargets
	}
	for _, target := range targets {
		if !graph.ContainsNode(g, target) {
			return fmt.Errorf("%w: target %v", ErrNodeNotFound, target)
		}
	}
	return nil
}
