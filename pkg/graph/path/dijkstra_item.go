package path

import (
	"fmt"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
)

// identifies a search state: the directed arc from -> to
type stateKey struct {
	from graph.NodeId
	to   graph.NodeId
}

// TurnItem is an entry of the edge based search.
// It stands for having arrived at `to` over the arc from -> to.
// implements queue.Priorizable
type TurnItem struct {
	from     graph.NodeId // tail of the arc, the predecessor node
	to       graph.NodeId // head of the arc, the current node
	cost     float64      // cost to arrive at `to` over this arc
	sequence uint64       // insertion order, breaks ties
	parent   *TurnItem    // finalized state this one was reached from, nil for the arcs leaving the origin
	index    int          // internal usage
}

func NewTurnItem(from, to graph.NodeId, cost float64, sequence uint64, parent *TurnItem) *TurnItem {
	return &TurnItem{from: from, to: to, cost: cost, sequence: sequence, parent: parent, index: -1}
}

func (item *TurnItem) From() graph.NodeId { return item.from }
func (item *TurnItem) To() graph.NodeId   { return item.to }
func (item *TurnItem) Priority() float64  { return item.cost }
func (item *TurnItem) Sequence() uint64   { return item.sequence }
func (item *TurnItem) Index() int         { return item.index }
func (item *TurnItem) SetIndex(index int) { item.index = index }
func (item *TurnItem) String() string {
	return fmt.Sprintf("%v: %v -> %v, %v\n", item.index, item.from, item.to, item.Priority())
}

func (item *TurnItem) key() stateKey {
	return stateKey{from: item.from, to: item.to}
}

// Return the nodes from the head of this item back to the origin
func (item *TurnItem) reversePath() []graph.NodeId {
	path := make([]graph.NodeId, 0)
	current := item
	for ; current.parent != nil; current = current.parent {
		path = append(path, current.to)
	}
	path = append(path, current.to, current.from)
	return path
}
