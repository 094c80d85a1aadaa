package path

import (
	"container/heap"
	"fmt"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/queue"
	"github.com/natevvv/osm-turn-routing/pkg/slice"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

// Dijkstra is the plain, node based Dijkstra. It ignores turn penalties.
// Implements the Navigator interface.
type Dijkstra struct {
	g                  graph.Graph
	dijkstraItems      []*queue.Item
	settled            []bool
	pqPops             int
	pqUpdates          int
	relaxationAttempts int
	relaxedEdges       int
}

func NewDijkstra(g graph.Graph) *Dijkstra {
	return &Dijkstra{g: g}
}

// Compute the shortest path from the origin to the nearest target. The penalties are not used.
func (d *Dijkstra) ComputeShortestPath(origin graph.NodeId, targets []graph.NodeId, weight WeightFunc, _ turn.PenaltyTable) (Result, error) {
	if err := validateQuery(d.g, origin, targets); err != nil {
		return Result{}, err
	}
	if weight == nil {
		weight = DistanceWeight
	}

	isTarget := slice.MakeFixedSizeSlice(d.g.NodeCount())
	isTarget.Add(targets...)

	d.dijkstraItems = make([]*queue.Item, d.g.NodeCount())
	d.settled = make([]bool, d.g.NodeCount())
	sequence := uint64(0)
	originItem := queue.NewQueueItem(origin, 0, -1, sequence)
	d.dijkstraItems[origin] = originItem

	pq := queue.NewQueue(originItem)

	d.pqPops = 0
	d.pqUpdates = 0
	d.relaxationAttempts = 0
	d.relaxedEdges = 0

	for pq.Len() > 0 {
		currentPqItem := heap.Pop(pq).(*queue.Item)
		currentNodeId := currentPqItem.ItemId
		d.settled[currentNodeId] = true
		d.pqPops++

		if isTarget.Get()[currentNodeId] {
			return Result{Path: d.GetPath(origin, currentNodeId), Cost: currentPqItem.Priority, Target: currentNodeId}, nil
		}

		for _, arc := range d.g.GetArcsFrom(currentNodeId) {
			d.relaxationAttempts++
			successor := arc.Destination()
			cost, ok := weight(currentNodeId, successor, arc)
			if !ok {
				continue
			}
			newPriority := currentPqItem.Priority + cost

			if d.dijkstraItems[successor] == nil {
				sequence++
				pqItem := queue.NewQueueItem(successor, newPriority, currentNodeId, sequence)
				d.dijkstraItems[successor] = pqItem
				heap.Push(pq, pqItem)
				d.pqUpdates++
			} else if newPriority < d.dijkstraItems[successor].Priority {
				if d.settled[successor] {
					return Result{}, fmt.Errorf("%w: node %v settled with %v, found %v", ErrContradictoryPaths, successor, d.dijkstraItems[successor].Priority, newPriority)
				}
				pq.Update(d.dijkstraItems[successor], newPriority)
				d.pqUpdates++
				d.dijkstraItems[successor].Predecessor = currentNodeId
			} else {
				continue
			}
			d.relaxedEdges++
		}
	}

	return Result{}, fmt.Errorf("%w: %v -> %v", ErrTargetUnreachable, origin, targets)
}

// Get the path to the destination of the previous computation
func (d *Dijkstra) GetPath(origin, destination graph.NodeId) []graph.NodeId {
	path := make([]graph.NodeId, 0) // by default, a non-existing path is an empty slice
	if destination >= 0 && destination < len(d.dijkstraItems) && d.dijkstraItems[destination] != nil {
		for nodeId := destination; nodeId != -1; nodeId = d.dijkstraItems[nodeId].Predecessor {
			path = append(path, nodeId)
		}
		slice.ReverseInPlace(path)
	}
	return path
}

func (d *Dijkstra) GetSearchSpace() []graph.NodeId {
	nodes := make([]graph.NodeId, 0)
	for nodeId, settled := range d.settled {
		if settled {
			nodes = append(nodes, nodeId)
		}
	}
	return nodes
}

func (d *Dijkstra) GetPqPops() int             { return d.pqPops }
func (d *Dijkstra) GetPqUpdates() int          { return d.pqUpdates }
func (d *Dijkstra) GetEdgeRelaxations() int    { return d.relaxedEdges }
func (d *Dijkstra) GetRelaxationAttempts() int { return d.relaxationAttempts }
func (d *Dijkstra) GetGraph() graph.Graph      { return d.g }
