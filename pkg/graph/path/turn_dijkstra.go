package path

import (
	"fmt"
	"log"
	"math"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/queue"
	"github.com/natevvv/osm-turn-routing/pkg/slice"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

type TurnSearchOptions struct {
	costUpperBound      float64      // upper bound of cost from origin to destination
	maxNumSettledStates int          // maximum number of settled states before search is terminated
	firstHop            graph.NodeId // if set (>= 0), the search has to leave the origin towards this node
}

type SearchKPIs struct {
	pqPops             int // store the amount of Pops which were performed on the priority queue for the computed search
	pqUpdates          int // store each update or push to the priority queue
	relaxationAttempts int // store the attempt for relaxed edges
	relaxedEdges       int // number of relaxed edges
	numSettledStates   int // number of settled states
}

// Reset the kpi
func (kpi *SearchKPIs) Reset() {
	kpi.pqPops = 0
	kpi.pqUpdates = 0
	kpi.relaxationAttempts = 0
	kpi.relaxedEdges = 0
	kpi.numSettledStates = 0
}

// TurnDijkstra is Dijkstra's algorithm on the arcs of a graph instead of its nodes.
// A state is the arc (predecessor, current), so the cost of leaving a node can depend on how it was entered.
// This allows to charge turn penalties for the movement predecessor -> current -> next.
//
// The cost of a state is the cost of arriving at its head: the weights of all arcs up to and including
// the state's arc plus the penalties of the turns in between.
// Equal costs are served in insertion order.
//
// A TurnDijkstra keeps the data of its last search, so it must not be used by concurrent searches.
// Implements the Navigator interface.
type TurnDijkstra struct {
	g       graph.Graph
	minHeap *queue.MinHeap[*TurnItem]

	settled     map[stateKey]float64 // final cost of the settled states
	tentative   map[stateKey]float64 // best known cost of the states in the queue
	sequence    uint64               // next sequence number
	searchSpace slice.FixedSizeSlice // nodes which are the head of a settled state

	searchOptions TurnSearchOptions
	searchKPIs    SearchKPIs

	debugLevel int // debug level for logging purpose
}

// Create a new TurnDijkstra instance with the given graph g
func NewTurnDijkstra(g graph.Graph) *TurnDijkstra {
	options := TurnSearchOptions{costUpperBound: math.Inf(1), maxNumSettledStates: math.MaxInt, firstHop: -1}
	return &TurnDijkstra{g: g, searchOptions: options}
}

// ShortestPath computes the path from the source to the nearest of the targets, taking turn penalties into account.
// penalties may be nil, then it is a plain shortest path.
func ShortestPath(g graph.Graph, source graph.NodeId, targets []graph.NodeId, weight WeightFunc, penalties turn.PenaltyTable) ([]graph.NodeId, error) {
	result, err := NewTurnDijkstra(g).ComputeShortestPath(source, targets, weight, penalties)
	if err != nil {
		return nil, err
	}
	return result.Path, nil
}

// Compute the shortest path from the origin to the first reached target.
// A nil weight function uses the arc distance.
//
// Errors:
//   - ErrNodeNotFound if origin, a target or the first hop is not in the graph
//   - ErrNoTargets if targets is empty
//   - ErrContradictoryPaths if a settled state gets a cheaper cost (negative weights)
//   - turn.ErrNegativePenalty if a negative penalty is encountered
//   - ErrSearchLimitExceeded if the cost upper bound or the number of settled states is exceeded
//   - ErrTargetUnreachable if no target can be reached
func (d *TurnDijkstra) ComputeShortestPath(origin graph.NodeId, targets []graph.NodeId, weight WeightFunc, penalties turn.PenaltyTable) (Result, error) {
	if err := validateQuery(d.g, origin, targets); err != nil {
		return Result{}, err
	}
	if weight == nil {
		weight = DistanceWeight
	}

	if d.debugLevel >= 1 {
		log.Printf("New turn search: %v -> %v\n", origin, targets)
	}

	isTarget := slice.MakeFixedSizeSlice(d.g.NodeCount())
	isTarget.Add(targets...)

	if err := d.initializeSearch(origin, weight); err != nil {
		return Result{}, err
	}

	if isTarget.Get()[origin] {
		// nothing to drive
		return Result{Path: []graph.NodeId{origin}, Cost: 0, Target: origin}, nil
	}

	for d.minHeap.Len() > 0 {
		current := d.minHeap.Pop()
		d.searchKPIs.pqPops++

		if _, ok := d.settled[current.key()]; ok {
			// outdated entry, the state was settled with a lower cost before
			continue
		}
		d.settleState(current)

		if current.cost > d.searchOptions.costUpperBound || d.searchKPIs.numSettledStates > d.searchOptions.maxNumSettledStates {
			// Each following state exeeds the max allowed cost or the number of allowed states is reached
			if d.debugLevel >= 1 {
				log.Printf("Exceeded limits - cost upper bound: %v, current cost: %v, max settled states: %v, current settled states: %v\n", d.searchOptions.costUpperBound, current.cost, d.searchOptions.maxNumSettledStates, d.searchKPIs.numSettledStates)
			}
			return Result{}, ErrSearchLimitExceeded
		}

		if isTarget.Get()[current.to] {
			path := current.reversePath()
			slice.ReverseInPlace(path)
			if d.debugLevel >= 1 {
				log.Printf("Found path %v -> %v with cost %v\n", origin, current.to, current.cost)
			}
			return Result{Path: path, Cost: current.cost, Target: current.to}, nil
		}

		if err := d.relaxEdges(current, weight, penalties); err != nil {
			if d.debugLevel >= 1 {
				log.Printf("Aborted search: %v\n", err)
			}
			return Result{}, err
		}
	}

	if d.debugLevel >= 1 {
		log.Printf("Finished search, no path found. Visited %.2f%% of the nodes\n", 100*d.searchSpace.Ratio())
	}
	return Result{}, fmt.Errorf("%w: %v -> %v", ErrTargetUnreachable, origin, targets)
}

// Initialize a new search.
// The arcs leaving the origin are the initial states, their weight is charged right away.
func (d *TurnDijkstra) initializeSearch(origin graph.NodeId, weight WeightFunc) error {
	if d.searchOptions.firstHop >= 0 {
		if _, ok := graph.FindArc(d.g, origin, d.searchOptions.firstHop); !ok {
			return fmt.Errorf("%w: no arc from origin %v to first hop %v", ErrNodeNotFound, origin, d.searchOptions.firstHop)
		}
	}

	d.searchKPIs.Reset()
	d.settled = make(map[stateKey]float64)
	d.tentative = make(map[stateKey]float64)
	d.sequence = 0
	d.searchSpace = slice.MakeFixedSizeSlice(d.g.NodeCount())
	d.searchSpace.Add(origin)
	d.minHeap = queue.NewMinHeap[*TurnItem](nil)

	for _, arc := range d.g.GetArcsFrom(origin) {
		if d.searchOptions.firstHop >= 0 && arc.To != d.searchOptions.firstHop {
			continue
		}
		d.searchKPIs.relaxationAttempts++
		cost, ok := weight(origin, arc.To, arc)
		if !ok {
			continue
		}
		d.push(origin, arc.To, cost, nil)
	}
	return nil
}

// Settle the given state
func (d *TurnDijkstra) settleState(item *TurnItem) {
	if d.debugLevel >= 2 {
		log.Printf("Settling state %v -> %v, cost %v\n", item.from, item.to, item.cost)
	}
	d.settled[item.key()] = item.cost
	delete(d.tentative, item.key())
	d.searchSpace.Add(item.to)
	d.searchKPIs.numSettledStates++
}

// Relax the arcs leaving the head of the given (settled) state
func (d *TurnDijkstra) relaxEdges(item *TurnItem, weight WeightFunc, penalties turn.PenaltyTable) error {
	for _, arc := range d.g.GetArcsFrom(item.to) {
		d.searchKPIs.relaxationAttempts++

		cost, ok := weight(item.to, arc.To, arc)
		if !ok {
			// hidden arc
			continue
		}
		penalty := penalties.Get(item.from, item.to, arc.To)
		if penalty < 0 {
			return fmt.Errorf("%w: %v -> %v -> %v has %v", turn.ErrNegativePenalty, item.from, item.to, arc.To, penalty)
		}

		newCost := item.cost + penalty + cost
		next := stateKey{from: item.to, to: arc.To}
		if settledCost, ok := d.settled[next]; ok {
			if newCost < settledCost {
				return fmt.Errorf("%w: %v -> %v settled with %v, found %v", ErrContradictoryPaths, next.from, next.to, settledCost, newCost)
			}
			continue
		}
		if best, ok := d.tentative[next]; !ok || newCost < best {
			d.push(item.to, arc.To, newCost, item)
			d.searchKPIs.relaxedEdges++
		}
	}
	return nil
}

// add a new entry to the queue. Improvements are added as new entries, the old ones get skipped when popped
func (d *TurnDijkstra) push(from, to graph.NodeId, cost float64, parent *TurnItem) {
	d.tentative[stateKey{from: from, to: to}] = cost
	d.minHeap.Push(NewTurnItem(from, to, cost, d.sequence, parent))
	d.sequence++
	d.searchKPIs.pqUpdates++
}

// Returns the nodes which were reached by a settled state in the previous computation
func (d *TurnDijkstra) GetSearchSpace() []graph.NodeId {
	nodes := make([]graph.NodeId, 0, d.searchSpace.Len())
	for nodeId, visited := range d.searchSpace.Get() {
		if visited {
			nodes = append(nodes, nodeId)
		}
	}
	return nodes
}

// Return the final cost of the state from -> to of the previous computation
func (d *TurnDijkstra) SettledCost(from, to graph.NodeId) (float64, bool) {
	cost, ok := d.settled[stateKey{from: from, to: to}]
	return cost, ok
}

func (d *TurnDijkstra) GetPqPops() int             { return d.searchKPIs.pqPops }
func (d *TurnDijkstra) GetPqUpdates() int          { return d.searchKPIs.pqUpdates }
func (d *TurnDijkstra) GetEdgeRelaxations() int    { return d.searchKPIs.relaxedEdges }
func (d *TurnDijkstra) GetRelaxationAttempts() int { return d.searchKPIs.relaxationAttempts }
func (d *TurnDijkstra) GetSettledStates() int      { return d.searchKPIs.numSettledStates }
func (d *TurnDijkstra) GetGraph() graph.Graph      { return d.g }

// Set the debug level
func (d *TurnDijkstra) SetDebugLevel(level int) {
	d.debugLevel = level
}

// Set the cost upper bound. Searches which would settle a state above it fail with ErrSearchLimitExceeded
func (d *TurnDijkstra) SetCostUpperBound(costUpperBound float64) {
	d.searchOptions.costUpperBound = costUpperBound
}

// Set the maximum number of settled states. Searches which need more fail with ErrSearchLimitExceeded
func (d *TurnDijkstra) SetMaxNumSettledStates(maxNumSettledStates int) {
	d.searchOptions.maxNumSettledStates = maxNumSettledStates
}

// Force the search to leave the origin towards the given node. A negative node id removes the restriction
func (d *TurnDijkstra) SetFirstHop(node graph.NodeId) {
	d.searchOptions.firstHop = node
}
