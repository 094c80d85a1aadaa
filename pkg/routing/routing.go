package routing

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/graph/path"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

var ErrUnknownNavigator = errors.New("routing: unknown navigator")

// 可选的导航算法
const (
	NavigatorDijkstra     = "dijkstra"      // 普通 Dijkstra，不考虑转弯惩罚
	NavigatorTurnDijkstra = "turn-dijkstra" // 基于边的 Dijkstra，考虑转弯惩罚
)

// 路由器。所有方法都可以并发调用，查询会依次执行
type Router struct {
	mu            sync.Mutex
	graph         graph.Graph
	penalties     turn.PenaltyTable
	navigator     path.Navigator
	navigatorType string
	debugLevel    int
}

// 创建新的路由器
func NewRouter(g graph.Graph, penalties turn.PenaltyTable, navigator string) (*Router, error) {
	r := &Router{
		graph:     g,
		penalties: penalties,
	}
	if err := r.SetNavigator(navigator); err != nil {
		return nil, err
	}
	return r, nil
}

// 设置导航算法
func (r *Router) SetNavigator(navigatorType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch navigatorType {
	case NavigatorDijkstra:
		r.navigator = path.NewDijkstra(r.graph)
	case NavigatorTurnDijkstra:
		d := path.NewTurnDijkstra(r.graph)
		d.SetDebugLevel(r.debugLevel)
		r.navigator = d
	default:
		return fmt.Errorf("%w: %v", ErrUnknownNavigator, navigatorType)
	}
	r.navigatorType = navigatorType
	return nil
}

func (r *Router) Navigator() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.navigatorType
}

func (r *Router) SetDebugLevel(level int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugLevel = level
	if d, ok := r.navigator.(*path.TurnDijkstra); ok {
		d.SetDebugLevel(level)
	}
}

// 计算路径
func (r *Router) ComputeRoute(origin, destination geometry.Point, config RouteConfig) (Route, error) {
	return r.ComputeRouteToAny(origin, []geometry.Point{destination}, config)
}

// 计算到最近（通行时间最短）的一个目的地的路径
// 目的地不可达时返回 Exists == false 的结果，而不是错误
func (r *Router) ComputeRouteToAny(origin geometry.Point, destinations []geometry.Point, config RouteConfig) (Route, error) {
	weight, err := config.WeightFunc()
	if err != nil {
		return Route{}, err
	}
	if len(destinations) == 0 {
		return Route{}, path.ErrNoTargets
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	originNode := r.findNearestNode(origin)
	if originNode < 0 {
		return Route{}, fmt.Errorf("%w: graph is empty", path.ErrNodeNotFound)
	}
	targets := make([]graph.NodeId, 0, len(destinations))
	for _, destination := range destinations {
		targets = append(targets, r.findNearestNode(destination))
	}

	result, err := r.navigator.ComputeShortestPath(originNode, targets, weight, r.penalties)
	if errors.Is(err, path.ErrTargetUnreachable) {
		if r.debugLevel >= 1 {
			log.Printf("No route %v -> %v\n", origin, destinations)
		}
		return Route{Origin: origin, Destination: destinations[0], Exists: false}, nil
	} else if err != nil {
		return Route{}, err
	}

	destination := destinations[0]
	for i, target := range targets {
		if target == result.Target {
			destination = destinations[i]
			break
		}
	}

	return Route{
		Origin:      origin,
		Destination: destination,
		Exists:      true,
		Nodes:       result.Path,
		Waypoints:   buildWaypoints(r.graph, result.Path),
		Length:      pathLength(r.graph, result.Path),
		TravelTime:  result.Cost,
		Maneuvers:   buildManeuvers(r.graph, result.Path, r.penalties),
	}, nil
}

// 获取所有节点
func (r *Router) GetNodes() []geometry.Point {
	return r.graph.GetNodes()
}

// 获取上一次搜索的搜索空间
func (r *Router) GetSearchSpace() []geometry.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	searchSpace := r.navigator.GetSearchSpace()
	points := make([]geometry.Point, 0, len(searchSpace))
	for _, nodeId := range searchSpace {
		if point := r.graph.GetNode(nodeId); point != nil {
			points = append(points, *point)
		}
	}
	return points
}

// 查找最近节点，图为空时返回 -1
func (r *Router) findNearestNode(point geometry.Point) graph.NodeId {
	minDist := math.MaxFloat64
	nearestNode := -1
	for i := 0; i < r.graph.NodeCount(); i++ {
		if node := r.graph.GetNode(i); node != nil {
			dist := point.DistanceTo(*node)
			if dist < minDist {
				minDist = dist
				nearestNode = i
			}
		}
	}
	return nearestNode
}
