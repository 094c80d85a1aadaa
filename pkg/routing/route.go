package routing

import (
	"github.com/paulmach/orb/geojson"

	"github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

// 转弯提示
type Maneuver struct {
	Node      graph.NodeId   // 路口节点
	Location  geometry.Point // 路口坐标
	Direction turn.Direction // 左转或右转
	Penalty   float64        // 此次转弯的附加时间（秒）
}

// 路由结果
type Route struct {
	Origin      geometry.Point   // 起点
	Destination geometry.Point   // 终点（实际到达的目的地）
	Exists      bool             // 是否存在可行路径
	Nodes       []graph.NodeId   // 路径上的节点
	Waypoints   []geometry.Point // 路径点序列
	Length      int              // 路径长度（米）
	TravelTime  float64          // 通行时间（秒），包括转弯惩罚
	Maneuvers   []Maneuver       // 路径上的转弯
}

// 以 GeoJSON LineString 的形式返回路径
func (r Route) GeoJSON() *geojson.Feature {
	feature := geojson.NewFeature(geometry.LineString(r.Waypoints))
	feature.Properties["length"] = r.Length
	feature.Properties["travelTime"] = r.TravelTime
	feature.Properties["maneuvers"] = len(r.Maneuvers)
	return feature
}

// 构建路径点
func buildWaypoints(g graph.Graph, nodes []graph.NodeId) []geometry.Point {
	waypoints := make([]geometry.Point, 0, len(nodes))
	for _, nodeID := range nodes {
		if point := g.GetNode(nodeID); point != nil {
			waypoints = append(waypoints, *point)
		}
	}
	return waypoints
}

// 计算实际距离（而不是时间权重）
func pathLength(g graph.Graph, nodes []graph.NodeId) int {
	length := 0
	for i := 0; i < len(nodes)-1; i++ {
		if arc, ok := graph.FindArc(g, nodes[i], nodes[i+1]); ok {
			length += arc.Distance
		}
	}
	return length
}

// 对每个中间节点判断转弯方向，直行不记录
func buildManeuvers(g graph.Graph, nodes []graph.NodeId, penalties turn.PenaltyTable) []Maneuver {
	maneuvers := make([]Maneuver, 0)
	for i := 1; i < len(nodes)-1; i++ {
		in, okIn := graph.FindArc(g, nodes[i-1], nodes[i])
		out, okOut := graph.FindArc(g, nodes[i], nodes[i+1])
		if !okIn || !okOut {
			continue
		}
		direction := turn.Classify(in.Bearing, out.Bearing)
		if direction == turn.Straight {
			continue
		}
		maneuvers = append(maneuvers, Maneuver{
			Node:      nodes[i],
			Location:  *g.GetNode(nodes[i]),
			Direction: direction,
			Penalty:   penalties.Get(nodes[i-1], nodes[i], nodes[i+1]),
		})
	}
	return maneuvers
}
