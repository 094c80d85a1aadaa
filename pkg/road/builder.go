package road

import (
	"math"

	"github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/graph"
)

// BuildGraph 由道路段构建有向图。每个不同的坐标点是一个节点，
// 双向道路添加两条边，边的长度四舍五入到米，方位角已计算好
func BuildGraph(roads []*Segment) *graph.AdjacencyListGraph {
	g := graph.NewAdjacencyListGraph()

	// 为每个道路点创建图节点
	pointToNode := make(map[geometry.Point]graph.NodeId)
	for _, segment := range roads {
		for _, point := range segment.Points {
			if _, exists := pointToNode[point]; !exists {
				g.AddNode(point)
				pointToNode[point] = g.NodeCount() - 1
			}
		}
	}

	// 添加边
	for _, segment := range roads {
		roadType := segment.Type.String()
		for i := 0; i < len(segment.Points)-1; i++ {
			from := pointToNode[segment.Points[i]]
			to := pointToNode[segment.Points[i+1]]
			if from == to {
				continue
			}

			// 计算两点间的距离（米）作为权重
			distance := int(math.Round(segment.Points[i].DistanceTo(segment.Points[i+1])))

			// 添加边，包含道路类型信息
			if g.AddArc(from, to, distance) {
				g.SetRoadType(from, to, roadType)
			}

			// 如果不是单向路，添加反向边
			if !segment.OneWay && g.AddArc(to, from, distance) {
				g.SetRoadType(to, from, roadType)
			}
		}
	}

	graph.AnnotateBearings(g)
	return g
}
