package road

import (
	"github.com/natevvv/osm-turn-routing/pkg/geometry"
)

// Merger 把首尾相连且属性相同的道路段合并成一条
type Merger struct {
	roads           []*Segment
	mergeCount      int
	unmergableCount int
}

func NewMerger(roads []*Segment) *Merger {
	return &Merger{
		roads: roads,
	}
}

func (m *Merger) Merge() {
	// 创建节点到道路段的映射
	nodeToSegments := make(map[geometry.Point][]*Segment)

	// 构建索引
	candidates := make([]*Segment, 0, len(m.roads))
	for _, seg := range m.roads {
		if len(seg.Points) < 2 {
			m.unmergableCount++
			continue
		}
		candidates = append(candidates, seg)

		start := seg.Points[0]
		end := seg.Points[len(seg.Points)-1]

		nodeToSegments[start] = append(nodeToSegments[start], seg)
		nodeToSegments[end] = append(nodeToSegments[end], seg)
	}

	// 合并相连的道路段
	merged := make(map[*Segment]bool)
	var newRoads []*Segment

	// 先从链的起点开始合并，剩下的（环形道路）再逐个处理
	ordered := make([]*Segment, 0, len(candidates))
	rest := make([]*Segment, 0)
	for _, seg := range candidates {
		if hasPredecessor(seg, nodeToSegments) {
			rest = append(rest, seg)
		} else {
			ordered = append(ordered, seg)
		}
	}
	ordered = append(ordered, rest...)

	for _, seg := range ordered {
		if merged[seg] {
			continue
		}
		merged[seg] = true

		current := seg
		for {
			end := current.Points[len(current.Points)-1]
			connected := nodeToSegments[end]
			if len(connected) != 2 {
				// 路口（或道路终点）保持为道路段的端点
				break
			}

			foundNext := false
			for _, next := range connected {
				if merged[next] || next.Points[0] != end {
					continue
				}

				// 检查是否可以合并（相同道路类型、相同属性等）
				if canMerge(current, next) {
					current = mergeTwoSegments(current, next)
					merged[next] = true
					m.mergeCount++
					foundNext = true
					break
				}
			}

			if !foundNext {
				break
			}
		}

		newRoads = append(newRoads, current)
	}

	m.roads = newRoads
}

// 是否有另一条道路段可以接在 seg 前面
func hasPredecessor(seg *Segment, nodeToSegments map[geometry.Point][]*Segment) bool {
	start := seg.Points[0]
	connected := nodeToSegments[start]
	if len(connected) != 2 {
		return false
	}
	for _, prev := range connected {
		if prev != seg && prev.Points[len(prev.Points)-1] == start && canMerge(prev, seg) {
			return true
		}
	}
	return false
}

func canMerge(s1, s2 *Segment) bool {
	return s1.Type == s2.Type &&
		s1.OneWay == s2.OneWay &&
		s1.MaxSpeed == s2.MaxSpeed
}

func mergeTwoSegments(s1, s2 *Segment) *Segment {
	merged := &Segment{
		ID:       s1.ID,
		Type:     s1.Type,
		OneWay:   s1.OneWay,
		MaxSpeed: s1.MaxSpeed,
		Tags:     s1.Tags,
	}

	// 合并点列表
	merged.Points = make([]geometry.Point, 0, len(s1.Points)+len(s2.Points)-1)
	merged.Points = append(merged.Points, s1.Points...)
	merged.Points = append(merged.Points, s2.Points[1:]...) // 跳过第一个点，因为它与s1的最后一个点重复

	return merged
}

func (m *Merger) Roads() []*Segment {
	return m.roads
}

func (m *Merger) MergeCount() int {
	return m.mergeCount
}

func (m *Merger) UnmergableRoadCount() int {
	return m.unmergableCount
}
