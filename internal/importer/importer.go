package importer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/natevvv/osm-turn-routing/pkg/geometry"
	"github.com/natevvv/osm-turn-routing/pkg/road"
)

// Importer 从 OSM 数据中读取道路段
type Importer interface {
	Import(ctx context.Context) error
	Roads() []*road.Segment
}

// 道路段的收集器，PBF 和 XML 导入共用
type collector struct {
	nodes       map[int64]geometry.Point
	roads       []*road.Segment
	missingNode int // 引用了不存在节点的次数
}

func newCollector() collector {
	return collector{
		nodes: make(map[int64]geometry.Point),
		roads: make([]*road.Segment, 0),
	}
}

func (c *collector) addNode(id int64, lat, lon float64) {
	c.nodes[id] = geometry.MakePoint(lat, lon)
}

// 把 way 转换为道路段。只处理已知的道路类型
func (c *collector) segmentFromWay(id int64, tags map[string]string, nodeIds []int64) *road.Segment {
	highway, ok := tags["highway"]
	if !ok || road.ParseRoadType(highway) == road.Unknown {
		return nil
	}

	points := make([]geometry.Point, 0, len(nodeIds))
	// 添加节点坐标
	for _, nodeId := range nodeIds {
		if point, ok := c.nodes[nodeId]; ok {
			points = append(points, point)
		} else {
			c.missingNode++
		}
	}
	if len(points) < 2 {
		return nil
	}
	return road.NewSegment(id, tags, points)
}

func (c *collector) Roads() []*road.Segment {
	return c.roads
}

// 引用了缺失节点的次数（通常是裁剪过的区域文件）
func (c *collector) MissingNodes() int {
	return c.missingNode
}

// ImportFile 根据文件扩展名选择 PBF 或 XML 导入
func ImportFile(ctx context.Context, filename string) ([]*road.Segment, error) {
	var importer Importer
	if strings.HasSuffix(filename, ".pbf") {
		importer = NewPbfImporter(filename)
	} else {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		importer = NewXmlImporter(file)
	}

	if err := importer.Import(ctx); err != nil {
		return nil, fmt.Errorf("import %v: %w", filename, err)
	}
	return importer.Roads(), nil
}
