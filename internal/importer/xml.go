package importer

import (
	"context"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
)

// XmlImporter 读取 .osm XML 数据。节点在道路之前出现，因此读一遍就足够
type XmlImporter struct {
	reader io.Reader
	collector
}

func NewXmlImporter(reader io.Reader) *XmlImporter {
	return &XmlImporter{
		reader:    reader,
		collector: newCollector(),
	}
}

func (xi *XmlImporter) Import(ctx context.Context) error {
	scanner := osmxml.New(ctx, xi.reader)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			xi.addNode(int64(o.ID), o.Lat, o.Lon)
		case *osm.Way:
			nodeIds := make([]int64, 0, len(o.Nodes))
			for _, wn := range o.Nodes {
				nodeIds = append(nodeIds, int64(wn.ID))
			}
			if segment := xi.segmentFromWay(int64(o.ID), o.Tags.Map(), nodeIds); segment != nil {
				xi.roads = append(xi.roads, segment)
			}
		}
	}
	return scanner.Err()
}
