package importer

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/qedus/osmpbf"

	"github.com/natevvv/osm-turn-routing/pkg/road"
)

// PbfImporter 读取 .osm.pbf 文件。文件被读两遍：先收集节点，再处理道路
type PbfImporter struct {
	filename string
	collector
}

func NewPbfImporter(filename string) *PbfImporter {
	return &PbfImporter{
		filename:  filename,
		collector: newCollector(),
	}
}

func (pi *PbfImporter) Import(ctx context.Context) error {
	if err := pi.collectNodes(ctx); err != nil {
		return err
	}

	decoder, closer, err := pi.startDecoder()
	if err != nil {
		return err
	}
	defer closer.Close()

	var wg sync.WaitGroup
	roadsChan := make(chan *road.Segment, 1000)

	// 启动处理协程
	wg.Add(1)
	go func() {
		defer wg.Done()
		for segment := range roadsChan {
			pi.roads = append(pi.roads, segment)
		}
	}()

	err = decode(ctx, decoder, func(v interface{}) {
		if way, ok := v.(*osmpbf.Way); ok {
			if segment := pi.segmentFromWay(way.ID, way.Tags, way.NodeIDs); segment != nil {
				roadsChan <- segment
			}
		}
	})
	close(roadsChan)
	wg.Wait()
	return err
}

func (pi *PbfImporter) collectNodes(ctx context.Context) error {
	decoder, closer, err := pi.startDecoder()
	if err != nil {
		return err
	}
	defer closer.Close()

	return decode(ctx, decoder, func(v interface{}) {
		if node, ok := v.(*osmpbf.Node); ok {
			pi.addNode(node.ID, node.Lat, node.Lon)
		}
	})
}

func (pi *PbfImporter) startDecoder() (*osmpbf.Decoder, io.Closer, error) {
	file, err := os.Open(pi.filename)
	if err != nil {
		return nil, nil, err
	}

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)

	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		file.Close()
		return nil, nil, err
	}
	return decoder, file, nil
}

// decode every entity until the end of the file
func decode(ctx context.Context, decoder *osmpbf.Decoder, handle func(v interface{})) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		handle(v)
	}
}
