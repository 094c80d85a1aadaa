package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/natevvv/osm-turn-routing/internal/importer"
	"github.com/natevvv/osm-turn-routing/pkg/road"
)

var flagOsmFile = flag.String("f", "stuttgart.osm.pbf", "OSM文件路径 (.osm.pbf 或 .osm)")
var flagOutputFile = flag.String("o", "stuttgart.road.json", "输出的道路网络文件路径")

func main() {
	flag.Parse()

	start := time.Now()

	roads, err := importer.ImportFile(context.Background(), *flagOsmFile)
	if err != nil {
		log.Fatal(err)
	}

	elapsed := time.Since(start)
	fmt.Printf("[TIME] 导入用时: %s\n", elapsed)

	start = time.Now()

	merger := road.NewMerger(roads)
	merger.Merge()

	elapsed = time.Since(start)
	fmt.Printf("[TIME] 合并用时: %s\n", elapsed)
	fmt.Printf("道路段数量: %d\n", len(merger.Roads()))
	fmt.Printf("合并次数: %d\n", merger.MergeCount())
	fmt.Printf("未能合并的道路段: %d\n", merger.UnmergableRoadCount())

	start = time.Now()

	if err := importer.ExportRoadJson(merger.Roads(), *flagOutputFile); err != nil {
		log.Fatal(err)
	}

	elapsed = time.Since(start)
	fmt.Printf("[TIME] 导出用时: %s\n", elapsed)
	fmt.Printf("已导出道路网络到 %s\n", *flagOutputFile)
}
