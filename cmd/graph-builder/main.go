package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/natevvv/osm-turn-routing/internal/importer"
	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/road"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

func main() {
	buildRoadGraph := flag.String("roadgraph", "", "由道路网络 JSON 构建图")
	penaltyGraph := flag.String("penalties", "", "为给定的 fmi 图计算转弯惩罚")
	graphFile := flag.String("o", "road_graph.fmi", "输出的图文件")
	penaltyFile := flag.String("p", "", "输出的转弯惩罚文件，默认为图文件名加 .penalties")

	// 转弯惩罚选项
	leftPenalty := flag.Float64("left", turn.DefaultLeftPenalty, "左转惩罚（秒）")
	rightPenalty := flag.Float64("right", turn.DefaultRightPenalty, "右转惩罚（秒）")

	flag.Parse()

	options := turn.MakePenaltyOptions().SetLeftPenalty(*leftPenalty).SetRightPenalty(*rightPenalty)
	if err := options.Validate(); err != nil {
		log.Fatal(err)
	}

	if *penaltyFile == "" {
		*penaltyFile = *graphFile + ".penalties"
	}

	if *buildRoadGraph != "" {
		g := createRoadGraph(*buildRoadGraph, *graphFile)
		createPenalties(g, options, *penaltyFile)
	}

	if *penaltyGraph != "" {
		start := time.Now()
		g, err := graph.NewAdjacencyArrayFromFmiFile(*penaltyGraph)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("[TIME] 加载图: %s\n", time.Since(start))
		createPenalties(g, options, *penaltyFile)
	}
}

func createRoadGraph(roadFile, graphFile string) graph.Graph {
	start := time.Now()
	roads, err := importer.LoadRoadJson(roadFile)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)
	fmt.Printf("[TIME] 加载道路数据: %s\n", elapsed)

	start = time.Now()
	g := road.BuildGraph(roads)
	elapsed = time.Since(start)
	fmt.Printf("[TIME] 构建图: %s\n", elapsed)
	fmt.Printf("节点数量: %d\n", g.NodeCount())
	fmt.Printf("边数量: %d\n", g.ArcCount())

	// 导出基础图
	start = time.Now()
	if err := graph.WriteFmi(g, graphFile); err != nil {
		log.Fatal(err)
	}
	elapsed = time.Since(start)
	fmt.Printf("[TIME] 导出基础图: %s\n", elapsed)
	return g
}

func createPenalties(g graph.Graph, options turn.PenaltyOptions, penaltyFile string) {
	start := time.Now()
	penalties, err := turn.BuildPenaltyTable(g, options)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME] 计算转弯惩罚: %s\n", time.Since(start))
	fmt.Printf("转弯惩罚数量: %d\n", len(penalties))

	start = time.Now()
	if err := turn.WritePenaltyFile(penalties, penaltyFile); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME] 导出转弯惩罚: %s\n", time.Since(start))
}
