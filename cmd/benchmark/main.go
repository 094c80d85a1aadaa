package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"sync"
	"syscall"
	"time"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
	p "github.com/natevvv/osm-turn-routing/pkg/graph/path"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

// a benchmark query and the result of the reference search
type target struct {
	origin      graph.NodeId
	destination graph.NodeId
	cost        float64 // plain shortest path cost, +Inf if unreachable
	hops        int     // nodes from origin to destination
}

func main() {
	useRandomTargets := flag.Bool("random", false, "Create (new) random targets")
	amountTargets := flag.Int("n", 100, "How many new targets should get created")
	storeTargets := flag.Bool("store", false, "Store targets (when newly generated)")
	algorithm := flag.String("search", "turn-dijkstra", "Select the search algorithm (dijkstra, turn-dijkstra)")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	graphFile := flag.String("graph", "road_graph.fmi", "The graph to work with")
	penaltyFile := flag.String("penalties", "", "Penalty file, computed with the default penalties if empty")
	targetFile := flag.String("targets", "targets.txt", "File with the benchmark queries")
	noPenalties := flag.Bool("no-penalties", false, "Search without turn penalties, the costs have to match the reference")
	debugLevel := flag.Int("debug", 0, "Debug level of the turn search")
	flag.Parse()

	start := time.Now()

	var g graph.Graph
	var penalties turn.PenaltyTable
	var graphErr, penaltyErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		g, graphErr = graph.NewAdjacencyArrayFromFmiFile(*graphFile)
		wg.Done()
	}()
	if *penaltyFile != "" {
		wg.Add(1)
		go func() {
			penalties, penaltyErr = turn.ReadPenaltyFile(*penaltyFile)
			wg.Done()
		}()
	}
	wg.Wait()
	if graphErr != nil {
		log.Fatal(graphErr)
	}
	if penaltyErr != nil {
		log.Fatal(penaltyErr)
	}
	if *penaltyFile == "" && !*noPenalties {
		var err error
		if penalties, err = turn.BuildPenaltyTable(g, turn.MakePenaltyOptions()); err != nil {
			log.Fatal(err)
		}
	}
	if *noPenalties {
		penalties = nil
	}

	var navigator p.Navigator
	switch *algorithm {
	case "dijkstra":
		navigator = p.NewDijkstra(g)
	case "turn-dijkstra":
		d := p.NewTurnDijkstra(g)
		d.SetDebugLevel(*debugLevel)
		navigator = d
	default:
		log.Fatal("Navigator not supported")
	}

	elapsed := time.Since(start)
	fmt.Printf("[TIME-Import] = %s\n", elapsed)

	referenceDijkstra := p.NewDijkstra(g)
	var targets []target
	if *useRandomTargets {
		targets = createTargets(*amountTargets, referenceDijkstra)
		if *storeTargets {
			writeTargets(targets, *targetFile)
		}
	} else {
		targets = readTargets(*targetFile)
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	benchmark(navigator, targets, penalties)
}

func readTargets(filename string) []target {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	targets := make([]target, 0)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%d %d %g %d", &t.origin, &t.destination, &t.cost, &t.hops); err != nil {
			log.Fatalf("invalid target line %q: %v", line, err)
		}
		targets = append(targets, t)
	}
	return targets
}

func createTargets(n int, referenceNavigator *p.Dijkstra) []target {
	targets := make([]target, n)
	seed := rand.NewSource(time.Now().UnixNano())
	rng := rand.New(seed)
	nodeCount := referenceNavigator.GetGraph().NodeCount()
	// reference algorithm to compute path
	for i := 0; i < n; i++ {
		origin := rng.Intn(nodeCount)
		destination := rng.Intn(nodeCount)
		t := target{origin: origin, destination: destination, cost: math.Inf(1)}
		result, err := referenceNavigator.ComputeShortestPath(origin, []graph.NodeId{destination}, nil, nil)
		if err == nil {
			t.cost = result.Cost
			t.hops = len(result.Path)
		} else if !errors.Is(err, p.ErrTargetUnreachable) {
			log.Fatal(err)
		}
		targets[i] = t
	}
	return targets
}

func writeTargets(targets []target, targetFile string) {
	file, err := os.Create(targetFile)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	writer.WriteString("# origin destination cost hops\n")
	for _, t := range targets {
		writer.WriteString(fmt.Sprintf("%v %v %v %v\n", t.origin, t.destination, t.cost, t.hops))
	}
	writer.Flush()
}

// Run benchmarks on the provided graph and targets
func benchmark(navigator p.Navigator, targets []target, penalties turn.PenaltyTable) {
	var runtime time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	edgeRelaxations := 0
	relaxationAttempts := 0
	penaltyOverhead := 0.0

	invalidCosts := make([][3]float64, 0)
	invalidResults := make([]int, 0)
	failed := make([]int, 0)

	showResults := func() {
		if completed == 0 {
			fmt.Printf("No query completed\n")
			return
		}
		fmt.Printf("Average runtime: %.3fms\n", float64(int(runtime.Nanoseconds())/completed)/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average relaxations attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)
		fmt.Printf("Average turn penalty overhead: %.3f\n", penaltyOverhead/float64(completed))

		fmt.Printf("%v/%v failed searches.\n", len(failed), completed)
		fmt.Printf("%v/%v invalid Result (source/target).\n", len(invalidResults), completed)
		for i, result := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, result, targets[result].origin, targets[result].destination)
		}

		fmt.Printf("%v/%v invalid path costs.\n", len(invalidCosts), completed)
		for i, costs := range invalidCosts {
			testcase := int(costs[0])
			actualCost := costs[1]
			referenceCost := costs[2]
			fmt.Printf("%v: Case %v (%v -> %v) has invalid cost. Has: %v, Reference: %v, Difference: %v\n", i, testcase, targets[testcase].origin, targets[testcase].destination, actualCost, referenceCost, actualCost-referenceCost)
		}
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, t := range targets {
		start := time.Now()
		result, err := navigator.ComputeShortestPath(t.origin, []graph.NodeId{t.destination}, nil, penalties)
		elapsed := time.Since(start)

		pqPops += navigator.GetPqPops()
		pqUpdates += navigator.GetPqUpdates()
		edgeRelaxations += navigator.GetEdgeRelaxations()
		relaxationAttempts += navigator.GetRelaxationAttempts()

		fmt.Printf("[%3v TIME-Navigate, PQ Pops, PQ Updates, relaxed Edges, relax attempts] = %12s, %7d, %7d, %7d, %7d\n", i, elapsed, navigator.GetPqPops(), navigator.GetPqUpdates(), navigator.GetEdgeRelaxations(), navigator.GetRelaxationAttempts())

		cost := math.Inf(1)
		if err == nil {
			cost = result.Cost
			if result.Path[0] != t.origin || result.Path[len(result.Path)-1] != t.destination {
				invalidResults = append(invalidResults, i)
			}
		} else if !errors.Is(err, p.ErrTargetUnreachable) {
			log.Printf("Case %v failed: %v\n", i, err)
			failed = append(failed, i)
		}

		// turn penalties can only make a route more expensive
		if len(penalties) == 0 && cost != t.cost || len(penalties) > 0 && cost < t.cost {
			invalidCosts = append(invalidCosts, [3]float64{float64(i), cost, t.cost})
		} else if !math.IsInf(cost, 1) {
			penaltyOverhead += cost - t.cost
		}

		runtime += elapsed
		completed++
	}
	// normal termination, show results
	showResults()
}
