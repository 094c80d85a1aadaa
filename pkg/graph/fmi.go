package graph

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	geo "github.com/natevvv/osm-turn-routing/pkg/geometry"
)

var ErrInvalidFmi = errors.New("graph: invalid fmi data")

// a comment line with this content declares the graph as undirected
const undirectedMarker = "# undirected"

// fmi parse states
const (
	PARSE_NODE_COUNT = iota
	PARSE_EDGE_COUNT = iota
	PARSE_NODES      = iota
	PARSE_EDGES      = iota
)

func WriteFmi(g Graph, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

// Parse a graph in fmi format. Bearings are computed from the node coordinates.
// Edge lines are "from to distance [roadType]".
func NewAdjacencyListFromFmiString(fmi string) (*AdjacencyListGraph, error) {
	scanner := bufio.NewScanner(strings.NewReader(fmi))

	numNodes := 0
	numParsedNodes := 0
	lineNumber := 0

	alg := NewAdjacencyListGraph()
	type arcLine struct {
		from, to, distance int
		roadType           string
	}
	arcLines := make([]arcLine, 0)

	parseState := PARSE_NODE_COUNT
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line == undirectedMarker {
			alg.directed = false
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		switch parseState {
		case PARSE_NODE_COUNT:
			val, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: line %v: node count: %v", ErrInvalidFmi, lineNumber, err)
			}
			numNodes = val
			parseState = PARSE_EDGE_COUNT
		case PARSE_EDGE_COUNT:
			// the arc count is informational only, duplicates get removed during import
			if numNodes == 0 {
				parseState = PARSE_EDGES
			} else {
				parseState = PARSE_NODES
			}
		case PARSE_NODES:
			var id int
			var lat, lon float64
			if _, err := fmt.Sscanf(line, "%d %f %f", &id, &lat, &lon); err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidFmi, lineNumber, err)
			}
			if id != alg.NodeCount() {
				return nil, fmt.Errorf("%w: line %v: expected node id %v, got %v", ErrInvalidFmi, lineNumber, alg.NodeCount(), id)
			}
			alg.AddNode(geo.MakePoint(lat, lon))
			numParsedNodes++
			if numParsedNodes == numNodes {
				parseState = PARSE_EDGES
			}
		case PARSE_EDGES:
			fields := strings.Fields(line)
			if len(fields) < 3 || len(fields) > 4 {
				return nil, fmt.Errorf("%w: line %v: expected 3 or 4 fields", ErrInvalidFmi, lineNumber)
			}
			var al arcLine
			var err error
			if al.from, err = strconv.Atoi(fields[0]); err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidFmi, lineNumber, err)
			}
			if al.to, err = strconv.Atoi(fields[1]); err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidFmi, lineNumber, err)
			}
			if al.distance, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("%w: line %v: %v", ErrInvalidFmi, lineNumber, err)
			}
			if len(fields) == 4 {
				al.roadType = fields[3]
			}
			if al.from < 0 || al.to < 0 || al.from >= numNodes || al.to >= numNodes {
				return nil, fmt.Errorf("%w: line %v: arc %v -> %v out of range", ErrInvalidFmi, lineNumber, al.from, al.to)
			}
			arcLines = append(arcLines, al)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if alg.NodeCount() != numNodes {
		return nil, fmt.Errorf("%w: expected %v nodes, parsed %v", ErrInvalidFmi, numNodes, alg.NodeCount())
	}

	// the undirected marker may come after the first arcs, so the arcs are added at the end
	for _, al := range arcLines {
		alg.AddArc(al.from, al.to, al.distance)
		if al.roadType != "" {
			alg.SetRoadType(al.from, al.to, al.roadType)
		}
	}

	AnnotateBearings(alg)
	return alg, nil
}

func NewAdjacencyListFromFmiFile(filename string) (*AdjacencyListGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyListFromFmiString(string(fmi))
}

func NewAdjacencyArrayFromFmiString(fmi string) (*AdjacencyArrayGraph, error) {
	alg, err := NewAdjacencyListFromFmiString(fmi)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyArrayFromGraph(alg), nil
}

func NewAdjacencyArrayFromFmiFile(filename string) (*AdjacencyArrayGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyArrayFromFmiString(string(fmi))
}
