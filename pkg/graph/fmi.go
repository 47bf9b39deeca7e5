package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/natevvv/campus-navigation/pkg/campus"
	geo "github.com/natevvv/campus-navigation/pkg/geometry"
)

// fmi parse states
const (
	PARSE_NODE_COUNT = iota
	PARSE_EDGE_COUNT = iota
	PARSE_NODES      = iota
	PARSE_EDGES      = iota
)

// a parsed node line "id x y [waypoint]"
type fmiNode struct {
	id       NodeId
	x, y     float64
	waypoint bool
}

// a parsed edge line "from to [distance]"
type fmiEdge struct {
	from, to NodeId
	distance float64
}

func WriteFmi(g Graph, w io.Writer) error {
	writer := bufio.NewWriter(w)
	if _, err := writer.WriteString(g.AsString()); err != nil {
		return err
	}
	return writer.Flush()
}

func WriteFmiFile(g Graph, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteFmi(g, file)
}

func parseFmi(fmi string) ([]fmiNode, []fmiEdge, error) {
	scanner := bufio.NewScanner(strings.NewReader(fmi))

	numNodes := 0
	nodes := make([]fmiNode, 0)
	edges := make([]fmiEdge, 0)

	parseState := PARSE_NODE_COUNT
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		fields := strings.Fields(line)
		switch parseState {
		case PARSE_NODE_COUNT:
			val, err := strconv.Atoi(line)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: invalid node count: %w", lineNumber, err)
			}
			numNodes = val
			parseState = PARSE_EDGE_COUNT
		case PARSE_EDGE_COUNT:
			if numNodes == 0 {
				parseState = PARSE_EDGES
			} else {
				parseState = PARSE_NODES
			}
		case PARSE_NODES:
			if len(fields) < 3 {
				return nil, nil, fmt.Errorf("line %d: expected \"id x y\", got %q", lineNumber, line)
			}
			x, xErr := strconv.ParseFloat(fields[1], 64)
			y, yErr := strconv.ParseFloat(fields[2], 64)
			if xErr != nil || yErr != nil {
				return nil, nil, fmt.Errorf("line %d: invalid coordinates %q", lineNumber, line)
			}
			waypoint := len(fields) > 3 && fields[3] == "waypoint"
			nodes = append(nodes, fmiNode{id: campus.NormalizeID(fields[0]), x: x, y: y, waypoint: waypoint})
			if len(nodes) == numNodes {
				parseState = PARSE_EDGES
			}
		case PARSE_EDGES:
			if len(fields) < 2 {
				return nil, nil, fmt.Errorf("line %d: expected \"from to [distance]\", got %q", lineNumber, line)
			}
			edge := fmiEdge{from: campus.NormalizeID(fields[0]), to: campus.NormalizeID(fields[1])}
			if len(fields) > 2 {
				distance, err := strconv.ParseFloat(fields[2], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: invalid distance: %w", lineNumber, err)
				}
				edge.distance = distance
			}
			edges = append(edges, edge)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(nodes) != numNodes {
		return nil, nil, fmt.Errorf("expected %d nodes, parsed %d", numNodes, len(nodes))
	}
	return nodes, edges, nil
}

// Parse a graph dump as written by WriteFmi. Arcs are taken literally, including their distance
func NewAdjacencyListFromFmiString(fmi string) (*AdjacencyListGraph, error) {
	nodes, edges, err := parseFmi(fmi)
	if err != nil {
		return nil, err
	}
	alg := NewAdjacencyListGraph()
	for _, n := range nodes {
		alg.AddNode(n.id, geo.MakePoint(n.x, n.y))
	}
	for _, e := range edges {
		if !alg.HasNode(e.from) || !alg.HasNode(e.to) {
			return nil, fmt.Errorf("arc %v -> %v references unknown node", e.from, e.to)
		}
		alg.AddArc(e.from, e.to, e.distance)
	}
	return alg, nil
}

func NewAdjacencyListFromFmiFile(filename string) (*AdjacencyListGraph, error) {
	fmi, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewAdjacencyListFromFmiString(string(fmi))
}

// Parse a graph dump into authored points.
// Every edge line becomes an authored neighbor of its source, the distance column is ignored
// since the builder always derives distances from coordinates.
func PointsFromFmiString(fmi string) ([]campus.Point, error) {
	nodes, edges, err := parseFmi(fmi)
	if err != nil {
		return nil, err
	}
	points := make([]campus.Point, 0, len(nodes))
	index := make(map[NodeId]int, len(nodes))
	for _, n := range nodes {
		index[n.id] = len(points)
		points = append(points, campus.Point{ID: n.id, X: n.x, Y: n.y, Title: string(n.id), IsWaypoint: n.waypoint})
	}
	for _, e := range edges {
		i, ok := index[e.from]
		if !ok {
			return nil, fmt.Errorf("edge from unknown node %v", e.from)
		}
		points[i].Neighbors = append(points[i].Neighbors, e.to)
	}
	return points, nil
}
