package path

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/graph"
	"github.com/stretchr/testify/require"
)

const gridFmi = `10
13
# nodes
0 0 0
1 0 1
2 0 2
3 1 0
4 1 1
5 1 2
6 2 0
7 2 1
8 2 2
9 3 3
# edges
0 1
0 3
1 2
1 4
2 5
3 4
3 6
4 5
4 7
5 8
6 7
7 8
8 9`

// five points on a line, authored only in forward direction
const lineFmi = `5
4
P1 0 0
P2 1 0
P3 2 0
P4 3 0
P5 4 0
P1 P2
P2 P3
P3 P4
P4 P5`

// a detour over waypoints is shorter than the direct connection over the hill H
const detourFmi = `6
6
A 0 0
H 5 10
B 10 0
W1 3 1 waypoint
W2 7 1 waypoint
C 20 20
A H
H B
A W1
W1 W2
W2 B
C C`

func mustPoints(t *testing.T, fmi string) []campus.Point {
	t.Helper()
	points, err := graph.PointsFromFmiString(fmi)
	if err != nil {
		t.Fatalf("Could not parse fixture: %v\n", err)
	}
	return points
}

func ids(path []campus.Point) []campus.ID {
	result := make([]campus.ID, 0, len(path))
	for _, p := range path {
		result = append(result, p.ID)
	}
	return result
}

func TestAStarGrid(t *testing.T) {
	g := graph.Build(mustPoints(t, gridFmi))
	astar := NewAStar(g)
	length, err := astar.ComputeShortestPath("0", "9")
	if err != nil {
		t.Fatalf("Unexpected error: %v\n", err)
	}
	path := astar.GetPath("0", "9")
	lengthReference := 4 + math.Sqrt2
	if math.Abs(length-lengthReference) > 1e-9 {
		t.Errorf("length is %v. Should be %v\n", length, lengthReference)
	}
	if len(path) != 6 {
		t.Errorf("path has wrong length. Is %v, should be 6\n", len(path))
	}
	if path[0] != "0" || path[len(path)-1] != "9" {
		t.Errorf("First or last element wrong: %v\n", path)
	}
	if len(astar.GetSearchSpace()) != astar.GetExpansions() {
		t.Errorf("Search space has %v items, %v nodes were expanded\n", len(astar.GetSearchSpace()), astar.GetExpansions())
	}
}

func TestAStarMatchesDijkstra(t *testing.T) {
	g := graph.Build(mustPoints(t, gridFmi))
	dijkstra := NewAStar(g)
	dijkstra.SetUseHeuristic(false)
	astar := NewAStar(g)

	for _, origin := range g.GetNodeIds() {
		for _, destination := range g.GetNodeIds() {
			length, err := dijkstra.ComputeShortestPath(origin, destination)
			require.NoError(t, err)
			astarLength, err := astar.ComputeShortestPath(origin, destination)
			require.NoError(t, err)
			require.InDelta(t, length, astarLength, 1e-9, "%v -> %v", origin, destination)
		}
	}
	// the heuristic must not enlarge the search
	dijkstra.ComputeShortestPath("0", "9")
	astar.ComputeShortestPath("0", "9")
	require.LessOrEqual(t, astar.GetExpansions(), dijkstra.GetExpansions())
}

func TestFindPathLine(t *testing.T) {
	path := FindPath("P1", "P5", mustPoints(t, lineFmi))
	require.Equal(t, []campus.ID{"P1", "P2", "P3", "P4", "P5"}, ids(path))

	// only the forward direction is authored, the way back must still exist
	back := FindPath("P5", "P1", mustPoints(t, lineFmi))
	require.Equal(t, []campus.ID{"P5", "P4", "P3", "P2", "P1"}, ids(back))
}

func TestFindPathReflexive(t *testing.T) {
	points := mustPoints(t, detourFmi)
	for _, p := range points {
		path := FindPath(p.ID, p.ID, points)
		require.Equal(t, []campus.ID{p.ID}, ids(path))
	}
}

func TestFindPathDisconnected(t *testing.T) {
	path, length, err := Search("A", "C", mustPoints(t, detourFmi), Options{})
	require.ErrorIs(t, err, ErrNoRoute)
	require.Nil(t, path)
	require.Equal(t, -1.0, length)

	require.Empty(t, FindPath("C", "B", mustPoints(t, detourFmi)))
}

func TestFindPathUnknownEndpoint(t *testing.T) {
	points := mustPoints(t, detourFmi)
	require.NotPanics(t, func() {
		require.Empty(t, FindPath("A", "nowhere", points))
		require.Empty(t, FindPath("nowhere", "A", points))
		require.Empty(t, FindPath("A", "B", nil))
	})
	_, _, err := Search("nowhere", "A", points, Options{})
	require.ErrorIs(t, err, ErrEndpointNotFound)
}

func TestFindPathKeepsWaypoints(t *testing.T) {
	path, length, err := Search("A", "B", mustPoints(t, detourFmi), Options{})
	require.NoError(t, err)
	require.Equal(t, []campus.ID{"A", "W1", "W2", "B"}, ids(path))
	require.InDelta(t, PathLength(path), length, 1e-9)
	require.Equal(t, []campus.ID{"A", "B"}, ids(StripWaypoints(path)))
}

func TestFindPathMixedIds(t *testing.T) {
	points := []campus.Point{
		{ID: "1", X: 0, Y: 0, Neighbors: []campus.ID{"02"}},
		{ID: "2", X: 1, Y: 0},
	}
	require.Equal(t, []campus.ID{"1", "2"}, ids(FindPath("01", "2", points)))
}

// enumerate all simple paths and compare the minimal length with the search result
func TestFindPathIsOptimal(t *testing.T) {
	fixtures := []string{gridFmi, detourFmi, lineFmi}
	for i, fixture := range fixtures {
		points := mustPoints(t, fixture)
		g := graph.Build(points)
		for _, origin := range g.GetNodeIds() {
			for _, destination := range g.GetNodeIds() {
				best := bruteForceShortest(g, origin, destination)
				path, length, err := Search(origin, destination, points, Options{})
				if math.IsInf(best, 1) {
					require.ErrorIs(t, err, ErrNoRoute, "fixture %v: %v -> %v", i, origin, destination)
					continue
				}
				require.NoError(t, err)
				require.InDelta(t, best, length, 1e-9, "fixture %v: %v -> %v", i, origin, destination)
				require.InDelta(t, best, PathLength(path), 1e-9)
			}
		}
	}
}

func bruteForceShortest(g graph.Graph, origin, destination graph.NodeId) float64 {
	if origin == destination {
		return 0
	}
	best := math.Inf(1)
	visited := map[graph.NodeId]bool{origin: true}
	var walk func(node graph.NodeId, length float64)
	walk = func(node graph.NodeId, length float64) {
		for _, arc := range g.GetArcsFrom(node) {
			if visited[arc.To] {
				continue
			}
			if arc.To == destination {
				best = math.Min(best, length+arc.Distance)
				continue
			}
			visited[arc.To] = true
			walk(arc.To, length+arc.Distance)
			visited[arc.To] = false
		}
	}
	walk(origin, 0)
	return best
}

func TestSearchBudget(t *testing.T) {
	points := make([]campus.Point, 0)
	for i := 0; i < 20; i++ {
		p := campus.Point{ID: campus.ID(fmt.Sprint(i)), X: float64(i)}
		if i > 0 {
			p.Neighbors = []campus.ID{campus.ID(fmt.Sprint(i - 1))}
		}
		points = append(points, p)
	}
	_, _, err := Search("0", "19", points, Options{MaxExpansions: 5})
	require.ErrorIs(t, err, ErrSearchBudgetExceeded)

	path, _, err := Search("0", "19", points, Options{MaxExpansions: 20})
	require.NoError(t, err)
	require.Len(t, path, 20)
}

func TestPathReconstructionAnomaly(t *testing.T) {
	g := graph.Build(mustPoints(t, lineFmi))
	astar := NewAStar(g)
	_, err := astar.ComputeShortestPath("P1", "P5")
	require.NoError(t, err)

	// corrupt the predecessor chain into a cycle
	astar.searchSpace["P3"].predecessor = "P4"
	_, err = astar.reconstructPath("P1", "P5")
	require.ErrorIs(t, err, ErrPathReconstruction)
	require.Empty(t, astar.GetPath("P1", "P5"))
}

type panicGraph struct {
	*graph.AdjacencyListGraph
}

func (g panicGraph) GetArcsFrom(id graph.NodeId) []graph.Arc {
	panic("broken graph")
}

func TestSearchRecoversInternalErrors(t *testing.T) {
	points := mustPoints(t, lineFmi)
	g := panicGraph{graph.Build(points)}
	index := campus.NewPointIndex(points)
	var err error
	require.NotPanics(t, func() {
		_, _, err = SearchGraph(g, index.Lookup, "P1", "P5", Options{})
	})
	require.True(t, errors.Is(err, ErrInternal))
}

func TestGetPathWithoutSearch(t *testing.T) {
	astar := NewAStar(graph.Build(mustPoints(t, lineFmi)))
	require.Empty(t, astar.GetPath("P1", "P5"))
	_, err := astar.ComputeShortestPath("P1", "P2")
	require.NoError(t, err)
	require.Empty(t, astar.GetPath("P1", "P5"), "path of another search must not be returned")
}
