package path

import (
	"errors"
	"fmt"
	"log"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/graph"
	"github.com/natevvv/campus-navigation/pkg/slice"
)

// Options for a single point-to-point search
type Options struct {
	MaxExpansions int // safety bound for expansions, DefaultMaxExpansions if not set
	DebugLevel    int // debug level of the search
}

// Resolves point ids to points
type PointLookup func(id campus.ID) (campus.Point, bool)

// Find the shortest path between two points.
// The graph is built from the given points for every call. The returned path contains both
// endpoints and every waypoint in between. An empty path means there is no route; the reason is logged.
func FindPath(start, end campus.ID, points []campus.Point) []campus.Point {
	path, _, err := Search(start, end, points, Options{})
	if err != nil {
		LogSearchFailure(start, end, err)
		return make([]campus.Point, 0)
	}
	return path
}

// Find the shortest path between two points and return the path, its length and the failure reason.
// Panics of the search are recovered and reported as ErrInternal.
func Search(start, end campus.ID, points []campus.Point, options Options) (path []campus.Point, length float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			path, length, err = nil, -1, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	lookup := campus.NewPointIndex(points).Lookup
	g := graph.Build(points)
	return SearchGraph(g, lookup, start, end, options)
}

// Find the shortest path on an already built graph.
// Endpoints are resolved with the lookup, which must know every node of the graph.
func SearchGraph(g graph.Graph, lookup PointLookup, start, end campus.ID, options Options) (path []campus.Point, length float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			path, length, err = nil, -1, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	startPoint, ok := lookup(start)
	if !ok {
		return nil, -1, fmt.Errorf("%w: start %v", ErrEndpointNotFound, start)
	}
	endPoint, ok := lookup(end)
	if !ok {
		return nil, -1, fmt.Errorf("%w: end %v", ErrEndpointNotFound, end)
	}

	astar := NewAStar(g)
	astar.SetMaxExpansions(options.MaxExpansions)
	astar.SetDebugLevel(options.DebugLevel)

	length, err = astar.ComputeShortestPath(startPoint.ID, endPoint.ID)
	if err != nil {
		return nil, -1, err
	}

	ids, err := astar.reconstructPath(startPoint.ID, endPoint.ID)
	if err != nil {
		return nil, -1, err
	}

	path = make([]campus.Point, 0, len(ids))
	for _, id := range ids {
		p, ok := lookup(id)
		if !ok {
			return nil, -1, fmt.Errorf("%w: node %v has no point", ErrPathReconstruction, id)
		}
		path = append(path, p)
	}
	return path, length, nil
}

// Sum of the straight-line distances along the path
func PathLength(path []campus.Point) float64 {
	length := 0.0
	for i := 1; i < len(path); i++ {
		length += path[i-1].Location().DistanceTo(path[i].Location())
	}
	return length
}

// Remove the waypoints of a path, leaving the points which may be displayed
func StripWaypoints(path []campus.Point) []campus.Point {
	return slice.Filter(path, func(p campus.Point) bool { return !p.IsWaypoint })
}

// Log the reason of a failed search
func LogSearchFailure(start, end campus.ID, err error) {
	switch {
	case errors.Is(err, ErrSearchBudgetExceeded):
		log.Printf("Search %v -> %v gave up, check the connectivity of the authored points: %v\n", start, end, err)
	case errors.Is(err, ErrInternal):
		log.Printf("Search %v -> %v failed unexpectedly: %v\n", start, end, err)
	default:
		log.Printf("No path %v -> %v: %v\n", start, end, err)
	}
}
