package routing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/graph"
	"github.com/natevvv/campus-navigation/pkg/graph/path"
	"github.com/natevvv/campus-navigation/pkg/guidance"
)

var ErrUnknownRoom = errors.New("unknown destination room")

// Routing configuration
type Config struct {
	MaxExpansions      int           // expansion budget per search, the search default if not set
	SearchDebugLevel   int           // debug level of the path search
	GuidanceDebugLevel int           // debug level of the instruction generator
	DeferDelay         time.Duration // delay before a deferred computation starts
}

// A route request. From and To are point ids or room references
type RouteRequest struct {
	From            string `json:"from"`
	To              string `json:"to"`
	DestinationRoom string `json:"destinationRoom,omitempty"`
}

// Routing result
type Route struct {
	Origin       campus.Point          // first point of the route
	Destination  campus.Point          // last point of the route
	Exists       bool                  // whether a route exists
	Waypoints    []campus.Point        // all points of the route, including waypoints
	Visible      []campus.Point        // the points of the route which may be displayed
	Length       float64               // length of the route
	Instructions guidance.Instructions // indoor guidance at the destination
	Err          error                 // reason if no route exists
}

// Router computes routes on the current snapshot of the point registry
type Router struct {
	mu        sync.RWMutex
	snapshot  *campus.Snapshot
	cache     *graph.Cache
	generator *guidance.Generator
	config    Config
}

// Create a new router
func NewRouter(snapshot *campus.Snapshot, config Config) *Router {
	if snapshot == nil {
		snapshot = campus.NewSnapshot(nil)
	}
	generator := guidance.NewGenerator()
	generator.SetDebugLevel(config.GuidanceDebugLevel)
	return &Router{
		snapshot:  snapshot,
		cache:     graph.NewCache(),
		generator: generator,
		config:    config,
	}
}

// Replace the snapshot. Running computations keep the snapshot they started with.
// The cached graph of a replaced snapshot with different content is dropped
func (r *Router) SetSnapshot(snapshot *campus.Snapshot) {
	if snapshot == nil {
		snapshot = campus.NewSnapshot(nil)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot.Fingerprint() != snapshot.Fingerprint() {
		r.cache.Invalidate()
	}
	r.snapshot = snapshot
}

func (r *Router) Snapshot() *campus.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// The adjacency of the current snapshot
func (r *Router) Graph() *graph.AdjacencyArrayGraph {
	return r.cache.Get(r.Snapshot())
}

// Get all points of the current snapshot
func (r *Router) GetNodes() []campus.Point {
	return r.Snapshot().Points()
}

// Get the points of the current snapshot which are no waypoints
func (r *Router) GetFacilities() []campus.Point {
	return r.Snapshot().Facilities()
}

// Hits and misses of the graph cache
func (r *Router) CacheStats() (hits, misses int) {
	return r.cache.Stats()
}

// Compute a route.
// Room references resolve to their building; the indoor guidance is derived from the room's floor.
func (r *Router) ComputeRoute(ctx context.Context, req RouteRequest) Route {
	if err := ctx.Err(); err != nil {
		return Route{Err: err}
	}
	snapshot := r.Snapshot()

	originId, originRoom, ok := snapshot.ResolveEndpoint(req.From)
	if !ok {
		return r.failed(req, fmt.Errorf("%w: origin %q", path.ErrEndpointNotFound, req.From))
	}
	to := req.To
	if to == "" {
		to = req.DestinationRoom
	}
	destinationId, destinationRoom, ok := snapshot.ResolveEndpoint(to)
	if !ok {
		return r.failed(req, fmt.Errorf("%w: destination %q", path.ErrEndpointNotFound, to))
	}
	if req.DestinationRoom != "" {
		room, ok := snapshot.ResolveRoom(req.DestinationRoom)
		if !ok {
			return r.failed(req, fmt.Errorf("%w: %q", ErrUnknownRoom, req.DestinationRoom))
		}
		if room.Building != destinationId {
			return r.failed(req, fmt.Errorf("%w: %q is not in %v", ErrUnknownRoom, req.DestinationRoom, destinationId))
		}
		destinationRoom = &room
	}

	options := path.Options{MaxExpansions: r.config.MaxExpansions, DebugLevel: r.config.SearchDebugLevel}
	waypoints, length, err := path.SearchGraph(r.cache.Get(snapshot), snapshot.Point, originId, destinationId, options)
	if err != nil {
		path.LogSearchFailure(originId, destinationId, err)
		route := Route{Err: err, Instructions: guidance.NewInstructions()}
		route.Origin, _ = snapshot.Point(originId)
		route.Destination, _ = snapshot.Point(destinationId)
		return route
	}

	destination := waypoints[len(waypoints)-1]
	instructions := r.generator.Plan(guidance.PlanRequest{
		Building:    destination,
		Origin:      originRoom,
		Destination: destinationRoom,
	})

	return Route{
		Origin:       waypoints[0],
		Destination:  destination,
		Exists:       true,
		Waypoints:    waypoints,
		Visible:      path.StripWaypoints(waypoints),
		Length:       length,
		Instructions: instructions,
	}
}

// Compute the route after the configured delay. The channel yields exactly one route
func (r *Router) ComputeRouteDeferred(ctx context.Context, req RouteRequest) <-chan Route {
	result := make(chan Route, 1)
	go func() {
		defer close(result)
		select {
		case <-ctx.Done():
			result <- Route{Err: ctx.Err()}
			return
		case <-time.After(r.config.DeferDelay):
		}
		result <- r.ComputeRoute(ctx, req)
	}()
	return result
}

func (r *Router) failed(req RouteRequest, err error) Route {
	log.Printf("Cannot route %q -> %q: %v\n", req.From, req.To, err)
	return Route{Err: err, Instructions: guidance.NewInstructions()}
}

// Instructions for the circulation of a single floor
func (r *Router) FloorInstructions(floor campus.Floor, destination *campus.Room) guidance.Instructions {
	return r.generator.GenerateRouteInstructions(floor, destination)
}
