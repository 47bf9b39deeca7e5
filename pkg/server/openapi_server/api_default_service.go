package openapi_server

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/graph"
	"github.com/natevvv/campus-navigation/pkg/graph/path"
	"github.com/natevvv/campus-navigation/pkg/guidance"
	"github.com/natevvv/campus-navigation/pkg/routing"
)

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router *routing.Router
}

// NewDefaultApiService creates a default api service
func NewDefaultApiService(router *routing.Router) DefaultApiServicer {
	return &DefaultApiService{
		router: router,
	}
}

// ComputeRoute - Compute a new route
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	route := s.router.ComputeRoute(ctx, routing.RouteRequest{
		From:            routeRequest.From,
		To:              routeRequest.To,
		DestinationRoom: routeRequest.DestinationRoom,
	})

	routeResult := RouteResult{
		Origin:       PointFromCampus(route.Origin),
		Destination:  PointFromCampus(route.Destination),
		Reachable:    route.Exists,
		Path:         Path{Waypoints: make([]Point, 0), Visible: make([]Point, 0)},
		Instructions: route.Instructions,
	}
	if route.Exists {
		routeResult.Path = Path{
			Length:    route.Length,
			Waypoints: PointsFromCampus(route.Waypoints),
			Visible:   PointsFromCampus(route.Visible),
		}
		return Response(http.StatusOK, routeResult), nil
	}

	routeResult.Error = route.Err.Error()
	switch {
	case errors.Is(route.Err, path.ErrEndpointNotFound), errors.Is(route.Err, routing.ErrUnknownRoom):
		return Response(http.StatusNotFound, routeResult), nil
	case errors.Is(route.Err, path.ErrInternal), errors.Is(route.Err, path.ErrPathReconstruction):
		return Response(http.StatusInternalServerError, routeResult), nil
	default:
		// no route is a regular answer
		return Response(http.StatusOK, routeResult), nil
	}
}

func (s *DefaultApiService) GetPoints(ctx context.Context, visible bool) (ImplResponse, error) {
	points := s.router.GetNodes()
	if visible {
		points = s.router.GetFacilities()
	}
	nodes := Nodes{Points: PointsFromCampus(points)}
	return Response(http.StatusOK, nodes), nil
}

func (s *DefaultApiService) GetPoint(ctx context.Context, id string) (ImplResponse, error) {
	point, ok := s.router.Snapshot().Point(campus.NormalizeID(id))
	if !ok {
		return Response(http.StatusNotFound, ErrorResult{Error: "unknown point " + id}), nil
	}
	return Response(http.StatusOK, point), nil
}

func (s *DefaultApiService) GenerateInstructions(ctx context.Context, req InstructionsRequest) (ImplResponse, error) {
	building, ok := s.router.Snapshot().Point(campus.NormalizeID(req.Building))
	if !ok {
		return Response(http.StatusNotFound, ErrorResult{Error: "unknown building " + req.Building}), nil
	}
	floor, ok := building.Floor(req.Level)
	if !ok {
		return Response(http.StatusNotFound, ErrorResult{Error: "building " + req.Building + " has no level " + strconv.Itoa(req.Level)}), nil
	}

	var destination *campus.Room
	if req.DestinationRoom != "" {
		i := guidance.FindRoom(floor, req.DestinationRoom)
		if i < 0 {
			return Response(http.StatusNotFound, ErrorResult{Error: "unknown room " + req.DestinationRoom}), nil
		}
		destination = &floor.Rooms[i]
	}
	return Response(http.StatusOK, s.router.FloorInstructions(floor, destination)), nil
}

func (s *DefaultApiService) GetGraph(ctx context.Context) (ImplResponse, error) {
	g := s.router.Graph()
	edges := make([]GraphEdge, 0, g.ArcCount())
	for _, e := range graph.Edges(g) {
		edges = append(edges, GraphEdge{From: e.From.String(), To: e.To.String(), Distance: e.Distance})
	}
	summary := GraphSummary{
		Nodes:       g.NodeCount(),
		Arcs:        g.ArcCount(),
		Symmetric:   graph.IsSymmetric(g),
		Fingerprint: strconv.FormatUint(s.router.Snapshot().Fingerprint(), 16),
		Edges:       edges,
	}
	summary.CacheHits, summary.CacheMisses = s.router.CacheStats()
	return Response(http.StatusOK, summary), nil
}
