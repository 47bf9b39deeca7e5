package openapi_server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natevvv/campus-navigation/pkg/campus"
	"github.com/natevvv/campus-navigation/pkg/guidance"
	"github.com/natevvv/campus-navigation/pkg/routing"
	"github.com/stretchr/testify/require"
)

func testHandler() http.Handler {
	points := []campus.Point{
		{ID: "7", Title: "Gate", X: 0, Y: 0, Neighbors: []campus.ID{"w"}},
		{ID: "w", X: 3, Y: 4, IsWaypoint: true, Neighbors: []campus.ID{"main"}},
		{ID: "main", Title: "Main building", X: 6, Y: 8, Floors: []campus.Floor{
			{Level: 0, Rooms: []campus.Room{
				{Name: "Foyer"},
				{Name: "E1", Description: "Elevator", BesideRooms: []string{"Foyer"}},
				{Name: "Mail", ID: "r2"},
			}},
		}},
		{ID: "island", X: 100, Y: 100},
	}
	router := routing.NewRouter(campus.NewSnapshot(points), routing.Config{})
	return NewRouter(NewDefaultApiController(NewDefaultApiService(router)))
}

func serve(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())
	return result
}

func TestComputeRouteEndpoint(t *testing.T) {
	rec := serve(t, http.MethodPost, "/routes", `{"from": "07", "to": "main", "destinationRoom": "Mail"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get(RequestIdHeader))

	result := decode[RouteResult](t, rec)
	require.True(t, result.Reachable)
	require.Equal(t, "7", result.Origin.Id)
	require.Equal(t, "main", result.Destination.Id)
	require.InDelta(t, 10.0, result.Path.Length, 1e-9)
	require.Len(t, result.Path.Waypoints, 3)
	require.Len(t, result.Path.Visible, 2)
	require.Len(t, result.Instructions.Elevators, 1)
	require.Equal(t, guidance.DirectionNone, result.Instructions.Elevators[0].Direction)
	require.Equal(t, "Take the elevator E1 beside Foyer, Mail is right next to it", result.Instructions.Elevators[0].Text)
}

func TestComputeRouteEndpointFailures(t *testing.T) {
	rec := serve(t, http.MethodPost, "/routes", `{"from": "7", "to": "island"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[RouteResult](t, rec)
	require.False(t, result.Reachable)
	require.Contains(t, result.Error, "no route")
	require.Empty(t, result.Path.Waypoints)

	rec = serve(t, http.MethodPost, "/routes", `{"from": "7", "to": "atlantis"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodPost, "/routes", `{"from": "7", "to": "main", "destinationRoom": "Vault"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodPost, "/routes", `{"to": "main"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, http.MethodPost, "/routes", `{"from": "7", "via": "w"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, http.MethodPost, "/routes", `{"from": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotEmpty(t, decode[ErrorResult](t, rec).Error)
}

func TestPreflight(t *testing.T) {
	rec := serve(t, http.MethodOptions, "/routes", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "POST", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestGetPoints(t *testing.T) {
	rec := serve(t, http.MethodGet, "/points", "")
	require.Equal(t, http.StatusOK, rec.Code)
	nodes := decode[Nodes](t, rec)
	require.Len(t, nodes.Points, 4)
	require.True(t, nodes.Points[1].IsWaypoint)
	require.True(t, nodes.Points[2].IsBuilding)

	rec = serve(t, http.MethodGet, "/points?visible=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	visible := decode[Nodes](t, rec)
	require.Len(t, visible.Points, 3)
	for _, p := range visible.Points {
		require.False(t, p.IsWaypoint)
	}

	rec = serve(t, http.MethodGet, "/points?visible=false", "")
	require.Len(t, decode[Nodes](t, rec).Points, 4)

	rec = serve(t, http.MethodGet, "/points?visible=maybe", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, http.MethodGet, "/points/main", "")
	require.Equal(t, http.StatusOK, rec.Code)
	point := decode[campus.Point](t, rec)
	require.Equal(t, campus.ID("main"), point.ID)
	require.Len(t, point.Floors, 1)
	require.Len(t, point.Floors[0].Rooms, 3)

	rec = serve(t, http.MethodGet, "/points/7.0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, campus.ID("7"), decode[campus.Point](t, rec).ID)

	rec = serve(t, http.MethodGet, "/points/atlantis", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateInstructionsEndpoint(t *testing.T) {
	rec := serve(t, http.MethodPost, "/instructions", `{"building": "main", "level": 0, "destinationRoom": "r2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	ins := decode[guidance.Instructions](t, rec)
	require.Len(t, ins.Elevators, 1)
	require.Equal(t, "Foyer", ins.Elevators[0].Anchor.Name)
	require.Equal(t, "Mail", ins.Elevators[0].Destination)

	rec = serve(t, http.MethodPost, "/instructions", `{"building": "main", "level": 3}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodPost, "/instructions", `{"building": "main", "level": 0, "destinationRoom": "Vault"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodPost, "/instructions", `{"level": 0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGraph(t *testing.T) {
	rec := serve(t, http.MethodGet, "/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[GraphSummary](t, rec)
	require.Equal(t, 4, summary.Nodes)
	require.Equal(t, 4, summary.Arcs)
	require.True(t, summary.Symmetric)
	require.Len(t, summary.Edges, 4)
	require.NotEmpty(t, summary.Fingerprint)
	require.Equal(t, 0, summary.CacheHits)
	require.Equal(t, 1, summary.CacheMisses)
}
