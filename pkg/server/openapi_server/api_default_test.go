package openapi_server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natevvv/osm-turn-routing/pkg/graph"
	"github.com/natevvv/osm-turn-routing/pkg/routing"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

const junctionFmi = `4
4
0 0 0
1 0 0.001
2 0.001 0
3 0.001 0.001
0 1 95 primary
0 2 100 primary
1 3 100 primary
2 3 100 primary`

const routeBody = `{"origin": {"lat": 0, "lon": 0}, "destination": {"lat": 0.001, "lon": 0.001}, "vehicleType": "car"}`

func newTestServer(t *testing.T, withPenaltyFile bool) http.Handler {
	t.Helper()
	dir := t.TempDir()
	graphFile := filepath.Join(dir, "graph.fmi")
	require.NoError(t, os.WriteFile(graphFile, []byte(junctionFmi), 0o644))

	penaltyFile := ""
	if withPenaltyFile {
		g, err := graph.NewAdjacencyListFromFmiString(junctionFmi)
		require.NoError(t, err)
		penalties, err := turn.BuildPenaltyTable(g, turn.MakePenaltyOptions())
		require.NoError(t, err)
		penaltyFile = filepath.Join(dir, "graph.penalties")
		require.NoError(t, turn.WritePenaltyFile(penalties, penaltyFile))
	}

	router, err := NewRouterFromFiles(graphFile, penaltyFile, turn.MakePenaltyOptions(), routing.NavigatorTurnDijkstra)
	require.NoError(t, err)
	service := NewDefaultApiService(router, NavigatorConfig{VehicleType: "car"})
	return NewRouter(NewDefaultApiController(service))
}

func do(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestComputeRoute(t *testing.T) {
	for _, withPenaltyFile := range []bool{false, true} {
		handler := newTestServer(t, withPenaltyFile)
		rec := do(handler, http.MethodPost, "/routes", routeBody)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var result RouteResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Reachable)
		require.NotNil(t, result.Path)
		assert.Equal(t, int32(200), result.Path.Length)
		assert.Len(t, result.Path.Waypoints, 3)
		require.Len(t, result.Path.Maneuvers, 1)
		assert.Equal(t, "right", result.Path.Maneuvers[0].Direction)
		assert.Equal(t, Point{Lat: 0.001, Lon: 0}, result.Path.Maneuvers[0].Location)
		assert.Contains(t, rec.Body.String(), `"LineString"`)
	}
}

func TestSetNavigator(t *testing.T) {
	handler := newTestServer(t, false)

	rec := do(handler, http.MethodPost, "/navigator", `{"navigator": "dijkstra"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(handler, http.MethodPost, "/routes", routeBody)
	require.Equal(t, http.StatusOK, rec.Code)
	var result RouteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Path)
	assert.Equal(t, int32(195), result.Path.Length)
	require.Len(t, result.Path.Maneuvers, 1)
	assert.Equal(t, "left", result.Path.Maneuvers[0].Direction)

	rec = do(handler, http.MethodPost, "/navigator", `{"navigator": "astar"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(handler, http.MethodPost, "/navigator", `{"navigator": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInvalidRouteRequests(t *testing.T) {
	handler := newTestServer(t, false)

	rec := do(handler, http.MethodPost, "/routes", `{"origin": {"lat": 0, "lon": 0}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(handler, http.MethodPost, "/routes", `{"origin": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(handler, http.MethodPost, "/routes", `{"origin": {"lat": 0, "lon": 0}, "destination": {"lat": 0, "lon": 0}, "speed": 3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(handler, http.MethodPost, "/routes", `{"origin": {"lat": 100, "lon": 0}, "destination": {"lat": 0, "lon": 0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(handler, http.MethodPost, "/routes", `{"origin": {"lat": 0, "lon": 0}, "destination": {"lat": 0, "lon": 0}, "vehicleType": "tank"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(handler, http.MethodGet, "/routes", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNodesAndSearchSpace(t *testing.T) {
	handler := newTestServer(t, false)

	rec := do(handler, http.MethodGet, "/nodes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var nodes Nodes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	assert.Len(t, nodes.Waypoints, 4)

	rec = do(handler, http.MethodGet, "/searchSpace", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	assert.Empty(t, nodes.Waypoints)

	do(handler, http.MethodPost, "/routes", routeBody)
	rec = do(handler, http.MethodGet, "/searchSpace", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nodes))
	assert.NotEmpty(t, nodes.Waypoints)
}

func TestMissingGraphFile(t *testing.T) {
	_, err := NewRouterFromFiles(filepath.Join(t.TempDir(), "missing.fmi"), "", turn.MakePenaltyOptions(), routing.NavigatorTurnDijkstra)
	assert.Error(t, err)
}
