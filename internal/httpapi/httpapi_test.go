package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/httpapi"
	"github.com/katalvlaran/gridpath/search"
)

func newTestHandler(t *testing.T, maxCells int) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := httpapi.NewSearchController(httpapi.SearchConfig{
		MaxCells:         maxCells,
		DefaultAlgorithm: search.AStar,
	})
	return httpapi.NewRouter(httpapi.Config{
		Controllers: []httpapi.Controller{ctrl},
	}).Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestHandler(t, 0), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAlgorithms(t *testing.T) {
	rec := do(t, newTestHandler(t, 0), http.MethodGet, "/v1/algorithms", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"algorithms":["dijkstra","astar","bfs","dfs"],"default":"astar"}`, rec.Body.String())
}

func TestSearch_Found(t *testing.T) {
	// --- Arrange ---
	h := newTestHandler(t, 0)
	body := httpapi.SearchRequest{Layout: []string{"S.E"}, Algorithm: "bfs"}

	// --- Act ---
	rec := do(t, h, http.MethodPost, "/v1/search", body)

	// --- Assert ---
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp httpapi.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEqual(t, uuid.Nil, resp.RunID)
	assert.Equal(t, "bfs", resp.Algorithm)
	assert.True(t, resp.Found)
	assert.Equal(t, 3, resp.VisitedCount)
	assert.Equal(t, 3, resp.PathLength)
	assert.Equal(t, []httpapi.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, resp.Path)
	assert.Equal(t, []string{"S*E"}, resp.Board)
}

func TestSearch_DefaultAlgorithm(t *testing.T) {
	rec := do(t, newTestHandler(t, 0), http.MethodPost, "/v1/search",
		httpapi.SearchRequest{Layout: []string{"S#E"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpapi.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "astar", resp.Algorithm)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Path)
}

func TestSearch_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   any
		status int
	}{
		{"NoLayout", map[string]any{"algorithm": "bfs"}, http.StatusBadRequest},
		{"NegativeDelay", map[string]any{"layout": []string{"S.E"}, "step_delay_ms": -1}, http.StatusBadRequest},
		{"UnknownAlgorithm", httpapi.SearchRequest{Layout: []string{"S.E"}, Algorithm: "greedy"}, http.StatusBadRequest},
		{"BadSymbol", httpapi.SearchRequest{Layout: []string{"S?E"}}, http.StatusBadRequest},
		{"Ragged", httpapi.SearchRequest{Layout: []string{"S.E", "."}}, http.StatusBadRequest},
		{"TooLarge", httpapi.SearchRequest{Layout: []string{"S....", ".....", "....E"}}, http.StatusBadRequest},
		{"NoStart", httpapi.SearchRequest{Layout: []string{"..E"}}, http.StatusUnprocessableEntity},
		{"NoEnd", httpapi.SearchRequest{Layout: []string{"S.."}}, http.StatusUnprocessableEntity},
	}
	h := newTestHandler(t, 12)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/search", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestStream(t *testing.T) {
	rec := do(t, newTestHandler(t, 0), http.MethodPost, "/v1/search/stream",
		httpapi.SearchRequest{Layout: []string{"S.E"}, Algorithm: "dijkstra"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Run-ID"))
	assert.Equal(t, 6, strings.Count(body, "event:progress"), "3 search steps + 3 path steps")
	assert.Equal(t, 1, strings.Count(body, "event:done"))

	var last string
	for _, line := range strings.Split(body, "\n") {
		if data, ok := strings.CutPrefix(line, "data:"); ok {
			last = data
		}
	}
	var summary httpapi.SummaryResponse
	require.NoError(t, json.Unmarshal([]byte(last), &summary))
	assert.True(t, summary.Found)
	assert.Equal(t, 3, summary.VisitedCount)
	assert.Equal(t, 3, summary.PathLength)
	assert.Equal(t, "dijkstra", summary.Algorithm)
}

func TestStream_MissingEndpoint(t *testing.T) {
	rec := do(t, newTestHandler(t, 0), http.MethodPost, "/v1/search/stream",
		httpapi.SearchRequest{Layout: []string{"S.."}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCompare(t *testing.T) {
	rec := do(t, newTestHandler(t, 0), http.MethodPost, "/v1/compare",
		httpapi.CompareRequest{Layout: []string{"S..", ".#.", "..E"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp httpapi.CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 4)
	for i, a := range search.Algorithms() {
		r := resp.Results[i]
		assert.Equal(t, a.String(), r.Algorithm)
		assert.True(t, r.Found)
		assert.Equal(t, 5, r.PathLength)
		assert.Nil(t, r.Board, "compare omits per-cell detail")
		assert.Equal(t, resp.RunID, r.RunID)
	}
}
