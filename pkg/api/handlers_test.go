package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/roomgraph/pkg/metrics"
)

func newTestServer(config Config) *Server {
	return NewServer(config, metrics.NewRegistry())
}

func postDetect(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)
	return recorder
}

func squareWallsJSON(size float64) string {
	return fmt.Sprintf(`[
		{"start":{"x":0,"y":0},"end":{"x":%[1]g,"y":0}},
		{"start":{"x":%[1]g,"y":0},"end":{"x":%[1]g,"y":%[1]g}},
		{"start":{"x":%[1]g,"y":%[1]g},"end":{"x":0,"y":%[1]g}},
		{"start":{"x":0,"y":%[1]g},"end":{"x":0,"y":0}}
	]`, size)
}

// TestHandleDetect_Success verifies a full detection round trip over HTTP
func TestHandleDetect_Success(t *testing.T) {
	s := newTestServer(DefaultConfig())

	recorder := postDetect(t, s, `{"walls":`+squareWallsJSON(100)+`}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	var resp DetectResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.DetectionID)
	require.Equal(t, 1, resp.TotalRooms)
	assert.InDelta(t, 10000, resp.Rooms[0].Area, 1e-6)
	assert.Equal(t, 4, resp.NodeCount)
	assert.Equal(t, 4, resp.EdgeCount)
	assert.Equal(t, 1, resp.UniqueCycles)
	assert.False(t, resp.Truncated)
}

// TestHandleDetect_MethodNotAllowed verifies non-POST requests are rejected
func TestHandleDetect_MethodNotAllowed(t *testing.T) {
	s := newTestServer(DefaultConfig())

	req := httptest.NewRequest(http.MethodGet, "/detect", nil)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

// TestHandleDetect_InvalidJSON verifies malformed bodies yield a 400
func TestHandleDetect_InvalidJSON(t *testing.T) {
	s := newTestServer(DefaultConfig())

	recorder := postDetect(t, s, `{not json`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

// TestHandleDetect_ValidationFailure verifies an empty wall list yields a 400
func TestHandleDetect_ValidationFailure(t *testing.T) {
	s := newTestServer(DefaultConfig())

	recorder := postDetect(t, s, `{"walls":[]}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

// TestHandleDetect_ThresholdOverride verifies per-request threshold
// overrides are honored
func TestHandleDetect_ThresholdOverride(t *testing.T) {
	s := newTestServer(DefaultConfig())

	// A 5x5 room (area 25) falls below the default threshold of 100.
	recorder := postDetect(t, s, `{"walls":`+squareWallsJSON(5)+`}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp DetectResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.TotalRooms)

	recorder = postDetect(t, s, `{"walls":`+squareWallsJSON(5)+`,"area_threshold":10}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalRooms)
}

// TestHandleDetect_BodySizeLimit verifies oversized bodies are cut off
func TestHandleDetect_BodySizeLimit(t *testing.T) {
	config := DefaultConfig()
	config.BodyLimitBytes = 64
	s := newTestServer(config)

	recorder := postDetect(t, s, `{"walls":`+squareWallsJSON(100)+`}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
}

// TestHandleHealth verifies the health endpoint reports healthy
func TestHandleHealth(t *testing.T) {
	s := newTestServer(DefaultConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Checks)
}

// TestMetricsEndpoint verifies detection metrics are exposed for scraping
func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(DefaultConfig())

	postDetect(t, s, `{"walls":`+squareWallsJSON(100)+`}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	s.Handler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, bytes.Contains(recorder.Body.Bytes(), []byte("roomgraph_detections_total")))
}
