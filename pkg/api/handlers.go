package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/roomgraph/pkg/health"
	"github.com/dd0wney/roomgraph/pkg/rooms"
	"github.com/dd0wney/roomgraph/pkg/validation"
)

// DetectResponse is the response body for POST /detect.
type DetectResponse struct {
	DetectionID  string       `json:"detection_id"`
	Rooms        []rooms.Room `json:"rooms"`
	TotalRooms   int          `json:"total_rooms"`
	NodeCount    int          `json:"node_count"`
	EdgeCount    int          `json:"edge_count"`
	CyclesFound  int          `json:"cycles_found"`
	UniqueCycles int          `json:"unique_cycles"`
	// Truncated reports that the enumeration cap was hit; the room list is
	// not necessarily exhaustive.
	Truncated  bool  `json:"truncated"`
	DurationMs int64 `json:"duration_ms"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Version   string                  `json:"version"`
	Uptime    string                  `json:"uptime"`
	Checks    map[string]health.Check `json:"checks"`
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req validation.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordRejected()
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateDetectRequest(&req); err != nil {
		s.metrics.RecordRejected()
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := s.config.Detection.Options()
	if req.AreaThreshold != nil {
		opts.AreaThreshold = *req.AreaThreshold
	}
	if req.DoorGapThreshold != nil {
		opts.DoorGapThreshold = *req.DoorGapThreshold
	}
	if req.OuterBoundaryRatio != nil {
		opts.OuterBoundaryRatio = *req.OuterBoundaryRatio
	}

	start := time.Now()
	result := rooms.Detect(req.Walls, opts)
	duration := time.Since(start)

	s.metrics.RecordDetection("ok", duration,
		len(req.Walls), result.CyclesFound, len(result.Rooms), result.Truncated)

	s.respondJSON(w, http.StatusOK, DetectResponse{
		DetectionID:  uuid.NewString(),
		Rooms:        result.Rooms,
		TotalRooms:   len(result.Rooms),
		NodeCount:    result.NodeCount,
		EdgeCount:    result.EdgeCount,
		CyclesFound:  result.CyclesFound,
		UniqueCycles: result.UniqueCycles,
		Truncated:    result.Truncated,
		DurationMs:   duration.Milliseconds(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	healthStatus := s.health.Check()

	httpStatus := http.StatusOK
	if healthStatus.Status == health.StatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	s.respondJSON(w, httpStatus, HealthResponse{
		Status:    string(healthStatus.Status),
		Timestamp: healthStatus.Timestamp,
		Version:   s.version,
		Uptime:    time.Since(s.startTime).String(),
		Checks:    healthStatus.Checks,
	})
}
