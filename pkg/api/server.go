package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/roomgraph/pkg/api/middleware"
	"github.com/dd0wney/roomgraph/pkg/health"
	"github.com/dd0wney/roomgraph/pkg/metrics"
)

// Server represents the HTTP API server
type Server struct {
	config    Config
	metrics   *metrics.Registry
	health    *health.Checker
	startTime time.Time
	version   string
}

// NewServer creates a new API server
func NewServer(config Config, registry *metrics.Registry) *Server {
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}

	return &Server{
		config:    config,
		metrics:   registry,
		health:    health.NewChecker(),
		startTime: time.Now(),
		version:   "1.0.0",
	}
}

// Handler builds the full HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.HandlerFor(
		s.metrics.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	// Detection endpoint
	mux.HandleFunc("/detect", s.handleDetect)

	return middleware.Chain(mux,
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Metrics(s.metrics),
		middleware.PanicRecovery(),
		middleware.BodySizeLimit(s.config.BodyLimitBytes),
	)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	log.Printf("roomgraph API listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}
