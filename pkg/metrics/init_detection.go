package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDetectionMetrics() {
	r.DetectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roomgraph_detections_total",
			Help: "Total number of room detection runs",
		},
		[]string{"status"}, // ok, rejected
	)

	r.DetectionDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomgraph_detection_duration_seconds",
			Help:    "Duration of room detection runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	r.DetectionWalls = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomgraph_detection_walls",
			Help:    "Number of input walls per detection run",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000},
		},
	)

	r.DetectionCyclesFound = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomgraph_detection_cycles_found",
			Help:    "Number of raw cycles discovered per detection run",
			Buckets: []float64{1, 10, 50, 100, 500, 1000},
		},
	)

	r.DetectionRoomsReturned = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roomgraph_detection_rooms_returned",
			Help:    "Number of rooms returned per detection run",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		},
	)

	r.DetectionTruncatedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "roomgraph_detection_truncated_total",
			Help: "Detection runs that hit the cycle enumeration cap",
		},
	)
}
