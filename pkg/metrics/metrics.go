package metrics

import (
	"time"
)

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordResponseSize records the size of an HTTP response
func (r *Registry) RecordResponseSize(method, path string, size float64) {
	r.HTTPResponseSizeBytes.WithLabelValues(method, path).Observe(size)
}

// IncHTTPRequestsInFlight increments the in-flight request gauge
func (r *Registry) IncHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Inc()
}

// DecHTTPRequestsInFlight decrements the in-flight request gauge
func (r *Registry) DecHTTPRequestsInFlight() {
	r.HTTPRequestsInFlight.Dec()
}

// RecordDetection records a completed room detection run
func (r *Registry) RecordDetection(status string, duration time.Duration, walls, cycles, roomsReturned int, truncated bool) {
	r.DetectionsTotal.WithLabelValues(status).Inc()
	r.DetectionDuration.Observe(duration.Seconds())
	r.DetectionWalls.Observe(float64(walls))
	r.DetectionCyclesFound.Observe(float64(cycles))
	r.DetectionRoomsReturned.Observe(float64(roomsReturned))

	if truncated {
		r.DetectionTruncatedTotal.Inc()
	}
}

// RecordRejected records a detection request rejected by input validation
func (r *Registry) RecordRejected() {
	r.DetectionsTotal.WithLabelValues("rejected").Inc()
}
