package health

import (
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// Check represents a health check result for a specific component
type Check struct {
	Name        string         `json:"name"`
	Status      Status         `json:"status"`
	Message     string         `json:"message,omitempty"`
	Details     map[string]any `json:"details,omitempty"`
	LastChecked time.Time      `json:"last_checked"`
	Duration    time.Duration  `json:"duration_ms"`
}

// CheckFunc is a function that performs a health check
type CheckFunc func() Check

// Checker manages health checks for the application
type Checker struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// Response represents the overall health response
type Response struct {
	Status    Status           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Checks    map[string]Check `json:"checks"`
}

// NewChecker creates a health checker with the standard runtime checks
// registered.
func NewChecker() *Checker {
	c := &Checker{
		checks: make(map[string]CheckFunc),
	}
	c.RegisterCheck("memory", MemoryCheck(512))
	c.RegisterCheck("goroutines", GoroutineCheck(10000))
	return c
}

// RegisterCheck registers a health check under the given name.
func (c *Checker) RegisterCheck(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Check performs all registered checks. The worst individual status wins.
func (c *Checker) Check() Response {
	c.mu.RLock()
	defer c.mu.RUnlock()

	response := Response{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Checks:    make(map[string]Check),
	}

	for name, checkFunc := range c.checks {
		start := time.Now()
		check := checkFunc()
		check.Name = name
		check.Duration = time.Since(start)
		check.LastChecked = start

		response.Checks[name] = check

		if check.Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		} else if check.Status == StatusDegraded && response.Status != StatusUnhealthy {
			response.Status = StatusDegraded
		}
	}

	return response
}

// MemoryCheck reports degraded health when the heap grows beyond
// maxHeapMB megabytes.
func MemoryCheck(maxHeapMB uint64) CheckFunc {
	return func() Check {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		heapMB := stats.HeapAlloc / (1024 * 1024)
		status := StatusHealthy
		if heapMB > maxHeapMB {
			status = StatusDegraded
		}

		return Check{
			Status:  status,
			Message: fmt.Sprintf("heap %d MB", heapMB),
			Details: map[string]any{
				"heap_alloc_mb": heapMB,
				"num_gc":        stats.NumGC,
			},
		}
	}
}

// GoroutineCheck reports degraded health when the goroutine count grows
// beyond max.
func GoroutineCheck(max int) CheckFunc {
	return func() Check {
		count := runtime.NumGoroutine()
		status := StatusHealthy
		if count > max {
			status = StatusDegraded
		}

		return Check{
			Status:  status,
			Message: fmt.Sprintf("%d goroutines", count),
			Details: map[string]any{
				"goroutines": count,
			},
		}
	}
}
