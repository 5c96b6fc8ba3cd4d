package algorithms

import (
	"math"
	"testing"
)

// TestAnalyzeCycles verifies length statistics over a mixed set of cycles
func TestAnalyzeCycles(t *testing.T) {
	cycles := []Cycle{
		{0, 1, 2, 0},
		{0, 1, 2, 3, 0},
		{0, 1, 2, 3, 4, 0},
	}

	stats := AnalyzeCycles(cycles)

	if stats.TotalCycles != 3 {
		t.Errorf("Expected 3 cycles, got %d", stats.TotalCycles)
	}
	if stats.ShortestCycle != 3 {
		t.Errorf("Expected shortest 3, got %d", stats.ShortestCycle)
	}
	if stats.LongestCycle != 5 {
		t.Errorf("Expected longest 5, got %d", stats.LongestCycle)
	}
	if math.Abs(stats.AverageLength-4.0) > 1e-9 {
		t.Errorf("Expected average 4.0, got %v", stats.AverageLength)
	}
}

// TestAnalyzeCycles_Empty verifies zeroed stats for no cycles
func TestAnalyzeCycles_Empty(t *testing.T) {
	stats := AnalyzeCycles(nil)

	if stats.TotalCycles != 0 || stats.ShortestCycle != 0 || stats.LongestCycle != 0 || stats.AverageLength != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
}
