package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dd0wney/roomgraph/pkg/algorithms"
	"github.com/dd0wney/roomgraph/pkg/geometry"
	"github.com/dd0wney/roomgraph/pkg/graph"
	"github.com/dd0wney/roomgraph/pkg/rooms"
)

func main() {
	gridRows := flag.Int("rows", 5, "Rows of rooms in the synthetic floorplan")
	gridCols := flag.Int("cols", 5, "Columns of rooms in the synthetic floorplan")
	roomSize := flag.Float64("size", 50, "Side length of each synthetic room")
	runs := flag.Int("runs", 10, "Number of detection runs")
	flag.Parse()

	fmt.Printf("🔥 roomgraph - Room Detection Benchmark\n")
	fmt.Printf("=======================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Grid:  %dx%d rooms\n", *gridRows, *gridCols)
	fmt.Printf("  Size:  %g per room\n", *roomSize)
	fmt.Printf("  Runs:  %d\n\n", *runs)

	walls := gridFloorplan(*gridRows, *gridCols, *roomSize)
	fmt.Printf("📝 Generated %d walls\n\n", len(walls))

	opts := rooms.DefaultOptions()

	var total time.Duration
	var last rooms.DetectionResult
	for i := 0; i < *runs; i++ {
		start := time.Now()
		last = rooms.Detect(walls, opts)
		total += time.Since(start)
	}

	stats := algorithms.AnalyzeCycles(rawCycles(walls, opts))

	fmt.Printf("✅ Results:\n")
	fmt.Printf("  Nodes:          %d\n", last.NodeCount)
	fmt.Printf("  Edges:          %d\n", last.EdgeCount)
	fmt.Printf("  Raw cycles:     %d (shortest %d, longest %d, avg %.1f)\n",
		stats.TotalCycles, stats.ShortestCycle, stats.LongestCycle, stats.AverageLength)
	fmt.Printf("  Unique cycles:  %d\n", last.UniqueCycles)
	fmt.Printf("  Rooms:          %d\n", len(last.Rooms))
	fmt.Printf("  Truncated:      %v\n", last.Truncated)
	fmt.Printf("  Avg latency:    %v\n", total/time.Duration(*runs))
}

// gridFloorplan builds a rows x cols grid of square rooms that share walls
// with their neighbors, the densest realistic input for cycle enumeration.
func gridFloorplan(rows, cols int, size float64) []geometry.Wall {
	var walls []geometry.Wall

	// Horizontal walls
	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			walls = append(walls, geometry.Wall{
				Start: geometry.Point{X: float64(c) * size, Y: float64(r) * size},
				End:   geometry.Point{X: float64(c+1) * size, Y: float64(r) * size},
			})
		}
	}

	// Vertical walls
	for r := 0; r < rows; r++ {
		for c := 0; c <= cols; c++ {
			walls = append(walls, geometry.Wall{
				Start: geometry.Point{X: float64(c) * size, Y: float64(r) * size},
				End:   geometry.Point{X: float64(c) * size, Y: float64(r+1) * size},
			})
		}
	}

	return walls
}

func rawCycles(walls []geometry.Wall, opts rooms.Options) []algorithms.Cycle {
	g := graph.Build(walls, opts.DoorGapThreshold)
	return algorithms.EnumerateCycles(g, opts.Limits).Cycles
}
