package rooms

import (
	"github.com/dd0wney/roomgraph/pkg/algorithms"
	"github.com/dd0wney/roomgraph/pkg/geometry"
	"github.com/dd0wney/roomgraph/pkg/graph"
)

// DetectionResult is the output of a detection run, with enough metadata
// for callers to surface the capped/exhaustive ambiguity and to record
// per-run metrics.
type DetectionResult struct {
	Rooms        []Room `json:"rooms"`
	NodeCount    int    `json:"node_count"`
	EdgeCount    int    `json:"edge_count"`
	CyclesFound  int    `json:"cycles_found"`
	UniqueCycles int    `json:"unique_cycles"`
	// Truncated reports that the cycle enumeration cap was reached; the
	// room list may be incomplete.
	Truncated bool `json:"truncated"`
}

// Detect runs the full pipeline on a wall list: graph construction (with
// optional door-gap bridging), cycle enumeration, deduplication, filtering
// and room synthesis. It is total over finite input: degenerate geometry
// (disconnected graph, zero cycles, all-too-small rooms) yields an empty
// room list, which is success, not failure.
//
// Detect holds no state across calls; independent calls may run
// concurrently.
func Detect(walls []geometry.Wall, opts Options) DetectionResult {
	g := graph.Build(walls, opts.DoorGapThreshold)

	enumerated := algorithms.EnumerateCycles(g, opts.Limits)
	unique := algorithms.Deduplicate(enumerated.Cycles)
	filtered := FilterCycles(g, unique, opts.AreaThreshold, opts.OuterBoundaryRatio)

	return DetectionResult{
		Rooms:        Synthesize(g, filtered),
		NodeCount:    g.NodeCount(),
		EdgeCount:    g.EdgeCount(),
		CyclesFound:  len(enumerated.Cycles),
		UniqueCycles: len(unique),
		Truncated:    enumerated.Truncated,
	}
}
