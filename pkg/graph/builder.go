package graph

import (
	"sort"

	"github.com/dd0wney/roomgraph/pkg/geometry"
)

// Build constructs the floorplan graph for a wall list. Each wall endpoint
// is created or reused as a node keyed by rounded coordinates, and one edge
// is added per wall. Zero-length walls degenerate to self-loops, which the
// minimum-node-count rule excludes downstream.
//
// When doorThreshold > 0, dangling (degree-1) endpoints within the
// threshold of each other are joined with synthesized bridge edges, so a
// gap that geometrically represents an open doorway does not break the
// enclosing cycle.
//
// Build never fails for finite input.
func Build(walls []geometry.Wall, doorThreshold float64) *Graph {
	g := New()

	for _, wall := range walls {
		start := g.NodeAt(wall.Start)
		end := g.NodeAt(wall.End)
		g.AddEdge(start, end, EdgeWall, wall)
	}

	if doorThreshold > 0 {
		g.bridgeDoorGaps(doorThreshold)
	}

	return g
}

// gapCandidate is a dangling-endpoint pair within bridging distance.
type gapCandidate struct {
	a, b     int
	distance float64
}

// bridgeDoorGaps pairs dangling endpoints that are within threshold of each
// other and not already connected. Pairs are taken greedily in ascending
// distance order, and each node is consumed by its first bridge, so one
// doorway cannot fan out into multiple unrelated connections.
func (g *Graph) bridgeDoorGaps(threshold float64) {
	var dangling []int
	for node := 0; node < g.NodeCount(); node++ {
		if g.Degree(node) == 1 {
			dangling = append(dangling, node)
		}
	}

	var candidates []gapCandidate
	for i := 0; i < len(dangling); i++ {
		for j := i + 1; j < len(dangling); j++ {
			a, b := dangling[i], dangling[j]
			if g.HasEdgeBetween(a, b) {
				continue
			}
			d := geometry.Distance(g.Point(a), g.Point(b))
			if d > 0 && d <= threshold {
				candidates = append(candidates, gapCandidate{a: a, b: b, distance: d})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	consumed := make(map[int]bool)
	for _, c := range candidates {
		if consumed[c.a] || consumed[c.b] {
			continue
		}
		bridge := geometry.Wall{
			Start:  g.Point(c.a),
			End:    g.Point(c.b),
			Source: "door_bridge",
		}
		g.AddEdge(c.a, c.b, EdgeDoorBridge, bridge)
		consumed[c.a] = true
		consumed[c.b] = true
	}
}
