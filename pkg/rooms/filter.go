package rooms

import (
	"sort"

	"github.com/dd0wney/roomgraph/pkg/algorithms"
	"github.com/dd0wney/roomgraph/pkg/geometry"
	"github.com/dd0wney/roomgraph/pkg/graph"
)

// FilterCycles reduces deduplicated cycles to room candidates. Invalid
// cycles and cycles below areaThreshold are discarded; then, if the largest
// remaining cycle is disproportionately larger than the second largest
// (by more than ratio), exactly that one cycle is removed as the outer
// building envelope. It never removes more than one cycle, however many
// large cycles exist: when no cycle dominates (several disjoint interior
// loops of similar size) all are kept.
func FilterCycles(g *graph.Graph, cycles []algorithms.Cycle, areaThreshold, ratio float64) []algorithms.Cycle {
	type measured struct {
		cycle algorithms.Cycle
		area  float64
	}

	kept := make([]measured, 0, len(cycles))
	for _, cycle := range cycles {
		if !validCycle(g, cycle) {
			continue
		}
		area := geometry.PolygonArea(cyclePoints(g, cycle))
		if area < areaThreshold {
			continue
		}
		kept = append(kept, measured{cycle: cycle, area: area})
	}

	if len(kept) <= 1 {
		out := make([]algorithms.Cycle, len(kept))
		for i, m := range kept {
			out[i] = m.cycle
		}
		return out
	}

	order := make([]int, len(kept))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return kept[order[i]].area > kept[order[j]].area
	})

	drop := -1
	if kept[order[0]].area > kept[order[1]].area*ratio {
		drop = order[0]
	}

	out := make([]algorithms.Cycle, 0, len(kept))
	for i, m := range kept {
		if i == drop {
			continue
		}
		out = append(out, m.cycle)
	}
	return out
}

// validCycle reports whether the cycle visits at least three distinct nodes
// and every consecutive node pair, including the closing pair, is a real
// graph edge.
func validCycle(g *graph.Graph, cycle algorithms.Cycle) bool {
	nodes := cycle
	if len(nodes) >= 2 && nodes[0] == nodes[len(nodes)-1] {
		nodes = nodes[:len(nodes)-1]
	}

	distinct := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		distinct[n] = true
	}
	if len(distinct) < 3 {
		return false
	}

	for i := range nodes {
		next := nodes[(i+1)%len(nodes)]
		if !g.HasEdgeBetween(nodes[i], next) {
			return false
		}
	}
	return true
}

// cyclePoints returns the cycle's vertex coordinates without the
// duplicated closing node.
func cyclePoints(g *graph.Graph, cycle algorithms.Cycle) []geometry.Point {
	nodes := cycle
	if len(nodes) >= 2 && nodes[0] == nodes[len(nodes)-1] {
		nodes = nodes[:len(nodes)-1]
	}
	return g.PointsOf(nodes)
}
