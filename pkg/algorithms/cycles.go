package algorithms

import (
	"github.com/dd0wney/roomgraph/pkg/graph"
)

// Cycle is a closed walk through the graph as a sequence of node indices.
// The start node is repeated at the end.
type Cycle []int

// Default enumeration bounds. These exist solely to bound worst-case
// exponential behavior on dense or adversarial graphs; hitting them is an
// availability safeguard, not a correctness guarantee of exhaustiveness.
const (
	DefaultMaxCycles      = 1000
	DefaultMaxCycleLength = 100
)

// Limits bounds cycle enumeration. MaxCycles caps the total number of
// cycles discovered across the whole run; MaxCycleLength caps the number of
// nodes on any single cycle.
type Limits struct {
	MaxCycles      int
	MaxCycleLength int
}

// DefaultLimits returns the standard enumeration bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxCycles:      DefaultMaxCycles,
		MaxCycleLength: DefaultMaxCycleLength,
	}
}

// Result holds the outcome of cycle enumeration. When Truncated is true the
// MaxCycles cap was hit and the cycle list is not necessarily exhaustive;
// callers that care about observability should surface this.
type Result struct {
	Cycles    []Cycle
	Truncated bool
}

// EnumerateCycles finds simple cycles in the graph using depth-first search
// from every node, up to the given limits.
//
// At node c, for every incident edge to neighbor n: if n is not on the
// current path, recurse into n; if n is the start node and the path already
// holds at least three nodes, record path + start as a closed cycle. Any
// other encounter of an already-visited node is ignored. Each cycle is
// therefore found once per (start node, direction) combination, which
// Deduplicate resolves.
//
// Self-loops and parallel two-node loops never reach the three-node
// minimum and are excluded by construction.
func EnumerateCycles(g *graph.Graph, limits Limits) Result {
	e := &enumerator{
		g:      g,
		limits: limits,
		onPath: make([]bool, g.NodeCount()),
	}

	for start := 0; start < g.NodeCount(); start++ {
		if e.truncated {
			break
		}
		e.path = e.path[:0]
		e.path = append(e.path, start)
		e.onPath[start] = true
		e.dfs(start, start)
		e.onPath[start] = false
	}

	return Result{Cycles: e.cycles, Truncated: e.truncated}
}

// enumerator carries the per-run DFS state: the current path and an indexed
// membership bitset, so the path test is O(1) rather than a linear scan.
type enumerator struct {
	g         *graph.Graph
	limits    Limits
	path      []int
	onPath    []bool
	cycles    []Cycle
	truncated bool
}

func (e *enumerator) dfs(start, current int) {
	for _, ei := range e.g.Incident(current) {
		if e.truncated {
			return
		}

		n := e.g.Edge(ei).Other(current)

		if n == start {
			// The path length guard below already keeps the path within
			// MaxCycleLength nodes.
			if len(e.path) >= 3 {
				cycle := make(Cycle, 0, len(e.path)+1)
				cycle = append(cycle, e.path...)
				cycle = append(cycle, start)
				e.cycles = append(e.cycles, cycle)
				if len(e.cycles) >= e.limits.MaxCycles {
					e.truncated = true
				}
			}
			continue
		}

		if e.onPath[n] {
			continue
		}
		if len(e.path) >= e.limits.MaxCycleLength {
			continue
		}

		e.path = append(e.path, n)
		e.onPath[n] = true
		e.dfs(start, n)
		e.path = e.path[:len(e.path)-1]
		e.onPath[n] = false
	}
}
