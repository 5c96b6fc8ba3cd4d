package algorithms

import (
	"slices"
	"strconv"
	"strings"
)

// Deduplicate collapses cycles that trace the same geometric loop from
// different start nodes or in opposite directions. The first-seen cycle per
// canonical signature is kept, preserving discovery order among distinct
// cycles.
func Deduplicate(cycles []Cycle) []Cycle {
	unique := make([]Cycle, 0, len(cycles))
	seen := make(map[string]bool, len(cycles))

	for _, cycle := range cycles {
		sig := CanonicalSignature(cycle)
		if seen[sig] {
			continue
		}
		seen[sig] = true
		unique = append(unique, cycle)
	}

	return unique
}

// CanonicalSignature returns a key that is identical for every rotation and
// direction reversal of the same cycle. The duplicated closing node is
// dropped, then the lexicographically smallest of the n forward rotations
// and n reversed rotations (2n candidates for an n-node cycle) is encoded.
func CanonicalSignature(cycle Cycle) string {
	nodes := openCycle(cycle)
	if len(nodes) == 0 {
		return ""
	}

	reversed := make([]int, len(nodes))
	for i, n := range nodes {
		reversed[len(nodes)-1-i] = n
	}

	best := slices.Clone(nodes)
	for r := 0; r < len(nodes); r++ {
		if candidate := rotation(nodes, r); slices.Compare(candidate, best) < 0 {
			best = candidate
		}
		if candidate := rotation(reversed, r); slices.Compare(candidate, best) < 0 {
			best = candidate
		}
	}

	var sb strings.Builder
	for i, n := range best {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// openCycle strips the duplicated closing node, if present.
func openCycle(cycle Cycle) []int {
	if len(cycle) >= 2 && cycle[0] == cycle[len(cycle)-1] {
		return cycle[:len(cycle)-1]
	}
	return cycle
}

// rotation returns nodes rotated left by r positions.
func rotation(nodes []int, r int) []int {
	out := make([]int, 0, len(nodes))
	out = append(out, nodes[r:]...)
	out = append(out, nodes[:r]...)
	return out
}
