package algorithms

// CycleStats provides statistics about enumerated cycles. Lengths count
// distinct nodes on each cycle, not the duplicated closing node.
type CycleStats struct {
	TotalCycles   int
	ShortestCycle int
	LongestCycle  int
	AverageLength float64
}

// AnalyzeCycles computes statistics about the given cycles.
func AnalyzeCycles(cycles []Cycle) CycleStats {
	if len(cycles) == 0 {
		return CycleStats{}
	}

	stats := CycleStats{
		TotalCycles:   len(cycles),
		ShortestCycle: len(openCycle(cycles[0])),
		LongestCycle:  len(openCycle(cycles[0])),
	}

	totalLength := 0
	for _, cycle := range cycles {
		length := len(openCycle(cycle))
		totalLength += length

		if length < stats.ShortestCycle {
			stats.ShortestCycle = length
		}
		if length > stats.LongestCycle {
			stats.LongestCycle = length
		}
	}

	stats.AverageLength = float64(totalLength) / float64(len(cycles))
	return stats
}
