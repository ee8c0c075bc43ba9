package report

import (
	"math"
	"slices"
)

// Percentiles of days survived across a batch.
type Percentiles struct {
	P50 float64
	P90 float64
	P99 float64
}

// dayPercentiles sorts a copy of days and interpolates linearly between
// closest ranks.
func dayPercentiles(days []int) Percentiles {
	if len(days) == 0 {
		return Percentiles{}
	}
	sorted := slices.Clone(days)
	slices.Sort(sorted)
	return Percentiles{
		P50: percentile(sorted, 0.50),
		P90: percentile(sorted, 0.90),
		P99: percentile(sorted, 0.99),
	}
}

// percentile expects sorted to be non-empty and ascending.
func percentile(sorted []int, p float64) float64 {
	last := len(sorted) - 1
	switch {
	case last == 0 || p <= 0:
		return float64(sorted[0])
	case p >= 1:
		return float64(sorted[last])
	}
	rank := p * float64(last)
	lo := int(math.Floor(rank))
	if lo >= last {
		return float64(sorted[last])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}
