package tuning

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the foreground counts of all regions.
type Stats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Median float64 `json:"median"`
}

// ComputeStats returns summary statistics of counts. Empty input yields zero
// stats; the standard deviation of a single count is 0.
func ComputeStats(counts []int) Stats {
	if len(counts) == 0 {
		return Stats{}
	}

	x := sortedFloats(counts)
	s := Stats{
		Min:    floats.Min(x),
		Max:    floats.Max(x),
		Mean:   stat.Mean(x, nil),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
	}
	if len(x) > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}
	return s
}

// SuggestThreshold picks a threshold between the two clusters of counts.
//
// The counts are sorted and the widest gap between neighbours is found. The
// result is the smallest value above the midpoint of that gap, so the lower
// neighbour classifies as free and the upper one as occupied under
// count >= threshold. It reports false when there are fewer than two distinct
// counts.
func SuggestThreshold(counts []int) (int, bool) {
	if len(counts) < 2 {
		return 0, false
	}

	sorted := append([]int(nil), counts...)
	sort.Ints(sorted)

	gap, lower := 0, 0
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i] - sorted[i-1]; d > gap {
			gap, lower = d, sorted[i-1]
		}
	}
	if gap == 0 {
		return 0, false
	}
	return lower + (gap+1)/2, true
}

func sortedFloats(counts []int) []float64 {
	x := make([]float64, len(counts))
	for i, c := range counts {
		x[i] = float64(c)
	}
	sort.Float64s(x)
	return x
}
