package consensus

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// WeightedMeanStdDev returns the weighted mean and weighted population
// standard deviation of values. Weights must be non-negative and have the
// same length as values.
func WeightedMeanStdDev(values, weights []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.PopMeanStdDev(values, weights)
}

// Ceiling returns round(mean + k*std).
func Ceiling(mean, std, k float64) int {
	return int(math.Round(mean + k*std))
}

// MaxAtMost returns the largest value not above limit.
// ok is false when every value exceeds limit.
func MaxAtMost(values []int, limit int) (max int, ok bool) {
	for _, v := range values {
		if v > limit {
			continue
		}
		if !ok || v > max {
			max = v
			ok = true
		}
	}
	return max, ok
}
