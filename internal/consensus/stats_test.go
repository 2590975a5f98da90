package consensus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedMeanStdDev(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		weights  []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, nil, 0, 0},
		{"single", []float64{8}, []float64{5}, 8, 0},
		{"unweighted", []float64{2, 4, 4, 4, 5, 5, 7, 9}, nil, 5, 2},
		{"weighted equals expanded", []float64{2, 4, 5, 7, 9}, []float64{1, 3, 2, 1, 1}, 5, 2},
		{"dominant bucket", []float64{8, 20}, []float64{60, 4}, 8.75, math.Sqrt(8.4375)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := WeightedMeanStdDev(tt.values, tt.weights)
			assert.InDelta(t, tt.wantMean, mean, 1e-9)
			assert.InDelta(t, tt.wantStd, std, 1e-9)
		})
	}
}

func TestCeiling(t *testing.T) {
	assert.Equal(t, 15, Ceiling(8.75, math.Sqrt(8.4375), 2))
	assert.Equal(t, 8, Ceiling(8, 0, 2))
	assert.Equal(t, 11, Ceiling(10.5, 0, 2))
}

func TestMaxAtMost(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		limit  int
		want   int
		wantOK bool
	}{
		{"empty", nil, 10, 0, false},
		{"all above", []int{11, 12}, 10, 0, false},
		{"limit inclusive", []int{4, 10, 12}, 10, 10, true},
		{"skips outliers", []int{8, 20, 9, 40}, 15, 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MaxAtMost(tt.values, tt.limit)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
