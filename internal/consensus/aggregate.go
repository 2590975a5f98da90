// Package consensus merges per-frame border rects into one answer.
//
// Rects are bucketed by exact equality, rare buckets are dropped, and every
// side is then chosen as the largest value that is still statistically
// plausible given the occurrence-weighted distribution of that side.
package consensus

import (
	"github.com/bft-labs/findclip/internal/domain"
)

const (
	// rarityDivisor sets the frequency floor: buckets seen fewer than
	// N/rarityDivisor times are dropped.
	rarityDivisor = 64
	// spread is the number of standard deviations above the mean accepted
	// for a side.
	spread = 2
)

// Bucket is a distinct rect with its number of occurrences.
type Bucket struct {
	Rect  domain.ClipRect
	Count int
}

// Group buckets rects by exact equality, in order of first appearance.
func Group(rects []domain.ClipRect) []Bucket {
	index := make(map[domain.ClipRect]int, len(rects))
	buckets := make([]Bucket, 0)
	for _, r := range rects {
		if i, ok := index[r]; ok {
			buckets[i].Count++
			continue
		}
		index[r] = len(buckets)
		buckets = append(buckets, Bucket{Rect: r, Count: 1})
	}
	return buckets
}

// Retain drops buckets occurring fewer than total/64 times.
func Retain(buckets []Bucket, total int) []Bucket {
	floor := total / rarityDivisor
	kept := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		if b.Count >= floor {
			kept = append(kept, b)
		}
	}
	return kept
}

// Aggregate computes the consensus rect of a batch.
func Aggregate(rects []domain.ClipRect) (domain.ClipRect, error) {
	switch len(rects) {
	case 0:
		return domain.ClipRect{}, domain.ErrNoValidFrames
	case 1:
		return rects[0], nil
	}

	buckets := Group(rects)
	kept := Retain(buckets, len(rects))
	if len(kept) == 0 {
		// every outcome is rare; judge them all
		kept = buckets
	}

	return domain.ClipRect{
		Top:    side(kept, func(r domain.ClipRect) int { return r.Top }),
		Bottom: side(kept, func(r domain.ClipRect) int { return r.Bottom }),
		Left:   side(kept, func(r domain.ClipRect) int { return r.Left }),
		Right:  side(kept, func(r domain.ClipRect) int { return r.Right }),
	}, nil
}

// side picks the consensus value of one side of the retained buckets.
func side(buckets []Bucket, get func(domain.ClipRect) int) int {
	values := make([]int, len(buckets))
	fv := make([]float64, len(buckets))
	weights := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = get(b.Rect)
		fv[i] = float64(values[i])
		weights[i] = float64(b.Count)
	}

	mean, std := WeightedMeanStdDev(fv, weights)
	v, ok := MaxAtMost(values, Ceiling(mean, std, spread))
	if !ok {
		return values[0]
	}
	return v
}
