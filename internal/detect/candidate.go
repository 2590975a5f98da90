package detect

import (
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultThreshold is the dispersion above which a line counts as textured.
	DefaultThreshold = 200

	// onsetBackoff is the margin kept in front of the first textured line.
	onsetBackoff = 4
	// windowSize caps the number of gradient samples analysed per candidate.
	windowSize = 32
	// minBorder is the smallest border reported for a textured axis start.
	minBorder = 8
	// minFlat is the number of flat lines a short border at the origin needs.
	minFlat = 3
)

// Candidate is a possible border position with a confidence score.
// OK is false when no candidate was found; Pos 0 with OK true is a valid
// "no border" answer.
type Candidate struct {
	Pos   int
	Score float64
	OK    bool
}

func none() Candidate {
	return Candidate{}
}

// FindCandidate locates one border candidate on the gradient/dispersion pair
// scanning in dir, starting at position start.
func FindCandidate(grad, disp []int, start int, dir Direction, threshold int) Candidate {
	return findCandidate(newAxis(grad, disp, dir), start, threshold)
}

// findCandidate looks for the gradient spike that marks the transition from a
// flat border into textured content.
//
// The window starts a few lines before the first textured line. A first pass
// over its gradient values estimates mean and stddev and drops the outliers;
// the remaining baseline defines a spike threshold. The candidate is the
// first position after the spike where the gradient falls back under a
// relaxed threshold.
func findCandidate(a axis, start, threshold int) Candidate {
	n := a.Len()
	if start < 0 || start >= n {
		return none()
	}

	onset := -1
	for p := start; p < n; p++ {
		if a.dispersion(p) > threshold {
			onset = p
			break
		}
	}
	if onset < 0 {
		return none()
	}

	ws := onset - onsetBackoff
	if ws < start {
		ws = start
	}
	we := ws + windowSize
	if we > n {
		we = n
	}

	window := make([]float64, 0, we-ws)
	for p := ws; p < we; p++ {
		window = append(window, float64(a.gradient(p)))
	}
	mean, sd := stat.PopMeanStdDev(window, nil)
	outlier := mean + 2*sd

	baseline := make([]float64, 0, len(window))
	for _, v := range window {
		if v < outlier {
			baseline = append(baseline, v)
		}
	}
	if len(baseline) == 0 {
		return none()
	}
	mean, sd = stat.PopMeanStdDev(baseline, nil)
	limit := 2*mean + 6*sd
	relaxed := mean + 3*sd

	atOrigin := ws == 0
	spike := false
	flat := 0
	stop := we
	for p := ws; p < we; p++ {
		if a.dispersion(p) <= threshold {
			flat++
		}
		if window[p-ws] > limit {
			limit = relaxed
			spike = true
			continue
		}
		if spike {
			stop = p
			break
		}
	}

	if !spike {
		// the edge, if any, lies deeper than the window
		if atOrigin {
			return Candidate{Pos: 0, Score: limit, OK: true}
		}
		return none()
	}
	// texture right at the origin is not a border
	if atOrigin && stop < minBorder && flat < minFlat {
		return Candidate{Pos: 0, Score: limit, OK: true}
	}
	return Candidate{Pos: stop, Score: limit, OK: true}
}
