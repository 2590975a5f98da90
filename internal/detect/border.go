package detect

const (
	// contentFactor times the threshold marks dispersion of picture content.
	contentFactor = 4
	// minQuiet is the number of flat lines after an active run that must be
	// exceeded before the run counts as finished.
	minQuiet = 3
	// maxCandidates bounds the sub-scans issued per axis.
	maxCandidates = 8
)

// FindBorder returns the border width on one axis scanned in dir.
func FindBorder(grad, disp []int, dir Direction, threshold int) Candidate {
	return findBorder(newAxis(grad, disp, dir), threshold)
}

// findBorder collects candidates behind every textured run of the axis and
// returns the one with the highest score.
//
// The origin itself counts as the end of a run. Scanning stops at the first
// line whose dispersion reaches picture content level.
func findBorder(a axis, threshold int) Candidate {
	cands := make([]Candidate, 0, maxCandidates)
	collect := func(start int) {
		if c := findCandidate(a, start, threshold); c.OK {
			cands = append(cands, c)
		}
	}

	collect(0)

	active := false
	runEnd := -1
	quiet := 0
	for p := 0; p < a.Len() && len(cands) < maxCandidates; p++ {
		d := a.dispersion(p)
		if d > contentFactor*threshold {
			break
		}
		if d > threshold {
			active = true
			runEnd = -1
			continue
		}
		if active {
			active = false
			runEnd = p
			quiet = 0
		}
		if runEnd < 0 {
			continue
		}
		quiet++
		if quiet > minQuiet {
			collect(runEnd)
			runEnd = -1
		}
	}

	return best(cands)
}

// best returns the highest scoring candidate, the earliest one on ties.
func best(cands []Candidate) Candidate {
	winner := none()
	for _, c := range cands {
		if !winner.OK || c.Score > winner.Score {
			winner = c
		}
	}
	return winner
}
