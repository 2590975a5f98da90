// Package profile computes per-line statistics of a grayscale frame.
//
// Every row and every column is reduced to a scaled mean and a scaled
// population standard deviation ("dispersion"). Both are multiplied by 100
// and derived from integer pixel sums, so flat black borders produce a
// dispersion of exactly zero.
package profile

import (
	"math"

	"github.com/bft-labs/findclip/internal/domain"
)

// Scale is the fixed-point factor applied to means and dispersions.
const Scale = 100

// Profile holds the per-line statistics of one axis.
// Mean and Dispersion have one entry per row (or column).
type Profile struct {
	Mean       []int
	Dispersion []int
}

// Len returns the number of lines in the profile.
func (p Profile) Len() int {
	return len(p.Mean)
}

// Rows computes the profile of every row of f.
func Rows(f domain.Frame) Profile {
	p := newProfile(f.Height)
	n := int64(f.Width)
	for y := 0; y < f.Height; y++ {
		var sum, sumSq int64
		for _, v := range f.Row(y) {
			sum += int64(v)
			sumSq += int64(v) * int64(v)
		}
		p.Mean[y], p.Dispersion[y] = scaled(sum, sumSq, n)
	}
	return p
}

// Columns computes the profile of every column of f.
func Columns(f domain.Frame) Profile {
	p := newProfile(f.Width)
	sums := make([]int64, f.Width)
	sumSqs := make([]int64, f.Width)
	for y := 0; y < f.Height; y++ {
		for x, v := range f.Row(y) {
			sums[x] += int64(v)
			sumSqs[x] += int64(v) * int64(v)
		}
	}
	n := int64(f.Height)
	for x := 0; x < f.Width; x++ {
		p.Mean[x], p.Dispersion[x] = scaled(sums[x], sumSqs[x], n)
	}
	return p
}

func newProfile(n int) Profile {
	return Profile{
		Mean:       make([]int, n),
		Dispersion: make([]int, n),
	}
}

// scaled returns sum*100/n and stddev*100 computed as sqrt(n*sumSq-sum^2)*100/n.
func scaled(sum, sumSq, n int64) (mean, dispersion int) {
	mean = int(sum * Scale / n)
	v := n*sumSq - sum*sum
	if v < 0 {
		v = 0
	}
	dispersion = int(math.Sqrt(float64(v)) * Scale / float64(n))
	return mean, dispersion
}

// Gradient returns the first absolute difference of a mean profile.
// The result has one entry less than the input and never aliases it.
func Gradient(mean []int) []int {
	if len(mean) < 2 {
		return []int{}
	}
	out := make([]int, len(mean)-1)
	for i := range out {
		d := mean[i] - mean[i+1]
		if d < 0 {
			d = -d
		}
		out[i] = d
	}
	return out
}
