// Package synth generates synthetic letterboxed frames.
//
// The picture area is a checkerboard overlaid with noise arranged in 2x2
// blocks of opposite sign. When the picture width and height are even, every
// row and column of the picture has the same mean, so the only mean gradient
// spikes are at the border edges while the dispersion stays high.
package synth

import (
	"math/rand"

	"github.com/bft-labs/findclip/internal/domain"
)

const (
	// BorderLevel is the sample value of the flat borders.
	BorderLevel = 16
	dark        = 60
	bright      = 180
	maxNoise    = 40
)

// Options tune the generated picture.
type Options struct {
	// Seed drives the block noise
	Seed int64
	// Jitter adds independent noise in [-Jitter, Jitter] to picture samples.
	// Non-zero jitter breaks the constant row/column means.
	Jitter int
}

// Letterbox builds a w x h frame with flat borders of the widths in r.
func Letterbox(w, h int, r domain.ClipRect, opts Options) domain.Frame {
	rng := rand.New(rand.NewSource(opts.Seed))
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = BorderLevel
	}

	bw := (w - r.Left - r.Right + 1) / 2
	bh := (h - r.Top - r.Bottom + 1) / 2
	amp := make([]int, bw*bh)
	for i := range amp {
		amp[i] = rng.Intn(maxNoise + 1)
	}

	for y := r.Top; y < h-r.Bottom; y++ {
		for x := r.Left; x < w-r.Right; x++ {
			cx, cy := x-r.Left, y-r.Top
			v := dark
			if (cx+cy)&1 == 1 {
				v = bright
			}
			a := amp[(cy/2)*bw+cx/2]
			if cx&1 == cy&1 {
				v += a
			} else {
				v -= a
			}
			if opts.Jitter > 0 {
				v += rng.Intn(2*opts.Jitter+1) - opts.Jitter
			}
			pix[y*w+x] = clamp(v)
		}
	}

	return domain.Frame{Name: "synthetic", Width: w, Height: h, Pix: pix}
}

// MirrorX flips a frame horizontally.
func MirrorX(f domain.Frame) domain.Frame {
	out := f.Clone()
	for y := 0; y < f.Height; y++ {
		row := out.Row(y)
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return out
}

// MirrorY flips a frame vertically.
func MirrorY(f domain.Frame) domain.Frame {
	out := f.Clone()
	for y := 0; y < f.Height/2; y++ {
		top, bottom := out.Row(y), out.Row(f.Height-1-y)
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
	return out
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
