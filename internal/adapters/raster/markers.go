package raster

import "github.com/bft-labs/findclip/internal/domain"

// DrawMarkers returns a copy of f with the crop outline of r inverted.
// The original frame is left untouched.
func DrawMarkers(f domain.Frame, r domain.ClipRect) domain.Frame {
	out := f.Clone()
	if !r.Valid(f.Width, f.Height) {
		return out
	}

	left, right := r.Left, f.Width-1-r.Right
	top, bottom := r.Top, f.Height-1-r.Bottom

	invert := func(x, y int) {
		i := y*out.Width + x
		out.Pix[i] = 255 - out.Pix[i]
	}

	for y := top; y <= bottom; y++ {
		invert(left, y)
		if right != left {
			invert(right, y)
		}
	}
	for x := left + 1; x < right; x++ {
		invert(x, top)
		if bottom != top {
			invert(x, bottom)
		}
	}
	return out
}
