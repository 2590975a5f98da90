package domain

import "fmt"

// ClipRect holds the border widths to crop from each side of a frame.
// The zero value means "keep the whole frame".
type ClipRect struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Valid reports whether the rect leaves a non-empty picture in a
// width x height frame.
func (r ClipRect) Valid(width, height int) bool {
	if r.Top < 0 || r.Bottom < 0 || r.Left < 0 || r.Right < 0 {
		return false
	}
	return r.Top+r.Bottom < height && r.Left+r.Right < width
}

// ContentWidth returns the width remaining after cropping.
func (r ClipRect) ContentWidth(width int) int {
	return width - r.Left - r.Right
}

// ContentHeight returns the height remaining after cropping.
func (r ClipRect) ContentHeight(height int) int {
	return height - r.Top - r.Bottom
}

// String renders the rect in top,left,bottom,right order.
func (r ClipRect) String() string {
	return fmt.Sprintf("t=%d l=%d b=%d r=%d", r.Top, r.Left, r.Bottom, r.Right)
}
