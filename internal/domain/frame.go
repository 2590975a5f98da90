package domain

import "fmt"

// Frame is a single 8-bit grayscale raster.
// Pixels are stored row-major; Pix has exactly Width*Height entries.
// A Frame is treated as immutable once constructed.
type Frame struct {
	// Name identifies the frame source (usually the file path)
	Name string

	// Width is the number of columns
	Width int

	// Height is the number of rows
	Height int

	// Pix holds the samples, row y starting at y*Width
	Pix []uint8
}

// NewFrame creates a frame and checks that the buffer matches the dimensions.
func NewFrame(name string, width, height int, pix []uint8) (Frame, error) {
	if width <= 0 || height <= 0 {
		return Frame{}, fmt.Errorf("%w: %q has size %dx%d", ErrInvalidFrame, name, width, height)
	}
	if len(pix) != width*height {
		return Frame{}, fmt.Errorf("%w: %q has %d samples, want %d", ErrInvalidFrame, name, len(pix), width*height)
	}
	return Frame{Name: name, Width: width, Height: height, Pix: pix}, nil
}

// At returns the sample at column x, row y.
func (f Frame) At(x, y int) uint8 {
	return f.Pix[y*f.Width+x]
}

// Row returns the samples of row y. The slice aliases Pix.
func (f Frame) Row(y int) []uint8 {
	return f.Pix[y*f.Width : (y+1)*f.Width]
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	pix := make([]uint8, len(f.Pix))
	copy(pix, f.Pix)
	return Frame{Name: f.Name, Width: f.Width, Height: f.Height, Pix: pix}
}
