package raster

import "errors"

// Decoding errors. All of them abort a batch.
var (
	// ErrBadMagic is returned for files that are neither P5 PGM nor a
	// supported image format.
	ErrBadMagic = errors.New("findclip: not a P5 pgm image")

	// ErrBadHeader is returned when the PGM header cannot be parsed.
	ErrBadHeader = errors.New("findclip: malformed pgm header")

	// ErrShortRead is returned when fewer samples than announced are present.
	ErrShortRead = errors.New("findclip: short read on raw data")

	// ErrUnsupportedColor is returned for images that are not grayscale.
	ErrUnsupportedColor = errors.New("findclip: image is not grayscale")
)
