package domain

import "errors"

// Domain errors represent error conditions in the findclip domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrNoFrames is returned when a batch contains no input frames.
	ErrNoFrames = errors.New("findclip: no input frames")

	// ErrNoValidFrames is returned when no frame produced a usable border.
	ErrNoValidFrames = errors.New("findclip: no valid frames")

	// ErrInvalidFrame is returned when a frame buffer does not match its size
	// or a frame name is used twice in one batch.
	ErrInvalidFrame = errors.New("findclip: invalid frame")

	// ErrDimensionMismatch is returned when frames of one batch differ in size.
	ErrDimensionMismatch = errors.New("findclip: frame dimensions differ")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("findclip: invalid configuration")
)
