// Package findclip detects the black borders (letterbox and pillarbox) of a
// video from a set of decoded frames and returns the crop rect shared by the
// whole batch.
//
// Example usage:
//
//	cfg := findclip.DefaultConfig()
//	cfg.Align.FrameModX, cfg.Align.FrameModY = 16, 16
//	report, err := findclip.Run(ctx, cfg, []string{"0001.pgm", "0002.pgm"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Rect)
package findclip

import (
	"context"
	"fmt"

	"github.com/bft-labs/findclip/internal/align"
	"github.com/bft-labs/findclip/internal/app"
	"github.com/bft-labs/findclip/internal/detect"
	"github.com/bft-labs/findclip/internal/domain"
	"github.com/bft-labs/findclip/internal/ports"
)

// Config holds the detection, alignment and concurrency settings of a batch.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = app.Config

// Report is the outcome of a batch.
type Report = app.Report

// ClipRect holds the four border widths of a frame.
type ClipRect = domain.ClipRect

// Frame is one 8-bit grayscale image.
type Frame = domain.Frame

// Format selects how a rect is printed.
type Format = app.Format

const (
	FormatTuple = app.FormatTuple
	FormatCrop  = app.FormatCrop
)

// Sentinel errors returned by Run and DetectFrames.
var (
	ErrNoFrames          = domain.ErrNoFrames
	ErrNoValidFrames     = domain.ErrNoValidFrames
	ErrInvalidFrame      = domain.ErrInvalidFrame
	ErrDimensionMismatch = domain.ErrDimensionMismatch
	ErrInvalidConfig     = domain.ErrInvalidConfig
)

// DefaultConfig returns a Config with the default thresholds, no margins and
// no alignment.
func DefaultConfig() Config {
	return Config{
		Detect: detect.DefaultConfig(),
		Align:  align.DefaultConfig(),
		Jobs:   1,
	}
}

// Run decodes the frame files at paths and returns their aligned consensus
// rect. Files are PGM (P5) or grayscale PNG, JPEG, TIFF or BMP images.
func Run(ctx context.Context, cfg Config, paths []string, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return run(ctx, cfg, o.files(), paths, o)
}

// DetectFrames returns the aligned consensus rect of already decoded frames.
// Frames without a name are called frame<index> in logs and side outputs.
// Names must be unique within the batch and every Pix must hold exactly
// Width*Height samples; otherwise ErrInvalidFrame is returned.
func DetectFrames(ctx context.Context, cfg Config, frames []Frame, opts ...Option) (Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	set := make(frameSet, len(frames))
	paths := make([]string, len(frames))
	for i, f := range frames {
		name := f.Name
		if name == "" {
			name = fmt.Sprintf("frame%d", i)
		}
		if _, dup := set[name]; dup {
			return Report{}, fmt.Errorf("%w: name %q used twice", domain.ErrInvalidFrame, name)
		}
		checked, err := domain.NewFrame(name, f.Width, f.Height, f.Pix)
		if err != nil {
			return Report{}, err
		}
		set[name] = checked
		paths[i] = name
	}
	return run(ctx, cfg, set, paths, o)
}

func run(ctx context.Context, cfg Config, loader ports.FrameLoader, paths []string, o options) (Report, error) {
	if err := cfg.Detect.Validate(); err != nil {
		return Report{}, err
	}
	if err := cfg.Align.Validate(); err != nil {
		return Report{}, err
	}
	runner := app.NewRunner(cfg, loader, o.plotExporter(cfg), o.markerWriter(), o.logger)
	return runner.Run(ctx, paths)
}

// frameSet serves in-memory frames by name.
type frameSet map[string]domain.Frame

func (s frameSet) Load(ctx context.Context, name string) (domain.Frame, error) {
	f, ok := s[name]
	if !ok {
		return domain.Frame{}, fmt.Errorf("unknown frame %q", name)
	}
	return f, nil
}
