package detect

import (
	"fmt"

	"github.com/bft-labs/findclip/internal/domain"
	"github.com/bft-labs/findclip/internal/profile"
)

// Config holds the detection thresholds.
// ThresholdX applies to columns (left/right), ThresholdY to rows (top/bottom).
type Config struct {
	ThresholdX int
	ThresholdY int
}

// DefaultConfig returns a Config with the default dispersion thresholds.
func DefaultConfig() Config {
	return Config{
		ThresholdX: DefaultThreshold,
		ThresholdY: DefaultThreshold,
	}
}

// Validate checks the thresholds.
func (c Config) Validate() error {
	if c.ThresholdX <= 0 || c.ThresholdY <= 0 {
		return fmt.Errorf("%w: thresholds must be positive, got %d,%d", domain.ErrInvalidConfig, c.ThresholdX, c.ThresholdY)
	}
	return nil
}

// Result is the outcome of detecting borders on one frame.
type Result struct {
	// Rect is meaningful only when Valid is true
	Rect  domain.ClipRect
	Valid bool

	// Reason explains why the frame was rejected
	Reason string

	Top, Bottom, Left, Right Candidate

	// Profiles and gradients used for the scans, kept for diagnostics
	Rows           profile.Profile
	Columns        profile.Profile
	RowGradient    []int
	ColumnGradient []int
}

// Detector finds the border rect of single frames.
// A Detector holds no per-frame state and is safe for concurrent use.
type Detector struct {
	cfg Config
}

// New creates a detector with the given configuration.
func New(cfg Config) *Detector {
	return &Detector{cfg: cfg}
}

// Detect scans the four sides of f.
func (d *Detector) Detect(f domain.Frame) Result {
	var res Result
	if f.Width < 2 || f.Height < 2 {
		res.Reason = fmt.Sprintf("frame too small (%dx%d)", f.Width, f.Height)
		return res
	}

	res.Rows = profile.Rows(f)
	res.Columns = profile.Columns(f)
	res.RowGradient = profile.Gradient(res.Rows.Mean)
	res.ColumnGradient = profile.Gradient(res.Columns.Mean)

	res.Top = FindBorder(res.RowGradient, res.Rows.Dispersion, Forward, d.cfg.ThresholdY)
	res.Bottom = FindBorder(res.RowGradient, res.Rows.Dispersion, Backward, d.cfg.ThresholdY)
	res.Left = FindBorder(res.ColumnGradient, res.Columns.Dispersion, Forward, d.cfg.ThresholdX)
	res.Right = FindBorder(res.ColumnGradient, res.Columns.Dispersion, Backward, d.cfg.ThresholdX)

	switch {
	case !res.Top.OK:
		res.Reason = "no top border"
		return res
	case !res.Bottom.OK:
		res.Reason = "no bottom border"
		return res
	case !res.Left.OK:
		res.Reason = "no left border"
		return res
	case !res.Right.OK:
		res.Reason = "no right border"
		return res
	}

	res.Rect = domain.ClipRect{
		Top:    res.Top.Pos,
		Bottom: res.Bottom.Pos,
		Left:   res.Left.Pos,
		Right:  res.Right.Pos,
	}

	if res.Rect == (domain.ClipRect{}) {
		res.Reason = "no border found"
		return res
	}

	// at least a quarter of each dimension must remain
	if 4*res.Rect.ContentHeight(f.Height) < f.Height {
		res.Reason = fmt.Sprintf("vertical span %d below quarter of %d", res.Rect.ContentHeight(f.Height), f.Height)
		return res
	}
	if 4*res.Rect.ContentWidth(f.Width) < f.Width {
		res.Reason = fmt.Sprintf("horizontal span %d below quarter of %d", res.Rect.ContentWidth(f.Width), f.Width)
		return res
	}

	res.Valid = true
	return res
}
