// Package align adds safety margins to a border rect and snaps it to the
// block sizes required by video codecs.
//
// Two modes exist per axis. With a frame modulo, the remaining picture size
// is rounded to a multiple of the frame modulo and the freed border budget is
// split between both sides in multiples of the border modulo. Without a
// frame modulo, each border is rounded to the border modulo on its own.
package align

import (
	"fmt"

	"github.com/bft-labs/findclip/internal/domain"
	"github.com/bft-labs/findclip/pkg/log"
)

// Config holds the alignment parameters. Modulo 1 disables alignment.
type Config struct {
	SafetyX int
	SafetyY int

	FrameModX int
	FrameModY int

	BorderModX int
	BorderModY int

	// Expand grows the remaining picture in frame alignment and rounds
	// borders up in border-only alignment. Otherwise the picture shrinks and
	// borders are rounded down.
	Expand bool
}

// DefaultConfig returns a Config that leaves rects untouched.
func DefaultConfig() Config {
	return Config{
		FrameModX:  1,
		FrameModY:  1,
		BorderModX: 1,
		BorderModY: 1,
	}
}

// Validate checks the alignment parameters.
func (c Config) Validate() error {
	if c.SafetyX < 0 || c.SafetyY < 0 {
		return fmt.Errorf("%w: safety margins must not be negative", domain.ErrInvalidConfig)
	}
	if c.FrameModX < 1 || c.FrameModY < 1 || c.BorderModX < 1 || c.BorderModY < 1 {
		return fmt.Errorf("%w: modulos must be at least 1", domain.ErrInvalidConfig)
	}
	return nil
}

// WarningKind classifies alignment warnings.
type WarningKind int

const (
	// BudgetNotDivisible means frame and border alignment cannot both hold.
	BudgetNotDivisible WarningKind = iota
	// NoRealExpansion means expand was requested but both borders grew.
	NoRealExpansion
	// NoRealShrink means shrink was requested but a border shrank.
	NoRealShrink
)

func (k WarningKind) String() string {
	switch k {
	case BudgetNotDivisible:
		return "frame and border alignment impossible"
	case NoRealExpansion:
		return "no real expansion"
	case NoRealShrink:
		return "no real shrink"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal alignment problem on one axis.
type Warning struct {
	Axis string
	Kind WarningKind
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Axis, w.Kind)
}

// Aligner applies a Config to consensus rects.
type Aligner struct {
	cfg    Config
	logger log.Logger
}

// New creates an aligner. A nil logger discards warnings.
func New(cfg Config, logger log.Logger) *Aligner {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Aligner{cfg: cfg, logger: logger}
}

// Align returns the margined and aligned copy of r for a width x height frame.
func (a *Aligner) Align(r domain.ClipRect, width, height int) (domain.ClipRect, []Warning) {
	var warnings []Warning

	r.Top += a.cfg.SafetyY
	r.Bottom += a.cfg.SafetyY
	r.Left += a.cfg.SafetyX
	r.Right += a.cfg.SafetyX
	a.logger.Debug("safety margins applied", log.String("rect", r.String()))

	warnings = append(warnings, a.axis("x", &r.Left, &r.Right, width, a.cfg.FrameModX, a.cfg.BorderModX)...)
	warnings = append(warnings, a.axis("y", &r.Top, &r.Bottom, height, a.cfg.FrameModY, a.cfg.BorderModY)...)

	for _, w := range warnings {
		a.logger.Warn(w.Kind.String(), log.String("axis", w.Axis))
	}
	a.logger.Debug("aligned", log.String("rect", r.String()))
	return r, warnings
}

// axis aligns the border pair (lo, hi) of one dimension.
func (a *Aligner) axis(name string, lo, hi *int, dim, fmod, bmod int) []Warning {
	if fmod != 1 {
		return alignFrame(name, lo, hi, dim, fmod, bmod, a.cfg.Expand)
	}
	if bmod != 1 {
		*lo = roundTo(*lo, bmod, a.cfg.Expand)
		*hi = roundTo(*hi, bmod, a.cfg.Expand)
	}
	return nil
}

// alignFrame rounds the remaining picture size to fmod and distributes the
// border budget in bmod blocks, in the ratio of the unaligned borders.
func alignFrame(name string, lo, hi *int, dim, fmod, bmod int, expand bool) []Warning {
	trimmed := dim - *lo - *hi
	aligned := roundTo(trimmed, fmod, expand)
	if aligned > dim {
		aligned -= fmod
	}

	budget := dim - aligned
	if budget == 0 {
		*lo, *hi = 0, 0
		return nil
	}
	if budget%bmod != 0 {
		return []Warning{{Axis: name, Kind: BudgetNotDivisible}}
	}

	blocks := budget / bmod
	loBlocks := blocks / 2
	if *lo+*hi > 0 {
		loBlocks = blocks * *lo / (*lo + *hi)
	}
	newLo := loBlocks * bmod
	newHi := (blocks - loBlocks) * bmod

	var warnings []Warning
	if expand && newLo > *lo && newHi > *hi {
		warnings = append(warnings, Warning{Axis: name, Kind: NoRealExpansion})
	}
	if !expand && (newLo < *lo || newHi < *hi) {
		warnings = append(warnings, Warning{Axis: name, Kind: NoRealShrink})
	}

	*lo, *hi = newLo, newHi
	return warnings
}

// roundTo rounds v to a multiple of m, up when up is set, down otherwise.
func roundTo(v, m int, up bool) int {
	if up {
		return (v + m - 1) / m * m
	}
	return v / m * m
}
