package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/bft-labs/findclip/internal/align"
	"github.com/bft-labs/findclip/internal/app"
	"github.com/bft-labs/findclip/internal/detect"
	"github.com/bft-labs/findclip/internal/domain"
)

// Config holds CLI configuration for findclip.
type Config struct {
	ThresholdX int
	ThresholdY int

	SafetyX int
	SafetyY int

	FrameModX int
	FrameModY int

	BorderModX int
	BorderModY int

	Expand   bool
	LumiOnly bool
	Verbose  bool

	Plot         bool
	PlotDir      string
	WriteMarkers bool

	Format string
	Jobs   int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ThresholdX: detect.DefaultThreshold,
		ThresholdY: detect.DefaultThreshold,
		FrameModX:  1,
		FrameModY:  1,
		BorderModX: 1,
		BorderModY: 1,
		PlotDir:    ".",
		Format:     string(app.FormatTuple),
		Jobs:       1,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if err := c.DetectConfig().Validate(); err != nil {
		return err
	}
	if err := c.AlignConfig().Validate(); err != nil {
		return err
	}
	if _, err := app.ParseFormat(c.Format); err != nil {
		return err
	}

	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative", domain.ErrInvalidConfig)
	}
	if c.Jobs == 0 {
		c.Jobs = runtime.NumCPU()
	}
	if c.PlotDir == "" {
		c.PlotDir = "."
	}
	return nil
}

// DetectConfig returns the per-frame detection parameters.
func (c Config) DetectConfig() detect.Config {
	return detect.Config{ThresholdX: c.ThresholdX, ThresholdY: c.ThresholdY}
}

// AlignConfig returns the margin and alignment parameters.
func (c Config) AlignConfig() align.Config {
	return align.Config{
		SafetyX:    c.SafetyX,
		SafetyY:    c.SafetyY,
		FrameModX:  c.FrameModX,
		FrameModY:  c.FrameModY,
		BorderModX: c.BorderModX,
		BorderModY: c.BorderModY,
		Expand:     c.Expand,
	}
}

// RunnerConfig returns the batch configuration.
func (c Config) RunnerConfig() app.Config {
	return app.Config{
		Detect: c.DetectConfig(),
		Align:  c.AlignConfig(),
		Jobs:   c.Jobs,
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer if not nil and flag not changed.
// Unlike setInt it accepts zero.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setIntOrZeroFromString is setIntFromString for settings where zero has a
// meaning of its own. Negative values are stored and left to Validate.
func (s *configSetter) setIntOrZeroFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setPairFromString parses an "x[,y]" string and sets both destinations.
// Zero is accepted, so margins can be reset from the environment.
func (s *configSetter) setPairFromString(flag, value string, x, y *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	px, py, err := ParsePair(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*x, *y = px, py
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
