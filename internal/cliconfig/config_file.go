package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with one key per axis. Booleans and jobs are
// pointers so an absent key leaves the current value alone.
type FileConfig struct {
	ThresholdX   int    `toml:"threshold_x"`
	ThresholdY   int    `toml:"threshold_y"`
	SafetyX      int    `toml:"safety_x"`
	SafetyY      int    `toml:"safety_y"`
	FrameModX    int    `toml:"frame_align_x"`
	FrameModY    int    `toml:"frame_align_y"`
	BorderModX   int    `toml:"border_align_x"`
	BorderModY   int    `toml:"border_align_y"`
	Expand       *bool  `toml:"expand"`
	LumiOnly     *bool  `toml:"lumi_only"`
	Verbose      *bool  `toml:"verbose"`
	Plot         *bool  `toml:"plot"`
	PlotDir      string `toml:"plot_dir"`
	WriteMarkers *bool  `toml:"write_markers"`
	Format       string `toml:"format"`
	Jobs         *int   `toml:"jobs"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.findclip/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".findclip", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setInt("threshold", fc.ThresholdX, &cfg.ThresholdX)
	s.setInt("threshold", fc.ThresholdY, &cfg.ThresholdY)
	s.setInt("safety", fc.SafetyX, &cfg.SafetyX)
	s.setInt("safety", fc.SafetyY, &cfg.SafetyY)
	s.setInt("frame-align", fc.FrameModX, &cfg.FrameModX)
	s.setInt("frame-align", fc.FrameModY, &cfg.FrameModY)
	s.setInt("border-align", fc.BorderModX, &cfg.BorderModX)
	s.setInt("border-align", fc.BorderModY, &cfg.BorderModY)
	s.setIntPtr("jobs", fc.Jobs, &cfg.Jobs)

	s.setString("plot-dir", fc.PlotDir, &cfg.PlotDir)
	s.setString("format", fc.Format, &cfg.Format)

	s.setBool("expand", fc.Expand, &cfg.Expand)
	s.setBool("lumi-only", fc.LumiOnly, &cfg.LumiOnly)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)
	s.setBool("plot", fc.Plot, &cfg.Plot)
	s.setBool("write-markers", fc.WriteMarkers, &cfg.WriteMarkers)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
