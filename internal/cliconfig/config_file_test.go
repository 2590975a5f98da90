package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	eight, zero := 8, 0

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		expected   func() Config
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				ThresholdX:   120,
				ThresholdY:   180,
				SafetyX:      2,
				FrameModX:    16,
				FrameModY:    16,
				BorderModY:   2,
				Expand:       &trueVal,
				LumiOnly:     &trueVal,
				PlotDir:      "/plots",
				WriteMarkers: &trueVal,
				Format:       "crop",
				Jobs:         &eight,
			},
			changed: map[string]bool{},
			expected: func() Config {
				c := DefaultConfig()
				c.ThresholdX, c.ThresholdY = 120, 180
				c.SafetyX = 2
				c.FrameModX, c.FrameModY = 16, 16
				c.BorderModY = 2
				c.Expand, c.LumiOnly, c.WriteMarkers = true, true, true
				c.PlotDir = "/plots"
				c.Format = "crop"
				c.Jobs = 8
				return c
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				ThresholdX: 120,
				ThresholdY: 120,
				Format:     "crop",
				Plot:       &trueVal,
			},
			changed: map[string]bool{"threshold": true, "plot": true},
			expected: func() Config {
				c := DefaultConfig()
				c.Format = "crop"
				return c
			},
		},
		{
			name:       "zero jobs means one per CPU",
			fileConfig: FileConfig{Jobs: &zero},
			changed:    map[string]bool{},
			expected: func() Config {
				c := DefaultConfig()
				c.Jobs = 0
				return c
			},
		},
		{
			name:       "zero jobs respects changed flag",
			fileConfig: FileConfig{Jobs: &zero},
			changed:    map[string]bool{"jobs": true},
			expected:   DefaultConfig,
		},
		{
			name:       "empty file keeps defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			expected:   DefaultConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if want := tt.expected(); cfg != want {
				t.Errorf("config = %+v, want %+v", cfg, want)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
threshold_x = 150
threshold_y = 250
frame_align_x = 16
border_align_x = 2
expand = true
format = "crop"
jobs = 4
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.ThresholdX != 150 || fc.ThresholdY != 250 {
		t.Errorf("Threshold = %d,%d, want 150,250", fc.ThresholdX, fc.ThresholdY)
	}
	if fc.FrameModX != 16 || fc.BorderModX != 2 {
		t.Errorf("FrameModX, BorderModX = %d,%d, want 16,2", fc.FrameModX, fc.BorderModX)
	}
	if fc.Expand == nil || !*fc.Expand {
		t.Errorf("Expand = %v, want true", fc.Expand)
	}
	if fc.LumiOnly != nil {
		t.Errorf("LumiOnly = %v, want nil", *fc.LumiOnly)
	}
	if fc.Format != "crop" || fc.Jobs == nil || *fc.Jobs != 4 {
		t.Errorf("Format, Jobs = %q,%v", fc.Format, fc.Jobs)
	}
}

func TestLoadFileConfig_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(tmpDir, "missing.toml")); err == nil {
		t.Error("LoadFileConfig() on missing file expected error")
	}

	bad := filepath.Join(tmpDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("threshold_x = \"high\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("LoadFileConfig() on mistyped value expected error")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := DefaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join(".findclip", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %q", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	p := filepath.Join(tmpDir, "x")

	if FileExists(p) {
		t.Error("FileExists() = true for missing file")
	}
	if err := os.WriteFile(p, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(p) {
		t.Error("FileExists() = false for existing file")
	}
}
