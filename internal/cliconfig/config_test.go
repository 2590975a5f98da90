package cliconfig

import (
	"errors"
	"runtime"
	"testing"

	"github.com/bft-labs/findclip/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ThresholdX != 200 || cfg.ThresholdY != 200 {
		t.Errorf("Threshold = %d,%d, want 200,200", cfg.ThresholdX, cfg.ThresholdY)
	}
	if cfg.FrameModX != 1 || cfg.BorderModY != 1 {
		t.Errorf("modulos = %d,%d, want 1,1", cfg.FrameModX, cfg.BorderModY)
	}
	if cfg.Format != "tuple" {
		t.Errorf("Format = %v, want tuple", cfg.Format)
	}
	if cfg.Jobs != 1 {
		t.Errorf("Jobs = %v, want 1", cfg.Jobs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name:    "zero threshold",
			modify:  func(c *Config) { c.ThresholdY = 0 },
			wantErr: true,
		},
		{
			name:    "negative safety",
			modify:  func(c *Config) { c.SafetyX = -2 },
			wantErr: true,
		},
		{
			name:    "zero border modulo",
			modify:  func(c *Config) { c.BorderModX = 0 },
			wantErr: true,
		},
		{
			name:    "unknown format",
			modify:  func(c *Config) { c.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "negative jobs",
			modify:  func(c *Config) { c.Jobs = -1 },
			wantErr: true,
		},
		{
			name:   "crop format",
			modify: func(c *Config) { c.Format = "crop" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_ValidateDerivesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jobs = 0
	cfg.PlotDir = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Jobs != runtime.NumCPU() {
		t.Errorf("Jobs = %d, want %d", cfg.Jobs, runtime.NumCPU())
	}
	if cfg.PlotDir != "." {
		t.Errorf("PlotDir = %q, want .", cfg.PlotDir)
	}
}

func TestConfig_RunnerConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThresholdX, cfg.ThresholdY = 150, 250
	cfg.SafetyX, cfg.SafetyY = 2, 4
	cfg.FrameModX, cfg.FrameModY = 16, 8
	cfg.BorderModX, cfg.BorderModY = 2, 2
	cfg.Expand = true
	cfg.Jobs = 3

	rc := cfg.RunnerConfig()
	if rc.Detect.ThresholdX != 150 || rc.Detect.ThresholdY != 250 {
		t.Errorf("Detect = %+v", rc.Detect)
	}
	if rc.Align.SafetyX != 2 || rc.Align.SafetyY != 4 || rc.Align.FrameModX != 16 ||
		rc.Align.FrameModY != 8 || rc.Align.BorderModX != 2 || !rc.Align.Expand {
		t.Errorf("Align = %+v", rc.Align)
	}
	if rc.Jobs != 3 {
		t.Errorf("Jobs = %d, want 3", rc.Jobs)
	}
}
