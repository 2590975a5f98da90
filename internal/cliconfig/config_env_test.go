package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		expected func() Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"FINDCLIP_THRESHOLD":     "150,250",
				"FINDCLIP_SAFETY":        "2",
				"FINDCLIP_FRAME_ALIGN":   "16,8",
				"FINDCLIP_BORDER_ALIGN":  "2",
				"FINDCLIP_JOBS":          "4",
				"FINDCLIP_PLOT_DIR":      "/tmp/plots",
				"FINDCLIP_FORMAT":        "crop",
				"FINDCLIP_EXPAND":        "true",
				"FINDCLIP_LUMI_ONLY":     "1",
				"FINDCLIP_VERBOSE":       "true",
				"FINDCLIP_PLOT":          "1",
				"FINDCLIP_WRITE_MARKERS": "true",
			},
			changed: map[string]bool{},
			expected: func() Config {
				c := DefaultConfig()
				c.ThresholdX, c.ThresholdY = 150, 250
				c.SafetyX, c.SafetyY = 2, 2
				c.FrameModX, c.FrameModY = 16, 8
				c.BorderModX, c.BorderModY = 2, 2
				c.Jobs = 4
				c.PlotDir = "/tmp/plots"
				c.Format = "crop"
				c.Expand, c.LumiOnly, c.Verbose, c.Plot, c.WriteMarkers = true, true, true, true, true
				return c
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"FINDCLIP_THRESHOLD": "150",
				"FINDCLIP_SAFETY":    "4",
			},
			changed: map[string]bool{"threshold": true},
			expected: func() Config {
				c := DefaultConfig()
				c.SafetyX, c.SafetyY = 4, 4
				return c
			},
		},
		{
			name: "zero jobs means one per CPU",
			envVars: map[string]string{
				"FINDCLIP_JOBS": "0",
			},
			changed: map[string]bool{},
			expected: func() Config {
				c := DefaultConfig()
				c.Jobs = 0
				return c
			},
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"FINDCLIP_EXPAND": "false",
			},
			changed:  map[string]bool{},
			expected: DefaultConfig,
		},
		{
			name: "returns error for invalid pair",
			envVars: map[string]string{
				"FINDCLIP_THRESHOLD": "high",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "returns error for invalid int",
			envVars: map[string]string{
				"FINDCLIP_JOBS": "many",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig()
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if want := tt.expected(); cfg != want {
				t.Errorf("config = %+v, want %+v", cfg, want)
			}
		})
	}
}
