package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FINDCLIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setPairFromString("threshold", os.Getenv("FINDCLIP_THRESHOLD"), &cfg.ThresholdX, &cfg.ThresholdY); err != nil {
		return err
	}
	if err := s.setPairFromString("safety", os.Getenv("FINDCLIP_SAFETY"), &cfg.SafetyX, &cfg.SafetyY); err != nil {
		return err
	}
	if err := s.setPairFromString("frame-align", os.Getenv("FINDCLIP_FRAME_ALIGN"), &cfg.FrameModX, &cfg.FrameModY); err != nil {
		return err
	}
	if err := s.setPairFromString("border-align", os.Getenv("FINDCLIP_BORDER_ALIGN"), &cfg.BorderModX, &cfg.BorderModY); err != nil {
		return err
	}
	if err := s.setIntOrZeroFromString("jobs", os.Getenv("FINDCLIP_JOBS"), &cfg.Jobs); err != nil {
		return err
	}

	s.setString("plot-dir", os.Getenv("FINDCLIP_PLOT_DIR"), &cfg.PlotDir)
	s.setString("format", os.Getenv("FINDCLIP_FORMAT"), &cfg.Format)

	s.setBoolFromString("expand", os.Getenv("FINDCLIP_EXPAND"), &cfg.Expand)
	s.setBoolFromString("lumi-only", os.Getenv("FINDCLIP_LUMI_ONLY"), &cfg.LumiOnly)
	s.setBoolFromString("verbose", os.Getenv("FINDCLIP_VERBOSE"), &cfg.Verbose)
	s.setBoolFromString("plot", os.Getenv("FINDCLIP_PLOT"), &cfg.Plot)
	s.setBoolFromString("write-markers", os.Getenv("FINDCLIP_WRITE_MARKERS"), &cfg.WriteMarkers)

	return nil
}
