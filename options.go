package findclip

import (
	"github.com/bft-labs/findclip/internal/adapters/plot"
	"github.com/bft-labs/findclip/internal/adapters/raster"
	"github.com/bft-labs/findclip/internal/ports"
	"github.com/bft-labs/findclip/pkg/log"
)

// Option configures optional behavior of Run and DetectFrames.
type Option func(*options)

// options holds the optional configuration of a batch.
type options struct {
	logger   log.Logger
	lumiOnly bool

	plot       bool
	plotDir    string
	plotRender bool

	markers bool
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger:  log.NewNoopLogger(),
		plotDir: ".",
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLumiOnly makes the PGM decoder keep only the upper two thirds of each
// image, the luma plane of a YUV 4:2:0 dump.
func WithLumiOnly(enabled bool) Option {
	return func(o *options) {
		o.lumiOnly = enabled
	}
}

// WithPlots writes gnuplot data and scripts of every frame into dir.
// With render set, gnuplot is run on the scripts when it is installed.
func WithPlots(dir string, render bool) Option {
	return func(o *options) {
		o.plot = true
		o.plotDir = dir
		o.plotRender = render
	}
}

// WithMarkers writes a copy of every input frame with the final rect drawn
// on it, named <base>-m.pgm next to the frame.
func WithMarkers() Option {
	return func(o *options) {
		o.markers = true
	}
}

func (o options) files() raster.Files {
	return raster.Files{Options: raster.Options{LumiOnly: o.lumiOnly}}
}

func (o options) plotExporter(cfg Config) ports.PlotExporter {
	if !o.plot {
		return nil
	}
	return &plot.Exporter{
		Dir:        o.plotDir,
		Render:     o.plotRender,
		ThresholdX: cfg.Detect.ThresholdX,
		ThresholdY: cfg.Detect.ThresholdY,
	}
}

func (o options) markerWriter() ports.MarkerWriter {
	if !o.markers {
		return nil
	}
	return o.files()
}
