// Package app runs a detection batch: it loads every frame, detects its
// borders, aggregates the accepted rects and aligns the consensus.
package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/findclip/internal/align"
	"github.com/bft-labs/findclip/internal/consensus"
	"github.com/bft-labs/findclip/internal/detect"
	"github.com/bft-labs/findclip/internal/domain"
	"github.com/bft-labs/findclip/internal/ports"
	"github.com/bft-labs/findclip/internal/profile"
	"github.com/bft-labs/findclip/pkg/log"
)

// Config contains configuration for one batch.
type Config struct {
	Detect detect.Config
	Align  align.Config

	// Jobs bounds the number of frames processed concurrently.
	// Values below 1 mean sequential processing.
	Jobs int
}

// Report is the outcome of a batch.
type Report struct {
	// Rect is the aligned rect to crop
	Rect domain.ClipRect

	// Consensus is the aggregated rect before margins and alignment
	Consensus domain.ClipRect

	Width  int
	Height int

	Frames   int
	Accepted int

	Warnings []align.Warning
}

// Runner processes batches of frames.
type Runner struct {
	config   Config
	loader   ports.FrameLoader
	plots    ports.PlotExporter
	markers  ports.MarkerWriter
	logger   log.Logger
	detector *detect.Detector
	aligner  *align.Aligner
}

// NewRunner creates a runner. plots and markers may be nil to disable the
// corresponding side outputs.
func NewRunner(
	config Config,
	loader ports.FrameLoader,
	plots ports.PlotExporter,
	markers ports.MarkerWriter,
	logger log.Logger,
) *Runner {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Runner{
		config:   config,
		loader:   loader,
		plots:    plots,
		markers:  markers,
		logger:   logger,
		detector: detect.New(config.Detect),
		aligner:  align.New(config.Align, logger),
	}
}

// Run processes the frames at paths and returns the aligned consensus rect.
func (r *Runner) Run(ctx context.Context, paths []string) (Report, error) {
	if len(paths) == 0 {
		return Report{}, domain.ErrNoFrames
	}

	outcomes, err := r.detectAll(ctx, paths)
	if err != nil {
		return Report{}, err
	}

	width, height := outcomes[0].width, outcomes[0].height
	data := NewDataset()
	for _, o := range outcomes {
		if o.width != width || o.height != height {
			return Report{}, fmt.Errorf("%w: %s is %dx%d, expected %dx%d",
				domain.ErrDimensionMismatch, o.name, o.width, o.height, width, height)
		}
		data.Add(o.res)
	}

	r.logger.Info("frames analysed",
		log.Int("frames", len(outcomes)),
		log.Int("accepted", data.Size()),
		log.Int("rejected", data.Rejected()))

	if data.Empty() {
		return Report{}, domain.ErrNoValidFrames
	}

	rect, err := consensus.Aggregate(data.Rects())
	if err != nil {
		return Report{}, err
	}
	r.logger.Debug("consensus", log.String("rect", rect.String()))
	rect = r.consistent(rect, width, height)

	aligned, warnings := r.aligner.Align(rect, width, height)

	report := Report{
		Rect:      aligned,
		Consensus: rect,
		Width:     width,
		Height:    height,
		Frames:    len(outcomes),
		Accepted:  data.Size(),
		Warnings:  warnings,
	}

	if r.markers != nil {
		if err := r.writeMarkers(ctx, paths, aligned); err != nil {
			return report, err
		}
	}
	return report, nil
}

// detectAll loads and scores every frame, keeping input order.
func (r *Runner) detectAll(ctx context.Context, paths []string) ([]outcome, error) {
	outcomes := make([]outcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	jobs := r.config.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			f, err := r.loader.Load(gctx, path)
			if err != nil {
				return fmt.Errorf("load frame: %w", err)
			}
			res := r.detector.Detect(f)
			r.logFrame(path, f, res)
			r.plot(gctx, path, res)

			// profiles are per-frame; only the candidates outlive the worker
			res.Rows, res.Columns = profile.Profile{}, profile.Profile{}
			res.RowGradient, res.ColumnGradient = nil, nil
			outcomes[i] = outcome{name: path, width: f.Width, height: f.Height, res: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (r *Runner) logFrame(path string, f domain.Frame, res detect.Result) {
	if !res.Valid {
		r.logger.Debug("no clip region found",
			log.String("frame", path),
			log.String("reason", res.Reason))
		return
	}
	r.logger.Debug("frame clip",
		log.String("frame", path),
		log.Int("width", f.Width),
		log.Int("height", f.Height),
		log.Int("top", res.Rect.Top),
		log.Int("left", res.Rect.Left),
		log.Int("bottom", res.Rect.Bottom),
		log.Int("right", res.Rect.Right))
}

func (r *Runner) plot(ctx context.Context, path string, res detect.Result) {
	if r.plots == nil {
		return
	}
	files, err := r.plots.Export(ctx, path, res)
	if err != nil {
		r.logger.Warn("plot export failed", log.String("frame", path), log.Err(err))
		return
	}
	r.logger.Debug("plot written", log.String("frame", path), log.Int("files", len(files)))
}

// consistent drops an axis whose borders would leave no picture.
func (r *Runner) consistent(rect domain.ClipRect, width, height int) domain.ClipRect {
	if rect.Top+rect.Bottom >= height {
		r.logger.Warn("inconsistency along y, ignoring values", log.String("rect", rect.String()))
		rect.Top, rect.Bottom = 0, 0
	}
	if rect.Left+rect.Right >= width {
		r.logger.Warn("inconsistency along x, ignoring values", log.String("rect", rect.String()))
		rect.Left, rect.Right = 0, 0
	}
	return rect
}

// writeMarkers reloads every frame and stores it with the final outline.
func (r *Runner) writeMarkers(ctx context.Context, paths []string, rect domain.ClipRect) error {
	for _, path := range paths {
		f, err := r.loader.Load(ctx, path)
		if err != nil {
			return fmt.Errorf("load frame: %w", err)
		}
		out, err := r.markers.WriteMarkers(f, rect)
		if err != nil {
			return fmt.Errorf("write markers: %w", err)
		}
		r.logger.Debug("markers written", log.String("file", out))
	}
	return nil
}
