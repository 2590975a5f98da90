package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/findclip"
	"github.com/bft-labs/findclip/internal/app"
	"github.com/bft-labs/findclip/internal/cliconfig"
	"github.com/bft-labs/findclip/pkg/log"
)

const helpDescription = `
Find the black borders (letterbox and pillarbox) shared by a set of video
frames and print the crop rect.

Frames are 8-bit PGM (P5) files, or grayscale PNG, JPEG, TIFF or BMP images,
all of the same size. Each frame is scanned on its own, then the per-frame
rects are merged so that a few dark scenes or logos do not skew the result.
The rect is printed as top,left,bottom,right (or w:h:x:y with --format crop).

Options taking x[,y] accept a single value for both axes.
`

var exampleUsage = strings.TrimSpace(`
  findclip frames/*.pgm
  findclip -f 16 -s 2 --format crop frames/*.png
  findclip -y -t 150,250 -v dump/*.yuv
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := log.NewZerologAdapter(os.Stderr, false)

	root := &cobra.Command{
		Use:           "findclip [flags] frame...",
		Short:         "Detect letterbox and pillarbox borders in video frames",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.findclip/config.toml), then apply flag overrides
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// Environment variables (FINDCLIP_*) override the file, flags override both
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			format, err := app.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			logger = log.NewZerologAdapter(os.Stderr, cfg.Verbose)
			logger.Debug("configuration", log.Any("config", cfg))

			opts := []findclip.Option{
				findclip.WithLogger(logger),
				findclip.WithLumiOnly(cfg.LumiOnly),
			}
			if cfg.Plot {
				opts = append(opts, findclip.WithPlots(cfg.PlotDir, true))
			}
			if cfg.WriteMarkers {
				opts = append(opts, findclip.WithMarkers())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := findclip.Run(ctx, cfg.RunnerConfig(), args, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), format.Render(report.Rect, report.Width, report.Height))
			return nil
		},
	}

	// Flags
	flags := root.Flags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.findclip/config.toml)")
	flags.VarP(cliconfig.NewPairValue(&cfg.ThresholdX, &cfg.ThresholdY), "threshold", "t", "dispersion threshold of textured lines")
	flags.VarP(cliconfig.NewPairValue(&cfg.SafetyX, &cfg.SafetyY), "safety", "s", "safety margin added to each border")
	flags.VarP(cliconfig.NewPairValue(&cfg.FrameModX, &cfg.FrameModY), "frame-align", "f", "align the remaining picture size to this modulo")
	flags.VarP(cliconfig.NewPairValue(&cfg.BorderModX, &cfg.BorderModY), "border-align", "b", "align each border to this modulo")
	flags.BoolVarP(&cfg.Expand, "expand", "e", cfg.Expand, "expand the picture when aligning (default: shrink)")
	flags.BoolVarP(&cfg.LumiOnly, "lumi-only", "y", cfg.LumiOnly, "PGM input holds YUV 4:2:0, use the luma plane only")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log per-frame results")
	flags.BoolVarP(&cfg.Plot, "plot", "p", cfg.Plot, "write gnuplot data and scripts for every frame")
	flags.StringVar(&cfg.PlotDir, "plot-dir", cfg.PlotDir, "directory for plot files")
	flags.BoolVarP(&cfg.WriteMarkers, "write-markers", "w", cfg.WriteMarkers, "write <frame>-m.pgm with the result outlined")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "output format: tuple or crop")
	flags.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "frames processed in parallel (0: one per CPU)")

	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error("findclip failed", log.Err(err))
		os.Exit(1)
	}
}
