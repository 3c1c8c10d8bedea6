package cli

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/turtacn/Ink-Intelligence/internal/application/extraction"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/discovery"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/groundtruth"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/inkml"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/logging"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/metrics"
)

// NewWatchCmd creates the `ink watch` command: observe a directory for newly
// written sample files and print each one's feature vector as a JSON line as
// it arrives.  The command runs until interrupted.
func NewWatchCmd() *cobra.Command {
	var (
		dir             string
		groundTruthPath string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a directory and extract features from new sample files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg, log := cliCtx.Config, cliCtx.Logger

			if dir != "" {
				cfg.Watch.Dir = dir
			}
			if groundTruthPath != "" {
				cfg.GroundTruth.Path = groundTruthPath
			}
			if cfg.Watch.Dir == "" {
				return fmt.Errorf("no watch directory: set --dir or watch.dir")
			}

			var table *groundtruth.Table
			if cfg.GroundTruth.Path != "" {
				if table, err = groundtruth.Load(cfg.GroundTruth.Path); err != nil {
					return err
				}
			}

			met := metrics.NewPipeline()
			if cfg.Metrics.Enabled {
				serveMetrics(cfg.Metrics.Addr, met, log)
			}
			svc := extraction.NewService(log, met)
			enc := json.NewEncoder(cmd.OutOrStdout())

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info("watching for sample files",
				logging.String("dir", cfg.Watch.Dir),
				logging.Duration("settle_delay", cfg.Watch.SettleDelay),
			)
			watcher := discovery.NewWatcher(cfg.Watch, cfg.Discovery.FilePrefix, log)
			err = watcher.Run(ctx, func(path string) error {
				raw, err := inkml.ReadFile(path)
				if err != nil {
					return err
				}
				sample, err := svc.Extract(ctx, raw)
				if err != nil {
					return err
				}
				if table != nil {
					if sample.Label, err = table.Lookup(sample.ID); err != nil {
						return err
					}
				}
				fv := sample.Features
				return enc.Encode(extractResult{
					UI:          sample.ID,
					NumPoints:   fv.NumPoints,
					NumStrokes:  fv.NumStrokes,
					Directions:  fv.Directions,
					Curvature:   fv.Curvature,
					AspectRatio: fv.AspectRatio,
					XHistogram:  fv.XHistogram,
					YHistogram:  fv.YHistogram,
					Symbol:      sample.Label,
				})
			})
			if ctx.Err() != nil {
				// Interrupted by signal; a clean shutdown, not a failure.
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to watch for new sample files")
	cmd.Flags().StringVarP(&groundTruthPath, "ground-truth", "g", "", "ground-truth table to label samples from")
	return cmd
}
