package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/turtacn/Ink-Intelligence/internal/application/extraction"
	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/dataset"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/discovery"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/groundtruth"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/inkml"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/logging"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/metrics"
)

// NewDatasetCmd creates the `ink dataset` command: discover every symbol file
// under the training root, extract features on the worker pool, attach
// ground-truth labels, and write the assembled CSV dataset.
func NewDatasetCmd() *cobra.Command {
	var (
		root            string
		groundTruthPath string
		outputPath      string
		workers         int
	)

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Build the labeled feature dataset from a CROHME training root",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg, log := cliCtx.Config, cliCtx.Logger

			// Command-line flags take precedence over the config file.
			if root != "" {
				cfg.Discovery.Root = root
			}
			if groundTruthPath != "" {
				cfg.GroundTruth.Path = groundTruthPath
			}
			if outputPath != "" {
				cfg.Dataset.OutputPath = outputPath
			}
			if workers > 0 {
				cfg.Extraction.Workers = workers
			}
			if cfg.GroundTruth.Path == "" {
				return fmt.Errorf("no ground-truth table: set --ground-truth or ground_truth.path")
			}

			met := metrics.NewPipeline()
			if cfg.Metrics.Enabled {
				serveMetrics(cfg.Metrics.Addr, met, log)
			}

			paths, err := discovery.NewScanner(cfg.Discovery).Discover()
			if err != nil {
				return err
			}
			log.Info("discovered symbol files",
				logging.Int("files", len(paths)),
				logging.String("root", cfg.Discovery.Root),
			)

			table, err := groundtruth.Load(cfg.GroundTruth.Path)
			if err != nil {
				return err
			}

			raws := readSamples(paths, met, log)

			svc := extraction.NewService(log, met)
			samples, failures := svc.ExtractBatch(cmd.Context(), raws, table, extraction.BatchOptions{
				Workers:          cfg.Extraction.Workers,
				ProgressInterval: cfg.Extraction.ProgressInterval,
			})
			for _, f := range failures {
				log.Warn("sample excluded from dataset",
					logging.String("ui", f.ID),
					logging.Err(f.Err),
				)
			}

			if err := dataset.WriteFile(cfg.Dataset.OutputPath, samples); err != nil {
				return err
			}
			log.Info("dataset written",
				logging.String("path", cfg.Dataset.OutputPath),
				logging.Int("samples", len(samples)),
				logging.Int("excluded", len(failures)),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "training-data root directory to scan")
	cmd.Flags().StringVarP(&groundTruthPath, "ground-truth", "g", "", "ground-truth table path")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV path")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size (0 = number of CPUs)")
	return cmd
}

// readSamples decodes every discovered file into a raw sample.  Unreadable
// files are logged and skipped so one corrupt file never aborts a build.
func readSamples(paths []string, met *metrics.Pipeline, log logging.Logger) []ink.RawSample {
	raws := make([]ink.RawSample, 0, len(paths))
	for _, path := range paths {
		raw, err := inkml.ReadFile(path)
		if err != nil {
			met.ObserveSample("failed", 0, 0)
			log.Warn("skipping unreadable sample file",
				logging.String("path", path),
				logging.Err(err),
			)
			continue
		}
		raws = append(raws, raw)
	}
	return raws
}

// serveMetrics exposes the Prometheus endpoint in the background for the
// duration of the run.
func serveMetrics(addr string, met *metrics.Pipeline, log logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", met.Handler())
	go func() {
		log.Info("metrics listener started", logging.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn("metrics listener stopped", logging.Err(err))
		}
	}()
}
