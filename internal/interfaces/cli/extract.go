package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/turtacn/Ink-Intelligence/internal/application/extraction"
	"github.com/turtacn/Ink-Intelligence/internal/domain/ink"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/groundtruth"
	"github.com/turtacn/Ink-Intelligence/internal/infrastructure/inkml"
)

// extractResult is the JSON document printed for one sample.
type extractResult struct {
	UI          string          `json:"ui"`
	NumPoints   int             `json:"num_points"`
	NumStrokes  int             `json:"num_strokes"`
	Directions  []ink.Direction `json:"directions"`
	Curvature   float64         `json:"curvature"`
	AspectRatio float64         `json:"aspect_ratio"`
	XHistogram  [5]int          `json:"freq_x"`
	YHistogram  [5]int          `json:"freq_y"`
	Symbol      string          `json:"symbol,omitempty"`
}

// NewExtractCmd creates the `ink extract` command: run the pipeline on a
// single InkML file and print the feature vector as JSON.
func NewExtractCmd() *cobra.Command {
	var groundTruthPath string

	cmd := &cobra.Command{
		Use:   "extract <file.inkml>",
		Short: "Extract the feature vector of a single InkML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			raw, err := inkml.ReadFile(args[0])
			if err != nil {
				return err
			}

			svc := extraction.NewService(cliCtx.Logger, nil)
			sample, err := svc.Extract(cmd.Context(), raw)
			if err != nil {
				return err
			}

			if groundTruthPath != "" {
				table, err := groundtruth.Load(groundTruthPath)
				if err != nil {
					return err
				}
				if sample.Label, err = table.Lookup(sample.ID); err != nil {
					return err
				}
			}

			fv := sample.Features
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
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
		},
	}

	cmd.Flags().StringVarP(&groundTruthPath, "ground-truth", "g", "", "ground-truth table to label the sample from")
	return cmd
}
