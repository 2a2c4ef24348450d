package main

import (
	"github.com/spf13/cobra"

	"github.com/primer-ml/primer/internal/plot"
)

func plotCmd(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Chart softmax output over a score range",
		Long: `Sample evenly spaced scores over a range, softmax the sampled
vector, and draw the resulting probabilities as an ASCII chart.

The curve hugs zero for most of the range and shoots up at the end:
exponentiation hands nearly all probability mass to the largest
scores. Chart size follows PRIMER_PLOT_WIDTH and PRIMER_PLOT_HEIGHT.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetFloat64("from")
			to, _ := cmd.Flags().GetFloat64("to")
			points, _ := cmd.Flags().GetInt("points")

			return plot.Curve(cmd.OutOrStdout(), plot.Config{
				From:   from,
				To:     to,
				Points: points,
				Width:  opts.PlotWidth,
				Height: opts.PlotHeight,
			})
		},
	}

	cmd.Flags().Float64("from", -4, "left edge of the score range")
	cmd.Flags().Float64("to", 4, "right edge of the score range")
	cmd.Flags().Int("points", 33, "number of sampled scores")

	return cmd
}
