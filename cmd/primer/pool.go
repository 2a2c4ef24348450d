package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primer-ml/primer/layers"
)

func poolCmd(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [row...]",
		Short: "Max-pool a grid down to its strongest responses",
		Long: `Apply max pooling to a 2D grid and print the reduced grid.

Rows are comma-separated arguments. With no rows, the builtin 6x6 demo
grid is used. The default 2x2 window with stride 2 halves each
dimension, keeping only the largest value per window.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, _ := cmd.Flags().GetInt("window")
			stride, _ := cmd.Flags().GetInt("stride")

			grid := demoGrid()
			if len(args) > 0 {
				var err error
				if grid, err = parseMatrix(args); err != nil {
					return err
				}
			}

			out, err := layers.MaxPool(grid, window, stride)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatMatrix(out, opts.Precision))
			return nil
		},
	}

	cmd.Flags().Int("window", 2, "pooling window size")
	cmd.Flags().Int("stride", 2, "pooling step size")

	return cmd
}
