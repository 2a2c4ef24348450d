package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primer-ml/primer/layers"
)

func reluCmd(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "relu value...",
		Short: "Apply the ReLU activation to a list of values",
		Long: `Apply f(x) = max(0, x) to each value.

Negative values become 0; zero and positive values pass through.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseVector(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatVector(layers.ReLU(xs), opts.Precision))
			return nil
		},
	}
}
