package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primer-ml/primer/softmax"
)

func softmaxCmd(opts options) *cobra.Command {
	return &cobra.Command{
		Use:   "softmax score...",
		Short: "Convert raw class scores into probabilities",
		Long: `Run the softmax transform over a list of scores.

The output has one probability per score, all in (0, 1) and summing
to 1, with the largest score taking the largest share.

Example:

  primer softmax 2 1 0.1
  0.6590 0.2424 0.0986`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseVector(args)
			if err != nil {
				return err
			}

			probs, err := softmax.Softmax(scores)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatVector(probs, opts.Precision))
			return nil
		},
	}
}
