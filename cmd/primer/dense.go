package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/primer-ml/primer/layers"
	"github.com/primer-ml/primer/softmax"
)

func denseCmd(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dense value...",
		Short: "Run a fully connected layer over a feature vector",
		Long: `Compute y = W*x + b for a feature vector, then show what a
classifier head does with the result: raw scores, softmax
probabilities, and the winning class.

Without --weights-file, a builtin 3-class demo layer over 3 features
is used. Weight files are YAML:

  weights:
    - [0.4, -0.1, 0.2]
    - [0.1, 0.3, -0.5]
  bias: [0.0, 0.1]`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("weights-file")

			layer, err := loadDense(file)
			if err != nil {
				return err
			}

			x, err := parseVector(args)
			if err != nil {
				return err
			}

			scores, err := layer.Forward(x)
			if err != nil {
				return err
			}
			probs, err := softmax.Softmax(scores)
			if err != nil {
				return err
			}
			class, err := softmax.Argmax(scores)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scores: %s\n", formatVector(scores, opts.Precision))
			fmt.Fprintf(out, "probs:  %s\n", formatVector(probs, opts.Precision))
			fmt.Fprintf(out, "class:  %d\n", class)
			return nil
		},
	}

	cmd.Flags().String("weights-file", "", "YAML weights file")

	return cmd
}

func loadDense(file string) (*layers.Dense, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return layers.ParseDenseYAML(data)
	}

	// Demo head: class 0 likes the first feature, class 1 the second,
	// class 2 the third.
	return layers.NewDense([][]float64{
		{1, 0.2, -0.5},
		{-0.3, 1, 0.1},
		{0.1, -0.4, 1},
	}, []float64{0, 0, 0})
}
