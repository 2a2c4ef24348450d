// Package main provides the primer CLI, a playground for the building
// blocks of convolutional neural networks.
package main

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// options come from the environment, prefixed PRIMER_.
type options struct {
	Precision  int `envconfig:"PRECISION" default:"4"`
	PlotWidth  int `envconfig:"PLOT_WIDTH" default:"60"`
	PlotHeight int `envconfig:"PLOT_HEIGHT" default:"15"`
}

func main() {
	var opts options
	if err := envconfig.Process("primer", &opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(opts).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(opts options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "primer",
		Short: "Primer - building blocks of convolutional neural networks",
		Long: `Primer demonstrates the pieces a convolutional classifier is made of:
convolution kernels, ReLU, max pooling, fully connected layers, and
softmax, each runnable on its own from the command line.

Run 'primer softmax 2 1 0.1' to turn scores into probabilities.
Run 'primer --help' for available commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		softmaxCmd(opts),
		convCmd(opts),
		poolCmd(opts),
		reluCmd(opts),
		denseCmd(opts),
		plotCmd(opts),
		versionCmd(),
	)

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "primer %s\n", version)
		},
	}
}
