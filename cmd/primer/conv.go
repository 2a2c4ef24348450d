package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/primer-ml/primer/layers"
)

func convCmd(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conv [row...]",
		Short: "Slide a convolution kernel over a grid",
		Long: `Apply a convolution kernel to a 2D grid and print the feature map.

Rows are comma-separated arguments ("10,10,0" "10,10,0" ...). With no
rows, a builtin 6x6 grid with a bright left half is used, so the
vertical-edge kernel lights up on the brightness boundary.

Custom kernels load from a YAML file:

  name: sharpen
  weights:
    - [0, -1, 0]
    - [-1, 5, -1]
    - [0, -1, 0]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("kernel")
			file, _ := cmd.Flags().GetString("kernel-file")
			stride, _ := cmd.Flags().GetInt("stride")
			padding, _ := cmd.Flags().GetInt("padding")

			k, err := loadKernel(name, file)
			if err != nil {
				return err
			}

			grid := demoGrid()
			if len(args) > 0 {
				if grid, err = parseMatrix(args); err != nil {
					return err
				}
			}

			out, err := layers.Convolve(grid, k, stride, padding)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "kernel: %s\n", k.Name)
			fmt.Fprintln(cmd.OutOrStdout(), formatMatrix(out, opts.Precision))
			return nil
		},
	}

	cmd.Flags().String("kernel", "vertical-edge", "builtin kernel (vertical-edge, horizontal-edge)")
	cmd.Flags().String("kernel-file", "", "YAML kernel file (overrides --kernel)")
	cmd.Flags().Int("stride", 1, "kernel step size")
	cmd.Flags().Int("padding", 0, "zero-padding border width")

	return cmd
}

func loadKernel(name, file string) (layers.Kernel, error) {
	if file == "" {
		return layers.BuiltinKernel(name)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return layers.Kernel{}, err
	}
	return layers.ParseKernelYAML(data)
}
