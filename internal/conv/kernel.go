package conv

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Kernel is a square convolution filter.
//
// A kernel slides over an input grid; at each position the overlapping
// values are multiplied elementwise with the kernel weights and summed
// into a single output value. The weight pattern decides what the
// filter responds to: edges, corners, blurs.
type Kernel struct {
	Name    string      `yaml:"name"`
	Weights [][]float64 `yaml:"weights"`
}

// VerticalEdge is a 3x3 filter that responds to vertical edges:
// strongly positive where brightness falls from left to right.
func VerticalEdge() Kernel {
	return Kernel{
		Name: "vertical-edge",
		Weights: [][]float64{
			{1, 0, -1},
			{1, 0, -1},
			{1, 0, -1},
		},
	}
}

// HorizontalEdge is a 3x3 filter that responds to horizontal edges:
// strongly positive where brightness falls from top to bottom.
func HorizontalEdge() Kernel {
	return Kernel{
		Name: "horizontal-edge",
		Weights: [][]float64{
			{1, 1, 1},
			{0, 0, 0},
			{-1, -1, -1},
		},
	}
}

// Builtin returns the named builtin kernel.
func Builtin(name string) (Kernel, error) {
	switch name {
	case "vertical-edge":
		return VerticalEdge(), nil
	case "horizontal-edge":
		return HorizontalEdge(), nil
	default:
		return Kernel{}, fmt.Errorf("%w: unknown builtin kernel %q (want vertical-edge or horizontal-edge)", ErrInvalidInput, name)
	}
}

// ParseKernelYAML decodes a kernel from a YAML document:
//
//	name: sharpen
//	weights:
//	  - [0, -1, 0]
//	  - [-1, 5, -1]
//	  - [0, -1, 0]
func ParseKernelYAML(data []byte) (Kernel, error) {
	var k Kernel
	if err := yaml.Unmarshal(data, &k); err != nil {
		return Kernel{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := k.Validate(); err != nil {
		return Kernel{}, err
	}
	return k, nil
}

// Size returns the kernel side length.
func (k Kernel) Size() int {
	return len(k.Weights)
}

// Validate checks that the kernel is square, non-empty, and finite.
func (k Kernel) Validate() error {
	n := len(k.Weights)
	if n == 0 {
		return fmt.Errorf("%w: kernel %q has no weights", ErrInvalidInput, k.Name)
	}
	for i, row := range k.Weights {
		if len(row) != n {
			return fmt.Errorf("%w: kernel %q is not square: row %d has %d values, want %d",
				ErrInvalidInput, k.Name, i, len(row), n)
		}
		for j, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return fmt.Errorf("%w: kernel %q has a non-finite weight at [%d][%d]",
					ErrInvalidInput, k.Name, i, j)
			}
		}
	}
	return nil
}
