// Copyright 2026 Primer. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layers

import (
	"github.com/primer-ml/primer/internal/activation"
	"github.com/primer-ml/primer/internal/conv"
	"github.com/primer-ml/primer/internal/dense"
	"github.com/primer-ml/primer/internal/pool"
)

// Kernel is a square convolution filter.
type Kernel = conv.Kernel

// Dense is a forward-only fully connected layer.
type Dense = dense.Dense

// VerticalEdge returns the builtin 3x3 vertical edge detector.
func VerticalEdge() Kernel { return conv.VerticalEdge() }

// HorizontalEdge returns the builtin 3x3 horizontal edge detector.
func HorizontalEdge() Kernel { return conv.HorizontalEdge() }

// BuiltinKernel returns the named builtin kernel.
func BuiltinKernel(name string) (Kernel, error) { return conv.Builtin(name) }

// ParseKernelYAML decodes a kernel from a YAML document.
func ParseKernelYAML(data []byte) (Kernel, error) { return conv.ParseKernelYAML(data) }

// Convolve slides a kernel over a 2D grid with the given stride and
// zero padding.
func Convolve(input [][]float64, k Kernel, stride, padding int) ([][]float64, error) {
	return conv.Apply(input, k, stride, padding)
}

// MaxPool reduces a 2D grid by taking the maximum inside each
// window position.
func MaxPool(input [][]float64, window, stride int) ([][]float64, error) {
	return pool.MaxPool(input, window, stride)
}

// ReLU applies max(0, x) elementwise to a vector.
func ReLU(xs []float64) []float64 { return activation.ReLU(xs) }

// ReLUMatrix applies max(0, x) elementwise to a 2D grid.
func ReLUMatrix(m [][]float64) [][]float64 { return activation.ReLUMatrix(m) }

// NewDense creates a fully connected layer from a weight matrix and an
// optional bias.
func NewDense(weights [][]float64, bias []float64) (*Dense, error) {
	return dense.New(weights, bias)
}

// ParseDenseYAML decodes a fully connected layer from a YAML document.
func ParseDenseYAML(data []byte) (*Dense, error) {
	return dense.ParseWeightsYAML(data)
}
