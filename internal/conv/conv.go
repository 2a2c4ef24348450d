// Package conv implements single-channel 2D convolution for
// illustrating what a filter does to an input grid.
package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for malformed inputs, kernels, or
// stride/padding combinations. All validation errors wrap this sentinel.
var ErrInvalidInput = errors.New("invalid input")

// Apply convolves a kernel over a 2D input grid.
//
// Input shape: [height][width], a single channel.
// Output shape: [outH][outW] where
//
//	outH = (height + 2*padding - k) / stride + 1
//	outW = (width  + 2*padding - k) / stride + 1
//
// Padding adds a border of zeros around the input before the kernel
// slides over it. This is cross-correlation (the kernel is not
// flipped), matching deep-learning convention.
func Apply(input [][]float64, k Kernel, stride, padding int) ([][]float64, error) {
	h, w, err := gridDims(input)
	if err != nil {
		return nil, err
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidInput, stride)
	}
	if padding < 0 {
		return nil, fmt.Errorf("%w: padding must be non-negative, got %d", ErrInvalidInput, padding)
	}

	size := k.Size()
	padH := h + 2*padding
	padW := w + 2*padding
	if size > padH || size > padW {
		// Checked before the dimension arithmetic: for a negative
		// numerator, truncating division would round (padH-size)/stride
		// up to 0 and leave outH at 1 for stride >= 2.
		return nil, fmt.Errorf("%w: kernel size %d too large for %dx%d input with padding %d",
			ErrInvalidInput, size, h, w, padding)
	}
	outH := (padH-size)/stride + 1
	outW := (padW-size)/stride + 1

	out := make([][]float64, outH)
	for oy := 0; oy < outH; oy++ {
		out[oy] = make([]float64, outW)
		for ox := 0; ox < outW; ox++ {
			sum := 0.0
			for ky := 0; ky < size; ky++ {
				iy := oy*stride + ky - padding
				if iy < 0 || iy >= h {
					continue // zero padding
				}
				for kx := 0; kx < size; kx++ {
					ix := ox*stride + kx - padding
					if ix < 0 || ix >= w {
						continue
					}
					sum += input[iy][ix] * k.Weights[ky][kx]
				}
			}
			out[oy][ox] = sum
		}
	}
	return out, nil
}

// gridDims validates a rectangular, non-empty, finite grid and returns
// its height and width.
func gridDims(input [][]float64) (int, int, error) {
	if len(input) == 0 || len(input[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: input grid is empty", ErrInvalidInput)
	}
	w := len(input[0])
	for i, row := range input {
		if len(row) != w {
			return 0, 0, fmt.Errorf("%w: input grid is ragged: row %d has %d values, want %d",
				ErrInvalidInput, i, len(row), w)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("%w: input contains a non-finite value at [%d][%d]",
					ErrInvalidInput, i, j)
			}
		}
	}
	return len(input), w, nil
}
