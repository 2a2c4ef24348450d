// Package pool implements 2D max pooling over plain float64 grids.
package pool

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for malformed grids and window/stride
// combinations. All validation errors wrap this sentinel.
var ErrInvalidInput = errors.New("invalid input")

// MaxPool reduces a 2D grid by taking the maximum value inside each
// window position.
//
// Input shape: [height][width].
// Output shape: [outH][outW] where
//
//	outH = (height - window) / stride + 1
//	outW = (width  - window) / stride + 1
//
// Common configurations:
//   - window=2, stride=2: halves each dimension (most common)
//   - window=2, stride=1: overlapping pooling
//
// Unlike convolution, pooling has no weights; it keeps the strongest
// activation in each region and discards exact position.
func MaxPool(input [][]float64, window, stride int) ([][]float64, error) {
	h, w, err := gridDims(input)
	if err != nil {
		return nil, err
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidInput, window)
	}
	if stride <= 0 {
		return nil, fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidInput, stride)
	}
	if window > h || window > w {
		return nil, fmt.Errorf("%w: window %d too large for %dx%d input", ErrInvalidInput, window, h, w)
	}

	outH := (h-window)/stride + 1
	outW := (w-window)/stride + 1

	out := make([][]float64, outH)
	for oy := 0; oy < outH; oy++ {
		out[oy] = make([]float64, outW)
		for ox := 0; ox < outW; ox++ {
			maxVal := math.Inf(-1)
			for ky := 0; ky < window; ky++ {
				row := input[oy*stride+ky]
				for kx := 0; kx < window; kx++ {
					if v := row[ox*stride+kx]; v > maxVal {
						maxVal = v
					}
				}
			}
			out[oy][ox] = maxVal
		}
	}
	return out, nil
}

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
