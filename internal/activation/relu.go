// Package activation implements elementwise activation functions.
package activation

// ReLU applies the rectified linear unit f(x) = max(0, x) to each
// element and returns a fresh slice; the input is not modified.
//
// ReLU keeps positive activations unchanged and zeroes out negative
// ones, which is what lets stacked linear filters express non-linear
// decision boundaries.
func ReLU(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if x > 0 {
			out[i] = x
		}
	}
	return out
}

// ReLUMatrix applies ReLU to every element of a 2D grid, returning a
// fresh grid. Typically used on a convolution output ("feature map").
func ReLUMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = ReLU(row)
	}
	return out
}
