package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReLU(t *testing.T) {
	got := ReLU([]float64{-2, -0.5, 0, 0.5, 2})
	assert.Equal(t, []float64{0, 0, 0, 0.5, 2}, got)
}

func TestReLUEmpty(t *testing.T) {
	assert.Empty(t, ReLU(nil))
}

func TestReLUDoesNotMutateInput(t *testing.T) {
	xs := []float64{-1, 1}
	_ = ReLU(xs)
	assert.Equal(t, []float64{-1, 1}, xs)
}

func TestReLUMatrix(t *testing.T) {
	got := ReLUMatrix([][]float64{
		{-1, 2},
		{3, -4},
	})
	assert.Equal(t, [][]float64{
		{0, 2},
		{3, 0},
	}, got)
}
