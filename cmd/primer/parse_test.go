package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	got, err := parseVector([]string{"1", "2.5", "-3"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3}, got)

	// Comma-separated values inside one argument.
	got, err = parseVector([]string{"1,2, 3"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	_, err = parseVector([]string{"1", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestParseMatrix(t *testing.T) {
	got, err := parseMatrix([]string{"1,2", "3,4"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, got)

	_, err = parseMatrix([]string{"1,x"})
	require.Error(t, err)
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "0.50 1.00", formatVector([]float64{0.5, 1}, 2))
	assert.Equal(t, "1 -2", formatVector([]float64{1, -2}, 0))
}

func TestDemoGrid(t *testing.T) {
	grid := demoGrid()
	require.Len(t, grid, 6)
	for _, row := range grid {
		require.Len(t, row, 6)
		assert.Equal(t, 10.0, row[0])
		assert.Equal(t, 0.0, row[5])
	}
}
