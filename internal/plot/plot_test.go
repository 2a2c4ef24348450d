package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveDimensions(t *testing.T) {
	var buf strings.Builder
	cfg := Config{From: -4, To: 4, Points: 33, Width: 40, Height: 10}

	require.NoError(t, Curve(&buf, cfg))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header + Height chart rows + axis.
	require.Len(t, lines, cfg.Height+2)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), cfg.Width)
	}
	assert.Equal(t, strings.Repeat("-", cfg.Width), lines[len(lines)-1])
}

func TestCurvePeaksAtRangeTop(t *testing.T) {
	var buf strings.Builder
	cfg := DefaultConfig()

	require.NoError(t, Curve(&buf, cfg))

	lines := strings.Split(buf.String(), "\n")
	top := lines[1] // highest chart row

	// Softmax of an increasing ramp is increasing, so only the
	// rightmost columns reach the top row.
	trimmed := strings.TrimRight(top, " ")
	require.NotEmpty(t, trimmed)
	assert.Equal(t, cfg.Width, len(trimmed), "peak must sit at the right edge")
	assert.False(t, strings.HasPrefix(trimmed, "*"), "left edge must stay near zero")
}

func TestCurveHeader(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Curve(&buf, Config{From: 0, To: 1, Points: 5, Width: 40, Height: 4}))
	assert.Contains(t, buf.String(), "softmax over [0, 1]")
}

func TestCurveNarrowChart(t *testing.T) {
	var buf strings.Builder
	cfg := Config{From: 0, To: 1, Points: 5, Width: 10, Height: 4}
	require.NoError(t, Curve(&buf, cfg))

	// No line, header included, may spill past the chart width.
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), cfg.Width)
	}
}

func TestCurveInvalidConfig(t *testing.T) {
	var buf strings.Builder

	err := Curve(&buf, Config{From: 1, To: 1, Points: 10, Width: 10, Height: 5})
	require.ErrorIs(t, err, ErrInvalidConfig)

	err = Curve(&buf, Config{From: 0, To: 1, Points: 1, Width: 10, Height: 5})
	require.ErrorIs(t, err, ErrInvalidConfig)

	err = Curve(&buf, Config{From: 0, To: 1, Points: 10, Width: 0, Height: 5})
	require.ErrorIs(t, err, ErrInvalidConfig)

	err = Curve(&buf, Config{From: 0, To: 1, Points: 10, Width: 10, Height: 0})
	require.ErrorIs(t, err, ErrInvalidConfig)

	assert.Empty(t, buf.String(), "no partial output on invalid config")
}
