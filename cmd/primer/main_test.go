package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() options {
	return options{Precision: 4, PlotWidth: 60, PlotHeight: 15}
}

// run executes the CLI against an in-memory output buffer.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf strings.Builder
	root := newRootCmd(defaultOptions())
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestSoftmaxCommand(t *testing.T) {
	out, err := run(t, "softmax", "2", "1", "0.1")
	require.NoError(t, err)
	assert.Equal(t, "0.6590 0.2424 0.0986\n", out)
}

func TestSoftmaxCommandInvalidInput(t *testing.T) {
	out, err := run(t, "softmax", "NaN", "1")
	require.Error(t, err)
	assert.Contains(t, out, "non-finite")
}

func TestConvCommandDemo(t *testing.T) {
	out, err := run(t, "conv")
	require.NoError(t, err)
	assert.Contains(t, out, "kernel: vertical-edge")
	assert.Contains(t, out, "30.0000")
}

func TestConvCommandCustomRows(t *testing.T) {
	out, err := run(t, "conv",
		"1,2,3", "4,5,6", "7,8,9",
	)
	require.NoError(t, err)
	// 3x3 input, 3x3 kernel: a single output value.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2) // kernel header + one row
}

func TestPoolCommand(t *testing.T) {
	out, err := run(t, "pool", "1,2,3,4", "5,6,7,8", "9,10,11,12", "13,14,15,16")
	require.NoError(t, err)
	assert.Equal(t, "6.0000 8.0000\n14.0000 16.0000\n", out)
}

func TestReluCommand(t *testing.T) {
	out, err := run(t, "relu", "-1", "0", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "0.0000 0.0000 2.5000\n", out)
}

func TestDenseCommandDemo(t *testing.T) {
	out, err := run(t, "dense", "10", "0", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "scores:")
	assert.Contains(t, out, "probs:")
	assert.Contains(t, out, "class:  0")
}

func TestPlotCommand(t *testing.T) {
	out, err := run(t, "plot", "--from", "-2", "--to", "2", "--points", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "softmax over [-2, 2]")
	assert.Contains(t, out, "*")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "primer v")
}
