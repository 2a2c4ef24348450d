// Copyright 2026 Primer. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primer-ml/primer/layers"
	"github.com/primer-ml/primer/softmax"
)

// TestPipeline runs a tiny image through the full sequence the package
// documents: convolve, ReLU, pool, flatten, dense, softmax.
func TestPipeline(t *testing.T) {
	// 6x6 image, bright left half: a single vertical edge.
	image := make([][]float64, 6)
	for y := range image {
		image[y] = make([]float64, 6)
		for x := 0; x < 3; x++ {
			image[y][x] = 10
		}
	}

	fmap, err := layers.Convolve(image, layers.VerticalEdge(), 1, 0)
	require.NoError(t, err)
	require.Len(t, fmap, 4)

	fmap = layers.ReLUMatrix(fmap)

	pooled, err := layers.MaxPool(fmap, 2, 2)
	require.NoError(t, err)
	require.Len(t, pooled, 2)
	require.Len(t, pooled[0], 2)

	var flat []float64
	for _, row := range pooled {
		flat = append(flat, row...)
	}

	// Two classes: "has an edge" weights all features positively,
	// "blank" negatively.
	layer, err := layers.NewDense([][]float64{
		{1, 1, 1, 1},
		{-1, -1, -1, -1},
	}, nil)
	require.NoError(t, err)

	scores, err := layer.Forward(flat)
	require.NoError(t, err)

	probs, err := softmax.Softmax(scores)
	require.NoError(t, err)

	idx, err := softmax.Argmax(scores)
	require.NoError(t, err)
	assert.Equal(t, 0, idx, "edge image must score as the edge class")
	assert.Greater(t, probs[0], 0.99)
}

func TestConvolveRejectsBadKernel(t *testing.T) {
	_, err := layers.Convolve([][]float64{{1}}, layers.Kernel{Name: "empty"}, 1, 0)
	require.Error(t, err)
}

func TestParseKernelYAML(t *testing.T) {
	k, err := layers.ParseKernelYAML([]byte("name: id\nweights:\n  - [1]\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, k.Size())
}
