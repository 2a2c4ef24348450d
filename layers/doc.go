// Copyright 2026 Primer. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layers provides the convolutional-network building blocks:
// convolution filters, ReLU, max pooling, and fully connected layers.
//
// # Overview
//
// These are the conceptual pieces of a convolutional classifier,
// implemented on plain slices for study rather than speed:
//   - Convolution: slide a small weight grid (a Kernel) over an input
//     grid to detect local patterns such as edges.
//   - ReLU: zero out negative responses.
//   - Max pooling: keep the strongest response per region, shrinking
//     the grid.
//   - Dense: mix all remaining evidence into per-class scores.
//
// Feed the resulting scores to the softmax package to turn them into
// probabilities.
//
// # Basic Usage
//
//	fmap, err := layers.Convolve(image, layers.VerticalEdge(), 1, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmap = layers.ReLUMatrix(fmap)
//	pooled, err := layers.MaxPool(fmap, 2, 2)
//
// # Custom Kernels
//
// Kernels can be loaded from small YAML documents:
//
//	k, err := layers.ParseKernelYAML(data)
//
// # Scope
//
// There is no training here: Dense layers take caller-supplied
// weights, and nothing computes gradients.
package layers
