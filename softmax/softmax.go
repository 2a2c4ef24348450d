// Copyright 2026 Primer. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package softmax

import (
	"github.com/primer-ml/primer/internal/softmax"
)

// ErrInvalidInput is returned when a score vector is empty or contains
// a non-finite element.
var ErrInvalidInput = softmax.ErrInvalidInput

// Softmax maps a vector of real-valued scores to a probability
// distribution over the same number of classes, using the max-shifted
// formulation for numerical stability.
func Softmax(scores []float64) ([]float64, error) {
	return softmax.Softmax(scores)
}

// LogSoftmax computes log(Softmax(scores)) directly, which is more
// numerically stable than composing the two operations.
func LogSoftmax(scores []float64) ([]float64, error) {
	return softmax.LogSoftmax(scores)
}

// Argmax returns the index of the largest score, which is also the
// most probable class under Softmax.
func Argmax(scores []float64) (int, error) {
	return softmax.Argmax(scores)
}
