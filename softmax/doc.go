// Copyright 2026 Primer. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package softmax converts raw per-class scores into probabilities.
//
// # Overview
//
// Softmax maps an arbitrary real vector onto the probability simplex:
// every output lies in (0, 1), the outputs sum to 1, and larger scores
// map to larger probabilities. Because exponentiation is convex, the
// gap between the largest score and the rest is exaggerated, which is
// why classifiers read the result as a confidence distribution.
//
// # Basic Usage
//
//	probs, err := softmax.Softmax([]float64{2, 1, 0.1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// probs ≈ [0.6590, 0.2424, 0.0986]
//
// # Numerical Stability
//
// The implementation subtracts the maximum score from every element
// before exponentiating. The naive textbook formula overflows float64
// once scores pass ~700; the shift keeps the largest exponent at zero
// without changing the result (softmax is shift-invariant).
//
// # Errors
//
// Empty input and non-finite scores (NaN, ±Inf) fail with an error
// wrapping ErrInvalidInput before any computation happens; a result
// vector never contains NaN.
//
// # Concurrency
//
// All functions are pure and operate only on their own arguments, so
// they are safe to call from any number of goroutines.
package softmax
