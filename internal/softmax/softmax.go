// Package softmax implements the softmax transform over score vectors.
package softmax

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a score vector is empty or contains
// a non-finite element. All validation errors wrap this sentinel.
var ErrInvalidInput = errors.New("invalid input")

// Softmax maps a vector of real-valued scores to a probability
// distribution over the same number of classes.
//
// For each score x_i:
//
//	softmax(x)_i = exp(x_i - max(x)) / Σ_j exp(x_j - max(x))
//
// The max-shifting ensures numerical stability (prevents overflow for
// large scores) and leaves the result unchanged, since softmax is
// invariant to a constant shift of all inputs.
//
// Properties of the result:
//   - Same length as the input.
//   - Every element in (0, 1); the sum is 1 up to floating-point rounding.
//   - Order-preserving: larger scores map to larger probabilities.
//
// Returns an error wrapping ErrInvalidInput when the input is empty or
// contains NaN or ±Inf. No partial result is ever returned.
func Softmax(scores []float64) ([]float64, error) {
	maxVal, err := validate(scores)
	if err != nil {
		return nil, err
	}

	probs := make([]float64, len(scores))
	sum := 0.0
	for i, v := range scores {
		probs[i] = math.Exp(v - maxVal)
		sum += probs[i]
	}

	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// LogSoftmax computes the natural logarithm of Softmax directly:
//
//	log_softmax(x)_i = x_i - max(x) - log(Σ_j exp(x_j - max(x)))
//
// This is more numerically stable than computing Softmax and then
// taking the log. Validation matches Softmax.
func LogSoftmax(scores []float64) ([]float64, error) {
	maxVal, err := validate(scores)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, v := range scores {
		sum += math.Exp(v - maxVal)
	}
	logSum := math.Log(sum)

	out := make([]float64, len(scores))
	for i, v := range scores {
		out[i] = v - maxVal - logSum
	}
	return out, nil
}

// Argmax returns the index of the largest score. Ties resolve to the
// lowest index. Validation matches Softmax; since softmax is
// order-preserving, Argmax(scores) is also the most probable class.
func Argmax(scores []float64) (int, error) {
	if _, err := validate(scores); err != nil {
		return 0, err
	}

	maxIdx := 0
	for i, v := range scores[1:] {
		if v > scores[maxIdx] {
			maxIdx = i + 1
		}
	}
	return maxIdx, nil
}

// validate rejects empty and non-finite input, returning the maximum
// element on success so callers avoid a second pass.
func validate(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, fmt.Errorf("%w: input must contain at least one score", ErrInvalidInput)
	}

	maxVal := math.Inf(-1)
	for i, v := range scores {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: input contains a non-finite value at index %d", ErrInvalidInput, i)
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal, nil
}
