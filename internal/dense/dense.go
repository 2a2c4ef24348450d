// Package dense implements a forward-only fully connected layer.
package dense

import (
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is returned for malformed weight matrices, bias
// vectors, and mismatched inputs. All validation errors wrap this
// sentinel.
var ErrInvalidInput = errors.New("invalid input")

// Dense is a fully connected layer computing y = W·x + b.
//
// Every output value is a weighted sum over every input value, so the
// layer mixes all the spatial evidence collected by convolution and
// pooling into per-class scores.
//
// Weights have shape [outFeatures][inFeatures]; the bias has length
// outFeatures and may be omitted. The layer holds no training state:
// weights are supplied by the caller and never change.
type Dense struct {
	weights     [][]float64
	bias        []float64
	inFeatures  int
	outFeatures int
}

// New creates a Dense layer from a weight matrix and an optional bias.
//
// The weight matrix must be rectangular and non-empty with finite
// values; bias, when non-nil, must have one value per output row.
func New(weights [][]float64, bias []float64) (*Dense, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, fmt.Errorf("%w: weight matrix is empty", ErrInvalidInput)
	}
	in := len(weights[0])
	for i, row := range weights {
		if len(row) != in {
			return nil, fmt.Errorf("%w: weight matrix is ragged: row %d has %d values, want %d",
				ErrInvalidInput, i, len(row), in)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: weight matrix has a non-finite value at [%d][%d]",
					ErrInvalidInput, i, j)
			}
		}
	}
	if bias != nil {
		if len(bias) != len(weights) {
			return nil, fmt.Errorf("%w: bias has %d values, want %d (one per output)",
				ErrInvalidInput, len(bias), len(weights))
		}
		for i, v := range bias {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: bias has a non-finite value at index %d", ErrInvalidInput, i)
			}
		}
	}

	return &Dense{
		weights:     weights,
		bias:        bias,
		inFeatures:  in,
		outFeatures: len(weights),
	}, nil
}

// ParseWeightsYAML decodes a Dense layer from a YAML document:
//
//	weights:
//	  - [0.4, -0.1, 0.2]
//	  - [0.1, 0.3, -0.5]
//	bias: [0.0, 0.1]
func ParseWeightsYAML(data []byte) (*Dense, error) {
	var doc struct {
		Weights [][]float64 `yaml:"weights"`
		Bias    []float64   `yaml:"bias"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return New(doc.Weights, doc.Bias)
}

// Forward computes y = W·x + b.
//
// The input must have exactly InFeatures finite values; the result has
// OutFeatures values, one score per output row.
func (d *Dense) Forward(x []float64) ([]float64, error) {
	if len(x) != d.inFeatures {
		return nil, fmt.Errorf("%w: input has %d values, want %d", ErrInvalidInput, len(x), d.inFeatures)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: input contains a non-finite value at index %d", ErrInvalidInput, i)
		}
	}

	out := make([]float64, d.outFeatures)
	for i, row := range d.weights {
		sum := 0.0
		for j, w := range row {
			sum += w * x[j]
		}
		if d.bias != nil {
			sum += d.bias[i]
		}
		out[i] = sum
	}
	return out, nil
}

// InFeatures returns the expected input length.
func (d *Dense) InFeatures() int { return d.inFeatures }

// OutFeatures returns the output length.
func (d *Dense) OutFeatures() int { return d.outFeatures }
