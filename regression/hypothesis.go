// SPDX-License-Identifier: MIT
// Package: numlab/regression
//
// hypothesis.go - the linear model, residuals and the half-MSE cost.

package regression

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Hypothesis evaluates weights[0] + Σ weights[k+1]*sample[k].
//
// Errors: ErrDimensionMismatch unless len(weights) == len(sample)+1.
func Hypothesis(weights, sample []float64) (float64, error) {
	if len(weights) != len(sample)+1 {
		return 0, regressionDetailf(opHypothesis, ErrDimensionMismatch,
			"%d weights for %d features", len(weights), len(sample))
	}

	return hypothesis(weights, sample), nil
}

// hypothesis assumes len(weights) == len(sample)+1.
func hypothesis(weights, sample []float64) float64 {
	return weights[0] + floats.Dot(weights[1:], sample)
}

// Predict evaluates the hypothesis for every row of X.
//
// Errors: ErrDimensionMismatch for ragged rows or a weights length that
// does not match the feature count.
func Predict(X [][]float64, weights []float64) ([]float64, error) {
	if _, err := validateDesign(X, weights); err != nil {
		return nil, regressionErrorf(opPredict, err)
	}

	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = hypothesis(weights, row)
	}

	return out, nil
}

// Residuals returns h(X[i]) - y[i] for every sample.
func Residuals(X [][]float64, y, weights []float64) ([]float64, error) {
	if len(y) != len(X) {
		return nil, regressionDetailf(opResiduals, ErrDimensionMismatch,
			"%d targets for %d samples", len(y), len(X))
	}
	pred, err := Predict(X, weights)
	if err != nil {
		return nil, regressionErrorf(opResiduals, err)
	}
	for i := range pred {
		pred[i] -= y[i]
	}

	return pred, nil
}

// Cost returns Σ r² / (2n), the half mean squared error.
//
// Errors: ErrNoSamples for empty input.
func Cost(residuals []float64) (float64, error) {
	if len(residuals) == 0 {
		return 0, regressionErrorf(opCost, ErrNoSamples)
	}

	return floats.Dot(residuals, residuals) / (2 * float64(len(residuals))), nil
}

// Mean returns the arithmetic mean of values.
//
// Errors: ErrNoSamples for empty input.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, regressionErrorf(opMean, ErrNoSamples)
	}

	return floats.Sum(values) / float64(len(values)), nil
}

// validateDesign checks that X is rectangular and matches weights, and
// returns the feature count. An empty X is accepted here; Fit rejects it.
func validateDesign(X [][]float64, weights []float64) (int, error) {
	nFeatures := len(weights) - 1
	if len(X) > 0 {
		nFeatures = len(X[0])
	}
	for i, row := range X {
		if len(row) != nFeatures {
			return 0, fmt.Errorf("row %d has %d features, want %d: %w",
				i, len(row), nFeatures, ErrDimensionMismatch)
		}
	}
	if len(weights) != nFeatures+1 {
		return 0, fmt.Errorf("%d weights for %d features: %w",
			len(weights), nFeatures, ErrDimensionMismatch)
	}

	return nFeatures, nil
}
