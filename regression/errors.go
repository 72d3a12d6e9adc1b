// SPDX-License-Identifier: MIT
// Package: numlab/regression
//
// errors.go - sentinel errors and the wrapping helper.

package regression

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates inconsistent shapes between X, y and the
	// weights, including an empty sample set passed to Fit.
	ErrDimensionMismatch = errors.New("regression: dimension mismatch")

	// ErrBadParameter indicates an option value outside its domain
	// (non-positive learning rate, zero iteration budget, ...).
	ErrBadParameter = errors.New("regression: bad parameter")

	// ErrNoSamples is returned by Cost and Mean for empty input.
	ErrNoSamples = errors.New("regression: no samples")
)

// Operation names used as error context.
const (
	opFit         = "Fit"
	opFitLine     = "FitLine"
	opHypothesis  = "Hypothesis"
	opPredict     = "Predict"
	opResiduals   = "Residuals"
	opCost        = "Cost"
	opMean        = "Mean"
	opInitWeights = "InitWeights"
)

// regressionErrorf prefixes err with the operation name, preserving errors.Is.
func regressionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// regressionDetailf adds a detail message between op and the sentinel.
func regressionDetailf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
