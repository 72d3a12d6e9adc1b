// SPDX-License-Identifier: MIT
// Package: numlab/regression
//
// descent.go - full-batch gradient descent.

package regression

import (
	"math"
	"slices"

	"go.uber.org/zap"
)

// Fit runs batch gradient descent on the linear model and updates weights
// in place.
//
// Implementation:
//   - Stage 1: Validate X non-empty and rectangular, len(y) == len(X),
//     len(weights) == nFeatures+1, then the options.
//   - Stage 2: Each iteration computes residuals and averaged gradients from
//     the current weights; gradient accumulators are local and start at zero.
//   - Stage 3: Steps -η·g[j] are applied to all weights together, then the
//     run stops if every |step| ≤ Tolerance. A NaN step never satisfies it.
//   - Stage 4: Cost is taken from the residuals of the last iteration.
//
// Behavior highlights:
//   - Exhausting MaxIterations is not an error; Result.Converged is false and
//     weights hold the last update.
//   - A weight that becomes NaN or ±Inf ends the run at once with
//     Result.Converged false.
//   - On a validation error weights are untouched.
//
// Errors:
//   - ErrDimensionMismatch, ErrBadParameter.
//
// Complexity:
//   - Time O(I·n·d) for I iterations, n samples, d features. Space O(n + d).
func Fit(X [][]float64, y, weights []float64, opts ...Option) (*Result, error) {
	if len(X) == 0 {
		return nil, regressionDetailf(opFit, ErrDimensionMismatch, "no samples")
	}
	if _, err := validateDesign(X, weights); err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	if len(y) != len(X) {
		return nil, regressionDetailf(opFit, ErrDimensionMismatch,
			"%d targets for %d samples", len(y), len(X))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	var (
		n         = len(X)
		invN      = 1.0 / float64(n)
		residuals = make([]float64, n)
		grad      = make([]float64, len(weights))
		res       = &Result{Weights: weights, Residuals: residuals}
		log       = o.Logger
		diverged  bool
	)

	for iter := 0; iter < o.MaxIterations; iter++ {
		clear(grad)
		for i, row := range X {
			r := hypothesis(weights, row) - y[i]
			residuals[i] = r
			grad[0] += r
			for k, xk := range row {
				grad[k+1] += r * xk
			}
		}

		if o.Epoch > 0 && iter%o.Epoch == 0 {
			c := halfMSE(residuals)
			res.CostHistory = append(res.CostHistory, c)
			log.Debug("gradient descent progress",
				zap.Int("iteration", iter),
				zap.Float64("cost", c),
				zap.Float64s("weights", slices.Clone(weights)))
		}

		within, finite := true, true
		for j := range weights {
			step := -o.LearningRate * (grad[j] * invN)
			weights[j] += step
			if !(math.Abs(step) <= o.Tolerance) {
				within = false
			}
			if !isFinite(weights[j]) {
				finite = false
			}
		}

		res.Iterations = iter + 1
		if !finite {
			diverged = true

			break
		}
		if within {
			res.Converged = true

			break
		}
	}

	res.Cost = halfMSE(residuals)
	switch {
	case res.Converged:
		log.Debug("gradient descent converged",
			zap.Int("iterations", res.Iterations),
			zap.Float64("cost", res.Cost))
	case diverged:
		log.Warn("gradient descent diverged",
			zap.Int("iterations", res.Iterations),
			zap.Float64("learning_rate", o.LearningRate))
	default:
		log.Warn("gradient descent stopped at iteration budget",
			zap.Int("iterations", res.Iterations),
			zap.Float64("tolerance", o.Tolerance),
			zap.Float64("cost", res.Cost))
	}

	return res, nil
}

// FitLine fits y ≈ weights[0] + weights[1]·x. It reshapes x into a
// single-feature design matrix and delegates to Fit.
//
// Errors: ErrDimensionMismatch when len(weights) != 2 or len(x) != len(y),
// plus everything Fit returns.
func FitLine(x, y, weights []float64, opts ...Option) (*Result, error) {
	if len(weights) != 2 {
		return nil, regressionDetailf(opFitLine, ErrDimensionMismatch,
			"line needs 2 weights, got %d", len(weights))
	}
	if len(x) != len(y) {
		return nil, regressionDetailf(opFitLine, ErrDimensionMismatch,
			"%d x values for %d targets", len(x), len(y))
	}

	X := make([][]float64, len(x))
	for i := range x {
		X[i] = x[i : i+1 : i+1]
	}

	res, err := Fit(X, y, weights, opts...)
	if err != nil {
		return nil, regressionErrorf(opFitLine, err)
	}

	return res, nil
}

// halfMSE assumes a non-empty slice.
func halfMSE(residuals []float64) float64 {
	c, _ := Cost(residuals)

	return c
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
