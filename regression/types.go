// SPDX-License-Identifier: MIT
// Package: numlab/regression
//
// types.go - solver options and the fit result.

package regression

import (
	"math"

	"go.uber.org/zap"
)

// Defaults for Options.
const (
	DefaultLearningRate  = 0.001
	DefaultMaxIterations = 100_000
	DefaultTolerance     = 1e-6
	DefaultEpoch         = 100
)

// Options configures Fit.
//
// LearningRate  – η, must be positive and finite.
// MaxIterations – iteration budget, must be ≥ 1.
// Tolerance     – per-weight step threshold, must be positive and finite.
// Epoch         – record the cost every Epoch iterations; 0 disables history.
// Logger        – receives progress at debug level; nil means no logging.
type Options struct {
	LearningRate  float64
	MaxIterations int
	Tolerance     float64
	Epoch         int
	Logger        *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the solver defaults.
func DefaultOptions() Options {
	return Options{
		LearningRate:  DefaultLearningRate,
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		Epoch:         DefaultEpoch,
		Logger:        zap.NewNop(),
	}
}

// WithLearningRate sets η.
func WithLearningRate(eta float64) Option {
	return func(o *Options) { o.LearningRate = eta }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the convergence threshold on |step|.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithEpoch sets the cost-history sampling period.
func WithEpoch(every int) Option {
	return func(o *Options) { o.Epoch = every }
}

// WithLogger attaches a zap logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// validate checks every option value. The first violation wins.
func (o Options) validate() error {
	switch {
	case !(o.LearningRate > 0) || math.IsInf(o.LearningRate, 0):
		return regressionDetailf(opFit, ErrBadParameter, "learning rate %v", o.LearningRate)
	case o.MaxIterations < 1:
		return regressionDetailf(opFit, ErrBadParameter, "max iterations %d", o.MaxIterations)
	case !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0):
		return regressionDetailf(opFit, ErrBadParameter, "tolerance %v", o.Tolerance)
	case o.Epoch < 0:
		return regressionDetailf(opFit, ErrBadParameter, "epoch %d", o.Epoch)
	}

	return nil
}

// Result is the outcome of Fit.
type Result struct {
	// Weights is the caller's weights slice after the final update.
	Weights []float64

	// Residuals holds h(x_i) - y_i from the last evaluated iteration,
	// computed with the weights in effect before that iteration's update.
	Residuals []float64

	// Iterations is the number of iterations executed (≤ MaxIterations).
	Iterations int

	// Converged reports whether every step fell within Tolerance. It is false
	// when the run stopped because a weight became NaN or ±Inf.
	Converged bool

	// Cost is Cost(Residuals).
	Cost float64

	// CostHistory samples the cost every Epoch iterations, starting at
	// iteration 0. Nil when Epoch is 0.
	CostHistory []float64
}
