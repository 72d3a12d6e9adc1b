// SPDX-License-Identifier: MIT

// Package regression fits linear models with full-batch gradient descent.
//
// 🚀 What & Why
//
//	The model is the linear hypothesis
//
//	    h(x) = w[0] + Σ_k w[k+1]·x[k]
//
//	where w[0] is the bias. Fit minimises the half mean squared error
//
//	    J(w) = Σ_i (h(x_i) - y_i)² / (2·n)
//
//	by repeatedly stepping every weight against its averaged gradient.
//
// ⚙️ Algorithm (one iteration)
//
//  1. residual_i = h(x_i) - y_i for every sample, with the current weights.
//  2. g[0] = mean(residual), g[k+1] = mean(residual_i · x_i[k]).
//  3. step[j] = -η·g[j]; all weights are updated together.
//  4. Stop when every |step[j]| ≤ tolerance, or when the iteration budget
//     runs out. Running out is not an error: Result.Converged reports it.
//
// 📦 Results
//
//	Result.Residuals belong to the last evaluated iteration and were computed
//	with that iteration's weights, i.e. one update behind Result.Weights.
//	Call Residuals(X, y, res.Weights) for values matching the final weights.
//
// 🔧 Options
//
//	WithLearningRate, WithMaxIterations, WithTolerance, WithEpoch, WithLogger.
//
// 🧵 Concurrency
//
//	Fit is synchronous and keeps all scratch state local to the call. The
//	caller's weights slice is the only shared state and is updated in place.
package regression
