// Package numlab is a small numerical-methods toolkit built around a
// fixed-length float64 vector.
//
// 🚀 What is numlab?
//
//	A handful of focused packages that work on the same vector type:
//		• vector     - construction (Linspace, Arange), element access,
//		               Map/Apply/Combine/Reduce, finite-difference Gradient,
//		               trapezoidal integration, stationary points
//		• regression - full-batch gradient descent for linear models
//		• signal     - seeded sine, cosine, chirp and pulse generators
//		• plot       - ASCII grids, direct sine printers, number lists
//		• control    - second-order systems: poles and impulse response
//
//	The numlab command (cmd/numlab) drives all of them from the terminal.
//
// ✨ Conventions
//
//   - Errors are package sentinels, wrapped with the failing operation;
//     test them with errors.Is.
//   - Knobs are functional options (WithX) with documented defaults.
//   - Nothing panics on bad data and nothing is shared between calls.
//   - Randomness is always seeded; equal inputs give equal outputs.
//
// Quick start:
//
//	x, _ := vector.Linspace(0, math.Pi, 1000)
//	y, _ := x.Map(math.Sin)
//	area, _ := vector.Trapezoid(y, x) // ≈ 2
package numlab
