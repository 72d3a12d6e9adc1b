// Package vector provides Vector, an owned fixed-length sequence of float64
// values, together with the small set of numerical methods that operate on it.
//
// 🚀 What is in the box?
//
//	• Factories:   Empty, Zeros, EmptyLike, ZerosLike, Linspace, Arange, FromSlice
//	• Transforms:  (*Vector).Apply (in place), (*Vector).Map, Combine
//	• Reductions:  Reduce (left fold), Sum, Mean, Max, Min
//	• Calculus:    Gradient (forward / central / backward differences),
//	               Trapezoid, TrapezoidFunc, StationaryPoints
//
// ✨ Guarantees:
//
//   - A Vector never changes length after creation.
//   - No two Vectors share a backing buffer: every factory and transform copies.
//   - Every operation with a shape precondition validates it up front and
//     returns a sentinel error (errors.Is) instead of reading out of bounds.
//   - All loops run in fixed index order, so results are bit-for-bit reproducible.
//
// ⚙️ Usage:
//
//	x, _ := vector.Linspace(0, math.Pi, 1000)
//	y, _ := x.Map(math.Sin)
//	area, _ := vector.Trapezoid(y, x) // ≈ 2.0
//	dydx, _ := vector.Gradient(y, x)  // ≈ cos(x)
//
// Concurrency:
//
//	A Vector is not safe for concurrent mutation. Read-only operations may run
//	concurrently as long as nobody calls Set or Apply at the same time.
package vector
