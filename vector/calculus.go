// SPDX-License-Identifier: MIT
// Package: numlab/vector
//
// calculus.go - finite-difference derivative and trapezoidal integration.
//
// Purpose:
//   - Gradient: dy/dx on arbitrary (not necessarily uniform) sample points.
//   - Trapezoid / TrapezoidFunc: definite integrals by the trapezoidal rule.
//   - StationaryPoints: samples where the numerical derivative changes sign.
//
// Numeric policy:
//   - Repeated x values produce ±Inf/NaN derivatives; inputs are not scanned for
//     them. Callers sampling with Linspace/Arange never hit this case.

package vector

// Gradient returns the numerical derivative of y with respect to x.
// Implementation:
//   - Stage 1: Validate nil → equal length → len > 2.
//   - Stage 2: Forward difference at 0:     (y[1]-y[0]) / (x[1]-x[0]).
//   - Stage 3: Central difference inside:  (y[i+1]-y[i-1]) / (x[i+1]-x[i-1]).
//   - Stage 4: Backward difference at n-1: (y[n-1]-y[n-2]) / (x[n-1]-x[n-2]).
//
// Behavior highlights:
//   - Second-order accurate in the interior on uniform grids, first-order at
//     the two endpoints.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrTooFewPoints.
//
// Complexity:
//   - Time O(n), Space O(n).
func Gradient(y, x *Vector) (*Vector, error) {
	if err := ValidateSameLen(y, x); err != nil {
		return nil, vectorErrorf(opGradient, err)
	}
	if err := ValidateMinLen(y, minGradientPoints); err != nil {
		return nil, vectorErrorf(opGradient, err)
	}

	n := len(y.data)
	ys, xs := y.data, x.data
	out := make([]float64, n)

	out[0] = (ys[1] - ys[0]) / (xs[1] - xs[0])
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
	}
	out[n-1] = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])

	return &Vector{data: out}, nil
}

// Trapezoid estimates ∫ y dx over the samples with the trapezoidal rule:
//
//	Σ_{i=0}^{n-2} (y[i] + y[i+1]) * (x[i+1] - x[i]) / 2
//
// Mismatched lengths are rejected, never read past the shorter operand.
//
// Errors: ErrNilVector, ErrDimensionMismatch, ErrTooFewPoints (len < 2).
// Complexity: O(n), no allocation.
func Trapezoid(y, x *Vector) (float64, error) {
	if err := ValidateSameLen(y, x); err != nil {
		return 0, vectorErrorf(opTrapezoid, err)
	}
	if err := ValidateMinLen(y, minTrapezoidPoints); err != nil {
		return 0, vectorErrorf(opTrapezoid, err)
	}

	ys, xs := y.data, x.data
	twice := 0.0 // Σ of twice the trapezoid areas; halved once at the end
	for i := 0; i < len(ys)-1; i++ {
		twice += (ys[i] + ys[i+1]) * (xs[i+1] - xs[i])
	}

	return twice / 2, nil
}

// TrapezoidFunc integrates f over [a, b] on n evenly spaced points without
// materialising sample vectors. With the same n it matches
// Trapezoid(Linspace(a,b,n).Map(f), Linspace(a,b,n)) up to rounding.
//
// Errors: ErrNilFunc, ErrNaNInf (a or b not finite), ErrTooFewPoints (n < 2).
// Complexity: O(n) time, O(1) space; f is called 2(n-1) times.
func TrapezoidFunc(f UnaryFunc, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, vectorErrorf(opTrapezoidFunc, ErrNilFunc)
	}
	if !isFinite(a) || !isFinite(b) {
		return 0, vectorErrorf(opTrapezoidFunc, ErrNaNInf)
	}
	if n < minTrapezoidPoints {
		return 0, vectorErrorf(opTrapezoidFunc, ErrTooFewPoints)
	}

	h := (b - a) / float64(n-1)
	twice := 0.0
	for i := 0; i < n-1; i++ {
		twice += (f(a+h*float64(i)) + f(a+h*float64(i+1))) * h
	}

	return twice / 2, nil
}

// StationaryPoints returns the samples where dy/dx changes sign, i.e. every
// (x[i+1], y[i+1]) with Gradient[i]*Gradient[i+1] < 0. Points where the
// derivative is exactly zero on a sample are not reported.
//
// Errors: as Gradient.
// Complexity: O(n).
func StationaryPoints(y, x *Vector) ([]Point, error) {
	dydx, err := Gradient(y, x)
	if err != nil {
		return nil, vectorErrorf(opStationaryPoints, err)
	}

	var points []Point
	d := dydx.data
	for i := 0; i < len(d)-1; i++ {
		if d[i]*d[i+1] < 0 {
			points = append(points, Point{X: x.data[i+1], Y: y.data[i+1]})
		}
	}

	return points, nil
}
