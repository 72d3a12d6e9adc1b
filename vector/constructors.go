// SPDX-License-Identifier: MIT
// Package: numlab/vector
//
// constructors.go - factories for Vector.
//
// Contract:
//   • Every factory returns a freshly allocated Vector that owns its buffer.
//   • Lengths are validated before allocation (ErrBadSize / ErrAllocation).
//   • Range generators compute start + i*step per element, never by
//     accumulation, so rounding error does not grow with i.

package vector

import "math"

// Empty returns a vector of length n whose contents the caller is expected to
// fill before reading. Go zeroes every allocation, so the elements are 0.0.
//
// Errors: ErrBadSize (n < 0), ErrAllocation (n > MaxLen).
// Complexity: O(n).
func Empty(n int) (*Vector, error) {
	if err := validateLen(n); err != nil {
		return nil, vectorErrorf(opEmpty, err)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// Zeros returns a vector of length n with every element set to 0.0.
//
// Errors: ErrBadSize (n < 0), ErrAllocation (n > MaxLen).
// Complexity: O(n).
func Zeros(n int) (*Vector, error) {
	if err := validateLen(n); err != nil {
		return nil, vectorErrorf(opZeros, err)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// EmptyLike returns an unfilled vector with the same length as u.
func EmptyLike(u *Vector) (*Vector, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, vectorErrorf(opEmpty, err)
	}

	return Empty(len(u.data))
}

// ZerosLike returns a zero vector with the same length as u.
func ZerosLike(u *Vector) (*Vector, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, vectorErrorf(opZeros, err)
	}

	return Zeros(len(u.data))
}

// Linspace returns n evenly spaced samples from start to end inclusive.
// Implementation:
//   - Stage 1: Validate finiteness of start, end and end-start, n ≥ 2 and a
//     non-zero step.
//   - Stage 2: Fill v[i] = start + i*step with step = (end-start)/(n-1).
//   - Stage 3: Pin v[n-1] = end so the last sample is exact.
//
// Errors:
//   - ErrNaNInf if start or end is not finite, or end-start overflows.
//   - ErrTooFewPoints if n < 2.
//   - ErrZeroStep if start == end.
//   - ErrAllocation if n > MaxLen.
//
// Complexity:
//   - Time O(n), Space O(n).
func Linspace(start, end float64, n int) (*Vector, error) {
	if !isFinite(start) || !isFinite(end) {
		return nil, vectorErrorf(opLinspace, ErrNaNInf)
	}
	if n < minLinspacePoints {
		return nil, vectorErrorf(opLinspace, ErrTooFewPoints)
	}
	if err := validateLen(n); err != nil {
		return nil, vectorErrorf(opLinspace, err)
	}
	span := end - start
	if !isFinite(span) {
		return nil, vectorErrorf(opLinspace, ErrNaNInf)
	}
	step := span / float64(n-1)
	if step == 0 {
		return nil, vectorErrorf(opLinspace, ErrZeroStep)
	}

	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = start + float64(i)*step
	}
	data[n-1] = end

	return &Vector{data: data}, nil
}

// Arange returns start, start+step, start+2*step, ... strictly inside
// [start, end) in the direction of step. The length is floor((end-start)/step).
//
// Errors:
//   - ErrNaNInf if any argument is not finite.
//   - ErrZeroStep if step == 0.
//   - ErrBadRange if step points away from end or the length computes to 0.
//   - ErrAllocation if the length exceeds MaxLen.
//
// Complexity: O(n) where n is the resulting length.
func Arange(start, end, step float64) (*Vector, error) {
	if !isFinite(start) || !isFinite(end) || !isFinite(step) {
		return nil, vectorErrorf(opArange, ErrNaNInf)
	}
	if step == 0 {
		return nil, vectorErrorf(opArange, ErrZeroStep)
	}
	if (step > 0 && end <= start) || (step < 0 && start <= end) {
		return nil, vectorErrorf(opArange, ErrBadRange)
	}

	count := math.Floor((end - start) / step)
	if count < 1 {
		return nil, vectorErrorf(opArange, ErrBadRange)
	}
	if count > MaxLen {
		return nil, vectorErrorf(opArange, ErrAllocation)
	}

	n := int(count)
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		data[i] = start + float64(i)*step
	}

	return &Vector{data: data}, nil
}

// FromSlice copies values into a new vector. A nil or empty slice yields a
// zero-length vector; later changes to values do not affect the result.
func FromSlice(values []float64) *Vector {
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
