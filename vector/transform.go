// SPDX-License-Identifier: MIT
// Package: numlab/vector
//
// transform.go - elementwise transforms and left-fold reductions.
//
// Determinism:
//   • All loops visit indices 0..n-1 in order; Reduce folds strictly left to right.
//   • Map/Combine never mutate their inputs; Apply is the only in-place transform.

package vector

import "math"

// Apply replaces every element with f(element), in place.
//
// Errors: ErrNilVector (nil receiver), ErrNilFunc (nil f). On error v is unchanged.
// Complexity: O(n), no allocation.
func (v *Vector) Apply(f UnaryFunc) error {
	if err := ValidateNotNil(v); err != nil {
		return vectorErrorf(opApply, err)
	}
	if f == nil {
		return vectorErrorf(opApply, ErrNilFunc)
	}
	for i, x := range v.data {
		v.data[i] = f(x)
	}

	return nil
}

// Map returns a new vector whose element i is f(v[i]). v is not modified.
//
// Errors: ErrNilVector, ErrNilFunc.
// Complexity: O(n) time and space.
func (v *Vector) Map(f UnaryFunc) (*Vector, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(opMap, err)
	}
	if f == nil {
		return nil, vectorErrorf(opMap, ErrNilFunc)
	}

	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}

	return &Vector{data: out}, nil
}

// Combine returns a new vector whose element i is f(x[i], y[i]).
// Implementation:
//   - Stage 1: Validate both operands are present and equally long.
//   - Stage 2: Single pass over i = 0..n-1.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrNilFunc.
//
// Complexity:
//   - Time O(n), Space O(n).
func Combine(x, y *Vector, f BinaryFunc) (*Vector, error) {
	if err := ValidateSameLen(x, y); err != nil {
		return nil, vectorErrorf(opCombine, err)
	}
	if f == nil {
		return nil, vectorErrorf(opCombine, ErrNilFunc)
	}

	out := make([]float64, len(x.data))
	for i := range out {
		out[i] = f(x.data[i], y.data[i])
	}

	return &Vector{data: out}, nil
}

// Reduce folds v from the left: acc = v[0], then acc = f(acc, v[i]) for
// i = 1..n-1. A one-element vector reduces to that element.
//
// Errors: ErrNilVector, ErrEmptyVector, ErrNilFunc.
// Complexity: O(n).
func Reduce(v *Vector, f BinaryFunc) (float64, error) {
	if err := ValidateMinLen(v, 1); err != nil {
		return 0, vectorErrorf(opReduce, err)
	}
	if f == nil {
		return 0, vectorErrorf(opReduce, ErrNilFunc)
	}

	acc := v.data[0]
	for _, x := range v.data[1:] {
		acc = f(acc, x)
	}

	return acc, nil
}

// Sum returns the sum of all elements. Errors as Reduce.
func Sum(v *Vector) (float64, error) {
	return Reduce(v, add)
}

// Mean returns the arithmetic mean. Errors as Reduce.
func Mean(v *Vector) (float64, error) {
	s, err := Sum(v)
	if err != nil {
		return 0, vectorErrorf(opMean, err)
	}

	return s / float64(len(v.data)), nil
}

// Max returns the largest element. NaN elements propagate as math.Max does.
func Max(v *Vector) (float64, error) {
	return Reduce(v, math.Max)
}

// Min returns the smallest element. NaN elements propagate as math.Min does.
func Min(v *Vector) (float64, error) {
	return Reduce(v, math.Min)
}

func add(a, b float64) float64 { return a + b }
