// SPDX-License-Identifier: MIT
// Package: numlab/vector
//
// errors.go - sentinel errors for the vector package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Operations attach context with vectorErrorf(op, ErrX), which keeps %w.
//   • No operation panics on user-supplied data.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned when a requested length is negative.
	ErrBadSize = errors.New("vector: invalid size")

	// ErrAllocation is returned when a requested length exceeds MaxLen and
	// therefore cannot be allocated.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrNilVector indicates that a nil *Vector was passed or used as receiver.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNilFunc indicates that a nil element function was supplied.
	ErrNilFunc = errors.New("vector: nil function")

	// ErrEmptyVector indicates that an operation needing at least one element
	// (Reduce, Mean, ...) received a zero-length vector.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrDimensionMismatch indicates that two operands differ in length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrTooFewPoints indicates that an operation needs more samples than given
	// (Linspace n<2, Gradient len<=2, Trapezoid len<2).
	ErrTooFewPoints = errors.New("vector: too few points")

	// ErrZeroStep indicates a zero step in Arange or a degenerate Linspace.
	ErrZeroStep = errors.New("vector: step must be non-zero")

	// ErrBadRange indicates an Arange whose step points away from end, or whose
	// computed length is zero.
	ErrBadRange = errors.New("vector: empty or inverted range")

	// ErrOutOfRange indicates an index outside [-Len, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf argument where a finite value is required.
	ErrNaNInf = errors.New("vector: NaN or Inf argument")
)

// Operation names used as error prefixes.
const (
	opEmpty            = "Empty"
	opZeros            = "Zeros"
	opLinspace         = "Linspace"
	opArange           = "Arange"
	opAt               = "At"
	opSet              = "Set"
	opApply            = "Apply"
	opMap              = "Map"
	opCombine          = "Combine"
	opReduce           = "Reduce"
	opMean             = "Mean"
	opGradient         = "Gradient"
	opTrapezoid        = "Trapezoid"
	opTrapezoidFunc    = "TrapezoidFunc"
	opStationaryPoints = "StationaryPoints"
)

// vectorErrorf prefixes err with the operation name, preserving errors.Is.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
