// SPDX-License-Identifier: MIT
// Package: numlab/vector
//
// validators.go - single source of truth for shape checks.
//
// Every validator returns a plain sentinel; call sites wrap it with their
// own operation name via vectorErrorf. All checks are O(1) and allocate nothing.

package vector

// ValidateNotNil returns ErrNilVector if v is nil.
func ValidateNotNil(v *Vector) error {
	if v == nil {
		return ErrNilVector
	}

	return nil
}

// ValidateSameLen checks both operands are non-nil and of equal length.
// Order: NotNil(a) → NotNil(b) → length.
func ValidateSameLen(a, b *Vector) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMinLen checks v is non-nil and has at least n elements.
// A zero-length vector yields ErrEmptyVector when n == 1, ErrTooFewPoints otherwise.
func ValidateMinLen(v *Vector, n int) error {
	if v == nil {
		return ErrNilVector
	}
	if len(v.data) >= n {
		return nil
	}
	if n == 1 {
		return ErrEmptyVector
	}

	return ErrTooFewPoints
}

// validateLen rejects negative or unallocatable lengths.
func validateLen(n int) error {
	if n < 0 {
		return ErrBadSize
	}
	if n > MaxLen {
		return ErrAllocation
	}

	return nil
}
