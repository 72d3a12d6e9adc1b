// SPDX-License-Identifier: MIT
// Package vector_test contains shared fixtures for the vector tests.

package vector_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/numlab/vector"
)

// approxTol is the relative/absolute tolerance used by approxEqual.
const approxTol = 1e-12

// approxEqual compares float slices up to floating-point rounding.
var approxEqual = cmpopts.EquateApprox(approxTol, approxTol)

// MustLinspace returns Linspace(start, end, n) or fails the test.
func MustLinspace(t testing.TB, start, end float64, n int) *vector.Vector {
	t.Helper()
	v, err := vector.Linspace(start, end, n)
	if err != nil {
		t.Fatalf("Linspace(%v,%v,%d): %v", start, end, n, err)
	}

	return v
}

// MustMap returns v.Map(f) or fails the test.
func MustMap(t testing.TB, v *vector.Vector, f vector.UnaryFunc) *vector.Vector {
	t.Helper()
	out, err := v.Map(f)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}

	return out
}

// assertValues fails the test when got differs from want beyond rounding.
func assertValues(t *testing.T, want []float64, got *vector.Vector) {
	t.Helper()
	if diff := cmp.Diff(want, got.ToSlice(), approxEqual); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}
