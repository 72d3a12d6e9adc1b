// SPDX-License-Identifier: MIT
// Package: numlab/plot
//
// errors.go - sentinel errors.

package plot

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector indicates a nil input vector.
	ErrNilVector = errors.New("plot: nil vector")

	// ErrEmptyVector indicates a zero-length input vector.
	ErrEmptyVector = errors.New("plot: empty vector")

	// ErrBadParameter indicates a size, range or rate outside its domain.
	ErrBadParameter = errors.New("plot: bad parameter")
)

const (
	opGrid       = "Grid"
	opHorizontal = "Horizontal"
	opVertical   = "Vertical"
)

func plotErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func paramErrorf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrBadParameter)
}
