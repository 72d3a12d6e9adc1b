// SPDX-License-Identifier: MIT
// Package: numlab/control
//
// errors.go - sentinel errors.

package control

import (
	"errors"
	"fmt"
)

var (
	// ErrBadFrequency indicates a natural frequency that is not positive and finite.
	ErrBadFrequency = errors.New("control: natural frequency must be positive")

	// ErrBadParameter indicates a non-finite damping ratio, gain or amplitude.
	ErrBadParameter = errors.New("control: bad parameter")

	// ErrUnstable is returned by Impulse for negative damping.
	ErrUnstable = errors.New("control: unstable system")
)

const (
	opNew     = "New"
	opImpulse = "Impulse"
)

func controlErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
