// SPDX-License-Identifier: MIT
// Package: numlab/signal
//
// errors.go - sentinel errors.

package signal

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a requested sample count below 1.
	ErrBadSize = errors.New("signal: sample count must be positive")

	// ErrBadParameter indicates an option value outside its domain.
	ErrBadParameter = errors.New("signal: bad parameter")
)

const (
	opSine   = "Sine"
	opCosine = "Cosine"
	opChirp  = "Chirp"
	opPulse  = "Pulse"
)

func signalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
