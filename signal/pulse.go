// SPDX-License-Identifier: MIT
// Package: numlab/signal
//
// pulse.go - rectangular and triangular pulse trains.
//
// The period fraction of sample i is frac = (i·f + φ/2π) mod 1, kept in [0,1).
//   • Rectangular: 1 while frac < duty, else 0.
//   • Triangular:  1 − |2·frac − 1|, a 0→1→0 ramp per period.

package signal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/vector"
)

// Pulse returns n samples of a pulse train scaled to [0, A], plus trend and
// noise.
//
// Errors: ErrBadSize, ErrBadParameter (including duty outside [0,1]).
// Complexity: O(n), no trigonometry.
func Pulse(n int, opts ...Option) (*vector.Vector, error) {
	c, err := prepare(opPulse, n, opts)
	if err != nil {
		return nil, err
	}
	if !(c.duty >= 0 && c.duty <= 1) {
		return nil, signalErrorf(opPulse, fmt.Errorf("duty %v: %w", c.duty, ErrBadParameter))
	}

	f := c.freq(n)
	offset := c.phase / tau

	return generate(n, c, func(i int) float64 {
		frac := math.Mod(float64(i)*f+offset, 1)
		if frac < 0 {
			frac++
		}
		if c.triangular {
			return 1 - math.Abs(2*frac-1)
		}
		if frac < c.duty {
			return 1
		}

		return 0
	})
}
