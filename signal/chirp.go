// SPDX-License-Identifier: MIT
// Package: numlab/signal
//
// chirp.go - linear frequency sweep.
//
// Model:
//   - f_i   = f0 + (f1 − f0)·i/(n−1)   (cycles/sample; f_0 = f0 when n = 1)
//   - θ_0   = φ, θ_{i+1} = θ_i + 2π·f_i
//   - y_i   = A·sin(θ_{i+1}) + trend·i + noise
//
// The phase advances before it is sampled, so sample 0 is already one step
// into the sweep.

package signal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/vector"
)

// Chirp returns n samples of a linear chirp from f0 to f1 (WithSweep;
// defaults 0.02 → 0.25 cycles/sample).
//
// Errors: ErrBadSize, ErrBadParameter (including non-positive f0 or f1).
// Complexity: O(n).
func Chirp(n int, opts ...Option) (*vector.Vector, error) {
	c, err := prepare(opChirp, n, opts)
	if err != nil {
		return nil, err
	}
	if !positiveFinite(c.f0) || !positiveFinite(c.f1) {
		return nil, signalErrorf(opChirp,
			fmt.Errorf("sweep %v→%v: %w", c.f0, c.f1, ErrBadParameter))
	}

	theta := c.phase

	return generate(n, c, func(i int) float64 {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		theta += tau * (c.f0 + (c.f1-c.f0)*t)

		return math.Sin(theta)
	})
}
