// SPDX-License-Identifier: MIT
// Package: numlab/plot
//
// grid.go - character-grid rendering of a sampled curve.

package plot

import (
	"bufio"
	"io"
	"math"

	"github.com/katalvlaran/numlab/vector"
)

// Grid renders y as a Height×Len(y) character grid, highest row first.
// Implementation:
//   - Stage 1: Validate y and the options.
//   - Stage 2: For each column i, clip y[i] to [Low, High] and mark row
//     int((y-Low)·(Height-1)/(High-Low)).
//   - Stage 3: Emit rows from Height-1 down to 0, one line each.
//
// NaN samples leave their column blank.
//
// Errors: ErrNilVector, ErrEmptyVector, ErrBadParameter (Height < 2,
// Low ≥ High or a non-finite bound), or the first write error.
// Complexity: O(Height·n) time, O(n) extra space.
func Grid(w io.Writer, y *vector.Vector, opts ...Option) error {
	if y == nil {
		return plotErrorf(opGrid, ErrNilVector)
	}
	if y.Len() == 0 {
		return plotErrorf(opGrid, ErrEmptyVector)
	}
	o := newOptions(opts)
	if o.Height < 2 {
		return paramErrorf(opGrid, "height %d", o.Height)
	}
	if !(o.Low < o.High) || math.IsInf(o.Low, 0) || math.IsInf(o.High, 0) {
		return paramErrorf(opGrid, "range [%v, %v]", o.Low, o.High)
	}

	rows := make([]int, y.Len())
	scale := float64(o.Height-1) / (o.High - o.Low)
	for i, v := range y.All() {
		if math.IsNaN(v) {
			rows[i] = -1

			continue
		}
		v = math.Min(math.Max(v, o.Low), o.High)
		rows[i] = int((v - o.Low) * scale)
	}

	bw := bufio.NewWriter(w)
	mark := o.marker()
	for row := o.Height - 1; row >= 0; row-- {
		for _, r := range rows {
			if r == row {
				bw.WriteString(mark)
			} else {
				bw.WriteRune(o.Background)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
