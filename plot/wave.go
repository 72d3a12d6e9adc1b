// SPDX-License-Identifier: MIT
// Package: numlab/plot
//
// wave.go - direct sine-wave printers.
//
// Both printers truncate toward zero when mapping a sine value to a row or
// column, so a sample is marked at int(A·sin(...)), not at the rounded value.

package plot

import (
	"bufio"
	"context"
	"io"
	"math"
	"strings"
	"time"
)

// Horizontal limits (exclusive).
const (
	maxSamplingRate = 100
	maxCycles       = 16
	maxAmplitude    = 30
)

// Horizontal prints cycles periods of a sine wave sampled samplingRate times
// per period. Rows run from +amplitude down to -amplitude; column x is
// marked on the row equal to int(amplitude·sin(2πx/samplingRate)).
//
// Errors: ErrBadParameter unless 0 < samplingRate < 100, 0 < cycles < 16 and
// 0 < amplitude < 30; otherwise the first write error.
// Complexity: O(amplitude·samplingRate·cycles).
func Horizontal(w io.Writer, samplingRate, cycles, amplitude int) error {
	switch {
	case samplingRate <= 0 || samplingRate >= maxSamplingRate:
		return paramErrorf(opHorizontal, "sampling rate %d", samplingRate)
	case cycles <= 0 || cycles >= maxCycles:
		return paramErrorf(opHorizontal, "cycles %d", cycles)
	case amplitude <= 0 || amplitude >= maxAmplitude:
		return paramErrorf(opHorizontal, "amplitude %d", amplitude)
	}

	total := samplingRate * cycles
	marks := make([]int, total)
	for x := range marks {
		marks[x] = int(float64(amplitude) * math.Sin(2*math.Pi*float64(x)/float64(samplingRate)))
	}

	bw := bufio.NewWriter(w)
	for y := amplitude; y >= -amplitude; y-- {
		for _, m := range marks {
			if m == y {
				bw.WriteByte(DefaultSymbol)
			} else {
				bw.WriteByte(DefaultBackground)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Vertical prints lines rows of a sine wave running down the screen. Row i
// is int(A·(sin(2πi/SamplingRate)+1)) spaces followed by the symbol. Between
// rows it waits Delay, returning ctx.Err() as soon as ctx is done.
//
// Errors: ErrBadParameter for lines < 0 or non-positive Amplitude or
// SamplingRate; ctx.Err(); or the first write error.
func Vertical(ctx context.Context, w io.Writer, lines int, opts ...Option) error {
	o := newOptions(opts)
	switch {
	case lines < 0:
		return paramErrorf(opVertical, "lines %d", lines)
	case o.Amplitude <= 0:
		return paramErrorf(opVertical, "amplitude %d", o.Amplitude)
	case o.SamplingRate <= 0:
		return paramErrorf(opVertical, "sampling rate %d", o.SamplingRate)
	case o.Delay < 0:
		return paramErrorf(opVertical, "delay %v", o.Delay)
	}

	var timer *time.Timer
	if o.Delay > 0 {
		timer = time.NewTimer(o.Delay)
		defer timer.Stop()
	}

	mark := o.marker()
	amp := float64(o.Amplitude)
	for i := 0; i < lines; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		offset := int(amp * (math.Sin(2*math.Pi*float64(i)/float64(o.SamplingRate)) + 1))
		if _, err := io.WriteString(w, strings.Repeat(" ", offset)+mark+"\n"); err != nil {
			return err
		}
		if timer == nil || i == lines-1 {
			continue
		}
		timer.Reset(o.Delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return nil
}
