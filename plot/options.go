// SPDX-License-Identifier: MIT
// Package: numlab/plot
//
// options.go - functional options for Grid and Vertical.

package plot

import (
	"time"

	"github.com/fatih/color"
)

// Defaults.
const (
	DefaultHeight       = 20
	DefaultLow          = -1.0
	DefaultHigh         = 1.0
	DefaultSymbol       = '*'
	DefaultBackground   = ' '
	DefaultAmplitude    = 20
	DefaultSamplingRate = 30
	DefaultDelay        = 50 * time.Millisecond
)

// Options configures the renderers. Grid reads Height, Low, High, Symbol,
// Background and Color; Vertical reads Amplitude, SamplingRate, Delay,
// Symbol and Color.
type Options struct {
	Height       int
	Low, High    float64
	Symbol       rune
	Background   rune
	Color        *color.Color // nil prints the symbol uncoloured
	Amplitude    int
	SamplingRate int
	Delay        time.Duration
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the renderer defaults.
func DefaultOptions() Options {
	return Options{
		Height:       DefaultHeight,
		Low:          DefaultLow,
		High:         DefaultHigh,
		Symbol:       DefaultSymbol,
		Background:   DefaultBackground,
		Amplitude:    DefaultAmplitude,
		SamplingRate: DefaultSamplingRate,
		Delay:        DefaultDelay,
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithHeight sets the number of grid rows (≥ 2).
func WithHeight(h int) Option {
	return func(o *Options) { o.Height = h }
}

// WithRange sets the value range mapped onto the grid rows. Values outside
// are clipped to the nearest edge.
func WithRange(lo, hi float64) Option {
	return func(o *Options) { o.Low, o.High = lo, hi }
}

// WithSymbol sets the marker rune.
func WithSymbol(r rune) Option {
	return func(o *Options) { o.Symbol = r }
}

// WithBackground sets the rune used for unmarked grid cells.
func WithBackground(r rune) Option {
	return func(o *Options) { o.Background = r }
}

// WithColor prints the marker through c.
func WithColor(c *color.Color) Option {
	return func(o *Options) { o.Color = c }
}

// WithAmplitude sets the Vertical wave amplitude in columns (> 0).
func WithAmplitude(a int) Option {
	return func(o *Options) { o.Amplitude = a }
}

// WithSamplingRate sets the Vertical lines per period (> 0).
func WithSamplingRate(sr int) Option {
	return func(o *Options) { o.SamplingRate = sr }
}

// WithDelay sets the pause between Vertical lines; 0 disables it.
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

// marker renders the symbol, coloured when a colour is configured.
func (o Options) marker() string {
	if o.Color == nil {
		return string(o.Symbol)
	}

	return o.Color.Sprint(string(o.Symbol))
}
