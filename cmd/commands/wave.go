// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/plot"
)

// CreateWaveCommand creates the wave command and its subcommands.
func CreateWaveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wave",
		Short: "print sine waves directly to the terminal",
	}
	cmd.AddCommand(createHorizontalCommand())
	cmd.AddCommand(createVerticalCommand())

	return cmd
}

func createHorizontalCommand() *cobra.Command {
	r := horizontalRunner{rate: 30, cycles: 1, amplitude: 10}

	cmd := &cobra.Command{
		Use:   "horizontal",
		Short: "print a sine wave left to right",

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(cmd)

	return cmd
}

type horizontalRunner struct {
	rate, cycles, amplitude int
}

func (r *horizontalRunner) setupFlags(c *cobra.Command) {
	c.Flags().IntVar(&r.rate, "rate", r.rate, "samples per period (1-99)")
	c.Flags().IntVar(&r.cycles, "cycles", r.cycles, "number of periods (1-15)")
	c.Flags().IntVar(&r.amplitude, "amplitude", r.amplitude, "amplitude in rows (1-29)")
}

func (r *horizontalRunner) run(cmd *cobra.Command, _ []string) {
	if err := plot.Horizontal(cmd.OutOrStdout(), r.rate, r.cycles, r.amplitude); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func createVerticalCommand() *cobra.Command {
	r := verticalRunner{
		lines:     100,
		rate:      plot.DefaultSamplingRate,
		amplitude: plot.DefaultAmplitude,
		delay:     plot.DefaultDelay,
	}

	cmd := &cobra.Command{
		Use:   "vertical",
		Short: "print a sine wave scrolling down the screen",
		Long:  `Print one line per time step. Interrupt stops the wave early.`,

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(cmd)

	return cmd
}

type verticalRunner struct {
	lines, rate, amplitude int
	delay                  time.Duration
}

func (r *verticalRunner) setupFlags(c *cobra.Command) {
	c.Flags().IntVarP(&r.lines, "lines", "n", r.lines, "number of lines to print")
	c.Flags().IntVar(&r.rate, "rate", r.rate, "lines per period")
	c.Flags().IntVar(&r.amplitude, "amplitude", r.amplitude, "amplitude in columns")
	c.Flags().DurationVar(&r.delay, "delay", r.delay, "pause between lines")
}

func (r *verticalRunner) run(cmd *cobra.Command, _ []string) {
	err := plot.Vertical(cmd.Context(), cmd.OutOrStdout(), r.lines,
		plot.WithSamplingRate(r.rate),
		plot.WithAmplitude(r.amplitude),
		plot.WithDelay(r.delay),
	)
	// An interrupt is the normal way to stop an endless scroll.
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
