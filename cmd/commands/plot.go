// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/cmd/flags"
	"github.com/katalvlaran/numlab/internal/logging"
	"github.com/katalvlaran/numlab/plot"
	"github.com/katalvlaran/numlab/signal"
	"github.com/katalvlaran/numlab/vector"
)

// CreatePlotCommand creates the plot command.
func CreatePlotCommand() *cobra.Command {
	r := plotRunner{
		wave:   flags.NewEnumFlag("sine", "sine", "cosine", "chirp", "pulse"),
		width:  60,
		height: plot.DefaultHeight,
		cycles: 1,
	}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "draw a waveform on a character grid",
		Long: `Generate a waveform with one sample per column and draw it as ASCII art.` +
			` With --output the grid goes to a file; if the file cannot be created it is` +
			` printed to stdout instead.`,

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(cmd)

	return cmd
}

type plotRunner struct {
	wave          flags.EnumFlag
	width, height int
	cycles        float64
	color         bool
	output        string
}

func (r *plotRunner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.wave, "wave", "waveform to draw")
	c.Flags().IntVarP(&r.width, "width", "w", r.width, "number of columns (samples)")
	c.Flags().IntVar(&r.height, "height", r.height, "number of rows")
	c.Flags().Float64Var(&r.cycles, "cycles", r.cycles, "periods across the width (sine, cosine, pulse)")
	c.Flags().BoolVar(&r.color, "color", false, "colour the curve")
	c.Flags().StringVarP(&r.output, "output", "o", "", "write the grid to this file")
}

func (r *plotRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *plotRunner) execute(cmd *cobra.Command, _ []string) (err error) {
	if r.width < 1 {
		return fmt.Errorf("width must be positive, got %d", r.width)
	}
	var (
		y    *vector.Vector
		freq = signal.WithFrequency(r.cycles / float64(r.width))
	)
	switch r.wave.Value() {
	case "sine":
		y, err = signal.Sine(r.width, freq)
	case "cosine":
		y, err = signal.Cosine(r.width, freq)
	case "chirp":
		y, err = signal.Chirp(r.width)
	case "pulse":
		y, err = signal.Pulse(r.width, freq)
	}
	if err != nil {
		return err
	}

	opts := []plot.Option{plot.WithHeight(r.height)}
	if r.color {
		c := color.New(color.FgGreen)
		c.EnableColor()
		opts = append(opts, plot.WithColor(c))
	}

	out := cmd.OutOrStdout()
	if r.output != "" {
		f, ferr := os.Create(r.output)
		if ferr != nil {
			logging.FromContext(cmd.Context()).Warn("cannot create output file, printing to stdout",
				zap.String("path", r.output), zap.Error(ferr))
		} else {
			defer func() { err = multierr.Append(err, f.Close()) }()
			out = f
		}
	}

	w := bufio.NewWriter(out)
	defer func() { err = multierr.Append(err, w.Flush()) }()

	return plot.Grid(w, y, opts...)
}
