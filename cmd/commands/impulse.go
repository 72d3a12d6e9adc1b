// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/control"
	"github.com/katalvlaran/numlab/internal/logging"
	"github.com/katalvlaran/numlab/vector"
)

// CreateImpulseCommand creates the impulse command.
func CreateImpulseCommand() *cobra.Command {
	r := impulseRunner{zeta: 0.5, omega: 2, gain: 1, amplitude: 1, to: 5, points: 11}

	cmd := &cobra.Command{
		Use:   "impulse",
		Short: "impulse response of a second-order system",
		Long: `Describe the second-order system k·ωn²/(s²+2ζωn·s+ωn²) and print its impulse` +
			` response on evenly spaced times in [0, to].`,

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(cmd)

	return cmd
}

type impulseRunner struct {
	zeta, omega, gain, amplitude, to float64
	points                           int
}

func (r *impulseRunner) setupFlags(c *cobra.Command) {
	c.Flags().Float64Var(&r.zeta, "zeta", r.zeta, "damping ratio ζ")
	c.Flags().Float64Var(&r.omega, "omega", r.omega, "natural frequency ωn (> 0)")
	c.Flags().Float64Var(&r.gain, "gain", r.gain, "static gain k")
	c.Flags().Float64Var(&r.amplitude, "amplitude", r.amplitude, "impulse amplitude")
	c.Flags().Float64Var(&r.to, "to", r.to, "end time")
	c.Flags().IntVarP(&r.points, "points", "n", r.points, "number of time samples")
}

func (r *impulseRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *impulseRunner) execute(cmd *cobra.Command, _ []string) (err error) {
	sys, err := control.New(r.zeta, r.omega, r.gain)
	if err != nil {
		return err
	}
	t, err := vector.Linspace(0, r.to, r.points)
	if err != nil {
		return err
	}
	h, err := sys.Impulse(t, r.amplitude)
	if err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug("impulse response",
		zap.Stringer("regime", sys.Regime()),
		zap.Int("points", r.points))

	w := bufio.NewWriter(cmd.OutOrStdout())
	defer func() { err = multierr.Append(err, w.Flush()) }()

	p1, p2 := sys.Poles()
	fmt.Fprintf(w, "G(s) = %v\n", sys)
	fmt.Fprintf(w, "regime: %v\n", sys.Regime())
	fmt.Fprintf(w, "poles:  %.4f, %.4f\n", p1, p2)
	fmt.Fprintf(w, "%8s  %10s\n", "t", "h(t)")
	hs := h.ToSlice()
	for i, ti := range t.All() {
		fmt.Fprintf(w, "%8.4f  %10.4f\n", ti, hs[i])
	}

	return nil
}
