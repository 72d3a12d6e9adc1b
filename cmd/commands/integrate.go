// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/numlab/cmd/flags"
	"github.com/katalvlaran/numlab/internal/logging"
	"github.com/katalvlaran/numlab/vector"
)

// CreateIntegrateCommand creates the integrate command.
func CreateIntegrateCommand() *cobra.Command {
	r := integrateRunner{
		fn:     flags.NewFuncFlag("sin"),
		to:     flags.FloatFlag(math.Pi),
		points: 10_000,
	}

	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "integrate a function with the trapezoidal rule",
		Long: `Integrate a function over [from, to] with the trapezoidal rule, once on sampled` +
			` vectors and once directly on the function, and print both results.`,

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(cmd)

	return cmd
}

type integrateRunner struct {
	fn       flags.FuncFlag
	from, to flags.FloatFlag
	points   int
}

func (r *integrateRunner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.fn, "func", fmt.Sprintf("function to integrate (%v)", flags.FunctionNames()))
	c.Flags().Var(&r.from, "from", "lower bound")
	c.Flags().Var(&r.to, "to", "upper bound")
	c.Flags().IntVarP(&r.points, "points", "n", r.points, "number of sample points")
}

func (r *integrateRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *integrateRunner) execute(cmd *cobra.Command, _ []string) error {
	log := logging.FromContext(cmd.Context())
	a, b, f := r.from.Value(), r.to.Value(), r.fn.Value()

	x, err := vector.Linspace(a, b, r.points)
	if err != nil {
		return err
	}
	y, err := x.Map(f)
	if err != nil {
		return err
	}
	sampled, err := vector.Trapezoid(y, x)
	if err != nil {
		return err
	}
	direct, err := vector.TrapezoidFunc(f, a, b, r.points)
	if err != nil {
		return err
	}
	log.Debug("integrated",
		zap.Stringer("func", r.fn),
		zap.Float64("from", a),
		zap.Float64("to", b),
		zap.Int("points", r.points))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "integral of %s on [%.4f, %.4f] with %d points\n", r.fn, a, b, r.points)
	fmt.Fprintf(out, "sampled:     %.6f\n", sampled)
	fmt.Fprintf(out, "closed-form: %.6f\n", direct)

	return nil
}
