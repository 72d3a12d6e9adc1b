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

// CreateDeriveCommand creates the derive command.
func CreateDeriveCommand() *cobra.Command {
	r := deriveRunner{
		fn:     flags.NewFuncFlag("sin"),
		to:     flags.FloatFlag(2 * math.Pi),
		points: 10_000,
	}

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "find stationary points of a function",
		Long: `Sample a function on [from, to], differentiate it numerically and print every` +
			` point where the derivative changes sign.`,

		Args: cobra.NoArgs,

		Run: r.run,
	}
	r.setupFlags(cmd)

	return cmd
}

type deriveRunner struct {
	fn       flags.FuncFlag
	from, to flags.FloatFlag
	points   int
}

func (r *deriveRunner) setupFlags(c *cobra.Command) {
	c.Flags().Var(&r.fn, "func", fmt.Sprintf("function to differentiate (%v)", flags.FunctionNames()))
	c.Flags().Var(&r.from, "from", "lower bound")
	c.Flags().Var(&r.to, "to", "upper bound")
	c.Flags().IntVarP(&r.points, "points", "n", r.points, "number of sample points")
}

func (r *deriveRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *deriveRunner) execute(cmd *cobra.Command, _ []string) error {
	x, err := vector.Linspace(r.from.Value(), r.to.Value(), r.points)
	if err != nil {
		return err
	}
	y, err := x.Map(r.fn.Value())
	if err != nil {
		return err
	}
	points, err := vector.StationaryPoints(y, x)
	if err != nil {
		return err
	}
	logging.FromContext(cmd.Context()).Debug("derived",
		zap.Stringer("func", r.fn),
		zap.Int("points", r.points),
		zap.Int("stationary", len(points)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "stationary points of %s on [%.4f, %.4f]: %d\n",
		r.fn, r.from.Value(), r.to.Value(), len(points))
	for _, p := range points {
		fmt.Fprintf(out, "x=%.4f y=%.4f\n", p.X, p.Y)
	}

	return nil
}
