// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numlab/internal/logging"
	"github.com/katalvlaran/numlab/plot"
	"github.com/katalvlaran/numlab/regression"
)

// Dataset is the YAML document read by the regress command. Omitted solver
// settings fall back to the command defaults; omitted weights are drawn
// from the seed.
type Dataset struct {
	X            [][]float64 `yaml:"x"`
	Y            []float64   `yaml:"y"`
	Weights      []float64   `yaml:"weights,omitempty"`
	LearningRate float64     `yaml:"learning_rate,omitempty"`
	Iterations   int         `yaml:"iterations,omitempty"`
	Tolerance    float64     `yaml:"tolerance,omitempty"`
}

// exampleDataset is used when no file is given.
func exampleDataset() Dataset {
	return Dataset{
		X:            [][]float64{{5}, {15}, {25}, {35}, {45}, {55}},
		Y:            []float64{5, 20, 14, 32, 22, 38},
		Weights:      []float64{0.5, 0.5},
		LearningRate: 0.0008,
		Iterations:   100_000,
		Tolerance:    1e-6,
	}
}

// readDataset strictly decodes a single YAML document from path.
func readDataset(path string) (ds Dataset, err error) {
	f, err := os.Open(path)
	if err != nil {
		return ds, err
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return ds, fmt.Errorf("%s: empty dataset", path)
		}

		return ds, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// CreateRegressCommand creates the regress command.
func CreateRegressCommand() *cobra.Command {
	var r regressRunner

	cmd := &cobra.Command{
		Use:   "regress [dataset.yaml]",
		Short: "fit a linear model with gradient descent",
		Long: `Fit a linear model to a dataset with full-batch gradient descent and print the` +
			` weights, the residuals and the cost. Without a file, a built-in six-sample` +
			` dataset is used.`,

		Args: cobra.MaximumNArgs(1),

		Run: r.run,
	}
	r.setupFlags(cmd)

	return cmd
}

type regressRunner struct {
	learningRate float64
	iterations   int
	tolerance    float64
	seed         int64
	history      int
}

func (r *regressRunner) setupFlags(c *cobra.Command) {
	c.Flags().Float64Var(&r.learningRate, "learning-rate", regression.DefaultLearningRate, "learning rate")
	c.Flags().IntVar(&r.iterations, "iterations", regression.DefaultMaxIterations, "maximum number of iterations")
	c.Flags().Float64Var(&r.tolerance, "tolerance", regression.DefaultTolerance, "convergence tolerance per weight step")
	c.Flags().Int64Var(&r.seed, "seed", 0, "seed for initial weights when the dataset has none")
	c.Flags().IntVar(&r.history, "history", 0, "print the cost every N iterations (0 disables)")
}

func (r *regressRunner) run(cmd *cobra.Command, args []string) {
	if err := r.execute(cmd, args); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (r *regressRunner) execute(cmd *cobra.Command, args []string) error {
	ds := exampleDataset()
	if len(args) == 1 {
		var err error
		if ds, err = readDataset(args[0]); err != nil {
			return err
		}
	}
	r.applyDefaults(cmd, &ds)

	if ds.Weights == nil {
		nFeatures := 0
		if len(ds.X) > 0 {
			nFeatures = len(ds.X[0])
		}
		w, err := regression.InitWeights(nFeatures, r.seed)
		if err != nil {
			return err
		}
		ds.Weights = w
	}

	res, err := regression.Fit(ds.X, ds.Y, ds.Weights,
		regression.WithLearningRate(ds.LearningRate),
		regression.WithMaxIterations(ds.Iterations),
		regression.WithTolerance(ds.Tolerance),
		regression.WithEpoch(r.history),
		regression.WithLogger(logging.FromContext(cmd.Context())),
	)
	if err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), res)
}

// applyDefaults fills unset dataset settings from the flags. Flags given on
// the command line override the dataset.
func (r *regressRunner) applyDefaults(cmd *cobra.Command, ds *Dataset) {
	fl := cmd.Flags()
	if ds.LearningRate == 0 || fl.Changed("learning-rate") {
		ds.LearningRate = r.learningRate
	}
	if ds.Iterations == 0 || fl.Changed("iterations") {
		ds.Iterations = r.iterations
	}
	if ds.Tolerance == 0 || fl.Changed("tolerance") {
		ds.Tolerance = r.tolerance
	}
}

// printPrecision is the number of decimals kept in printed results.
const printPrecision = 1e6

func round(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		r := math.Round(v*printPrecision) / printPrecision
		if r == 0 {
			r = 0 // drop the sign of -0
		}
		out[i] = r
	}

	return out
}

func writeResult(out io.Writer, res *regression.Result) (err error) {
	w := bufio.NewWriter(out)
	defer func() { err = multierr.Append(err, w.Flush()) }()

	fmt.Fprint(w, "weights:   ")
	if err := plot.FormatValues(w, round(res.Weights)); err != nil {
		return err
	}
	fmt.Fprint(w, "residuals: ")
	if err := plot.FormatValues(w, round(res.Residuals)); err != nil {
		return err
	}
	fmt.Fprintf(w, "cost:      %.6f\n", res.Cost)
	fmt.Fprintf(w, "converged: %v after %d iterations\n", res.Converged, res.Iterations)
	if len(res.CostHistory) > 0 {
		fmt.Fprint(w, "history:   ")
		return plot.FormatValues(w, round(res.CostHistory))
	}

	return nil
}
