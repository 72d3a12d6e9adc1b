package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/regression"
)

func TestReadDataset(t *testing.T) {
	ds, err := readDataset("testdata/plane.yaml")
	require.NoError(t, err)
	assert.Len(t, ds.X, 6)
	assert.Equal(t, []float64{1, 3, -2, 0, 2, -3}, ds.Y)
	assert.Equal(t, []float64{0, 0, 0}, ds.Weights)
	assert.Equal(t, 1e-10, ds.Tolerance)
	assert.Zero(t, ds.Iterations)
}

func TestReadDataset_Errors(t *testing.T) {
	_, err := readDataset("testdata/unknown_field.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "learning_rte")

	_, err = readDataset("testdata/empty.yaml")
	assert.ErrorContains(t, err, "empty dataset")

	_, err = readDataset(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegress_FlagsOverrideDataset(t *testing.T) {
	var r regressRunner
	cmd := &cobra.Command{Use: "regress"}
	r.setupFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--iterations", "5"}))

	ds := exampleDataset()
	r.applyDefaults(cmd, &ds)
	assert.Equal(t, 5, ds.Iterations, "explicit flag wins")
	assert.Equal(t, 0.0008, ds.LearningRate, "dataset value kept")

	ds = Dataset{}
	r.applyDefaults(cmd, &ds)
	assert.Equal(t, regression.DefaultLearningRate, ds.LearningRate, "flag default fills the gap")
	assert.Equal(t, regression.DefaultTolerance, ds.Tolerance)
}

func TestRegress_ValidationErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ragged.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x: [[1], [2, 3]]\ny: [1, 2]\nweights: [0, 0]\n"), 0o600))

	var r regressRunner
	cmd := &cobra.Command{Use: "regress"}
	r.setupFlags(cmd)

	err := r.execute(cmd, []string{path})
	assert.ErrorIs(t, err, regression.ErrDimensionMismatch)
}

func TestRegress_SeededWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x: [[0], [1], [2]]\ny: [1, 3, 5]\nlearning_rate: 0.1\n"), 0o600))

	var r regressRunner
	cmd := &cobra.Command{Use: "regress"}
	r.setupFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--seed", "3"}))

	var out1, out2 bytes.Buffer
	cmd.SetOut(&out1)
	require.NoError(t, r.execute(cmd, []string{path}))
	cmd.SetOut(&out2)
	require.NoError(t, r.execute(cmd, []string{path}))

	assert.Equal(t, out1.String(), out2.String())
	assert.Contains(t, out1.String(), "converged: true")
}
