package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/vector"
)

func TestAtSet_NegativeIndex(t *testing.T) {
	v := vector.FromSlice([]float64{10, 20, 30})

	x, err := v.At(-1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, x)

	require.NoError(t, v.Set(-3, 5))
	x, _ = v.At(0)
	assert.Equal(t, 5.0, x)
}

func TestAtSet_OutOfRange(t *testing.T) {
	v := vector.FromSlice([]float64{1, 2})

	_, err := v.At(2)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-3)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	assert.ErrorIs(t, v.Set(5, 1), vector.ErrOutOfRange)

	var nilVec *vector.Vector
	_, err = nilVec.At(0)
	assert.ErrorIs(t, err, vector.ErrNilVector)
	assert.Equal(t, 0, nilVec.Len())
}

func TestAll_IteratesInOrder(t *testing.T) {
	v := vector.FromSlice([]float64{3, 1, 4})
	var idx []int
	var vals []float64
	for i, x := range v.All() {
		idx = append(idx, i)
		vals = append(vals, x)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []float64{3, 1, 4}, vals)

	// Early break must stop the iteration.
	count := 0
	for range v.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestClone_IsIndependent(t *testing.T) {
	v := vector.FromSlice([]float64{1, 2, 3})
	c := v.Clone()
	require.NoError(t, c.Set(0, 9))
	x, _ := v.At(0)
	assert.Equal(t, 1.0, x)

	var nilVec *vector.Vector
	assert.Nil(t, nilVec.Clone())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 2.5, -3]", vector.FromSlice([]float64{1, 2.5, -3}).String())
	assert.Equal(t, "[]", vector.FromSlice(nil).String())

	var nilVec *vector.Vector
	assert.Equal(t, "[]", nilVec.String())

	v, err := vector.Arange(0, 12, 1)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 2, 3, 4, 5, 6, 7, 8, 9, \n10, 11]", v.String())
}
