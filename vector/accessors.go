package vector

import (
	"iter"
	"strconv"
	"strings"
)

// Len returns the number of elements. A nil vector has length 0.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns the element at index i. Negative indices count from the end,
// so At(-1) is the last element.
//
// Errors: ErrNilVector, ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	idx, err := v.index(i)
	if err != nil {
		return 0, vectorErrorf(opAt, err)
	}

	return v.data[idx], nil
}

// Set stores x at index i. Negative indices count from the end.
//
// Errors: ErrNilVector, ErrOutOfRange.
func (v *Vector) Set(i int, x float64) error {
	idx, err := v.index(i)
	if err != nil {
		return vectorErrorf(opSet, err)
	}
	v.data[idx] = x

	return nil
}

// index resolves a possibly negative index into [0, Len).
func (v *Vector) index(i int) (int, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	n := len(v.data)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, ErrOutOfRange
	}

	return i, nil
}

// All returns an iterator over (index, value) pairs in index order.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if v == nil {
			return
		}
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the elements. The caller owns the result.
func (v *Vector) ToSlice() []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy of v, or nil if v is nil.
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}

	return FromSlice(v.data)
}

// String formats v as "[a, b, c]" using %g, breaking the line after every
// ten values. A nil vector prints as "[]".
func (v *Vector) String() string {
	if v == nil {
		return "[]"
	}

	var sb strings.Builder
	sb.WriteByte('[')
	n := len(v.data)
	for i, x := range v.data {
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		if i+1 < n {
			sb.WriteString(", ")
			if (i+1)%printLineWidth == 0 {
				sb.WriteByte('\n')
			}
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
