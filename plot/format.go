// SPDX-License-Identifier: MIT
// Package: numlab/plot
//
// format.go - bracketed number lists.

package plot

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// valuesPerLine is the number of values printed before a line break.
const valuesPerLine = 10

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// FormatValues writes values as "[v0, v1, ...]\n" using %v. After every
// tenth value that is not the last, the separator is followed by "\n ".
func FormatValues[T Number](w io.Writer, values []T) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	for i, v := range values {
		fmt.Fprintf(bw, "%v", v)
		if i+1 == len(values) {
			break
		}
		bw.WriteString(", ")
		if (i+1)%valuesPerLine == 0 {
			bw.WriteString("\n ")
		}
	}
	bw.WriteString("]\n")

	return bw.Flush()
}
