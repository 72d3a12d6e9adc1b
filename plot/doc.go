// SPDX-License-Identifier: MIT

// Package plot renders vectors and waves as plain text.
//
// Grid draws a sampled curve on a fixed-height character grid, one column per
// sample. Horizontal and Vertical print sine waves directly, without a
// backing grid: Horizontal row by row, Vertical one line per time step with
// an optional delay between lines. FormatValues prints a slice of numbers in
// bracketed, comma-separated rows of ten.
//
// Nothing in this package mutates its inputs. Output goes to an io.Writer
// and the first write error is returned.
package plot
