// SPDX-License-Identifier: MIT

// Package cmdtest runs cobra commands in tests.
package cmdtest

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// Run executes cmd with args and returns what it wrote to stdout. Anything
// written to stderr, or an error from Execute, fails the test.
func Run(t *testing.T, cmd *cobra.Command, args ...string) []byte {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%v): %v", args, err)
	}
	if stderr.Len() > 0 {
		t.Fatalf("cmd.Execute(%v) wrote to stderr:\n%s", args, stderr.String())
	}

	return stdout.Bytes()
}
