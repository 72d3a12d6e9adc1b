// SPDX-License-Identifier: MIT

// Package cmd assembles the numlab command tree.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/numlab/cmd/commands"
	"github.com/katalvlaran/numlab/internal/logging"
)

// CreateRootCommand returns the numlab root command with every subcommand
// attached. The persistent --log-level flag controls the stderr logger that
// subcommands read from their context.
func CreateRootCommand() *cobra.Command {
	level := logging.LogLevelWarn

	cmd := &cobra.Command{
		Use:   "numlab",
		Short: "numlab is a small numerical-methods toolkit",
		Long: `numlab samples functions, differentiates and integrates them numerically, fits` +
			` linear models with gradient descent and draws waves as ASCII art.`,

		SilenceUsage: true,

		PersistentPreRun: func(c *cobra.Command, _ []string) {
			log := logging.New(level, c.ErrOrStderr())
			c.SetContext(logging.WithLogger(c.Context(), log))
		},
	}
	cmd.PersistentFlags().Var(&level, "log-level", fmt.Sprintf("log level %v", logging.Levels))

	cmd.AddCommand(commands.CreateIntegrateCommand())
	cmd.AddCommand(commands.CreateDeriveCommand())
	cmd.AddCommand(commands.CreateRegressCommand())
	cmd.AddCommand(commands.CreatePlotCommand())
	cmd.AddCommand(commands.CreateWaveCommand())
	cmd.AddCommand(commands.CreateImpulseCommand())

	return cmd
}

// Execute runs the root command until it finishes or the process is
// interrupted. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := CreateRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), err)
		stop()
		os.Exit(1)
	}
}
