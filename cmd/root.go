package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/grid/internal/cli/replay"
	"github.com/thenoetrevino/grid/internal/cli/setup"
	"github.com/thenoetrevino/grid/internal/launcher"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var opts launcher.Options

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Grid - A terminal kanban board",
		Long: `Grid is a terminal kanban board: projects hold columns, columns hold cards.

Running grid with no subcommand opens the board. The board lives in memory for
the length of the session; use --load to start from an action script.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Script, "load", "", "Replay an action script into the board before it opens")

	cmd.AddCommand(replay.ReplayCmd())
	cmd.AddCommand(setup.ConfigCmd())

	return cmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
