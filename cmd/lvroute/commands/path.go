// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/app"
)

func (c *CLI) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path <start> <end>",
		Short: "Print the shortest route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Path(cmd.Context(), options(cmd), args[0], args[1])
		},
	}
}

func (c *CLI) newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Print the shortest route between every pair of stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.All(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Ask for start and end stations until input is closed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.REPL(cmd.Context(), options(cmd), app.ReplOptions{Watch: watch})
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Reload the graph when its file changes")

	return cmd
}
