// SPDX-License-Identifier: MIT

// Package commands implements the CLI commands for lvroute.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/app"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// CLI represents the command line interface for lvroute.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lvroute",
		Short:         "Shortest routes and visit-all tours over a station graph",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("graph", "g", "", "Graph file (.json, .yaml or .yml)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default ./lvroute.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int("workers", 0, "Sources searched concurrently when building all routes")
	rootCmd.PersistentFlags().Int("threshold", 0, "Node count from which tours ask for confirmation")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject graphs mixing neighbor lists and cost maps")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPathCmd())
	rootCmd.AddCommand(c.newAllCmd())
	rootCmd.AddCommand(c.newTourCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newReplCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects cobra's own output (help, version). Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// options collects the persistent flags.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	graph, _ := flags.GetString("graph")
	cfg, _ := flags.GetString("config")
	level, _ := flags.GetString("log-level")
	workers, _ := flags.GetInt("workers")
	threshold, _ := flags.GetInt("threshold")
	strict, _ := flags.GetBool("strict")

	return app.Options{
		ConfigPath: cfg,
		GraphPath:  graph,
		LogLevel:   level,
		Workers:    workers,
		Threshold:  threshold,
		Strict:     strict,
	}
}
