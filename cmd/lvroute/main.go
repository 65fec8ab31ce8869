// SPDX-License-Identifier: MIT

// Package main is the entry point for the lvroute route planner.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/katalvlaran/lvroute/cmd/lvroute/commands"
	"github.com/katalvlaran/lvroute/internal/app"
	_ "github.com/katalvlaran/lvroute/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Logger.Sync() }()

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, app.ErrNoRoute) {
			return 1
		}
		components.Logger.Error(err.Error())
		return 1
	}
	return 0
}
