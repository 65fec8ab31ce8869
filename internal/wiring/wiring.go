// SPDX-License-Identifier: MIT

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/katalvlaran/lvroute/internal/config"
	_ "github.com/katalvlaran/lvroute/internal/logger"
	// Register app nodes.
	_ "github.com/katalvlaran/lvroute/internal/app"
)
