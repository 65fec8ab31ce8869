// SPDX-License-Identifier: MIT

package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			format := os.Getenv("LVROUTE_LOG_FORMAT")
			if format == "" {
				format = "console"
			}
			return New("info", format)
		},
	})
}
