// SPDX-License-Identifier: MIT

package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Visitation states of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	// It wraps core.ErrUnknownNode so callers can match either.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrUnknownNode)

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Start is the vertex the walk began from.
	Start string

	// Order records vertices in the sequence they finished (post-order).
	Order []string

	// Depth maps each reached vertex ID to its tree depth from Start.
	Depth map[string]int

	// Parent maps each vertex ID to the vertex it was discovered from.
	// Start does not appear.
	Parent map[string]string
}
