// SPDX-License-Identifier: MIT

package allpairs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/shortest"
)

// Table maps every source node to the PathResult of each node it reaches.
// Tables are read-only once built; accessors hand out copies of routes.
type Table struct {
	// Fingerprint identifies the graph the table was computed from.
	Fingerprint uint64

	sources []string
	paths   map[string]map[string]shortest.PathResult
}

// Sources returns the source nodes in sorted order.
func (t *Table) Sources() []string {
	out := make([]string, len(t.sources))
	copy(out, t.sources)

	return out
}

// Len returns the number of sources.
func (t *Table) Len() int { return len(t.sources) }

// Get returns the shortest path start → end.
//
// Errors:
//   - core.ErrUnknownNode if start or end is not a node of the graph.
//   - shortest.ErrUnreachable if end cannot be reached from start.
//
// Complexity: O(1) lookup plus O(L) to copy the route.
func (t *Table) Get(start, end string) (shortest.PathResult, error) {
	row, ok := t.paths[start]
	if !ok {
		return shortest.PathResult{}, fmt.Errorf("%w: start %q", core.ErrUnknownNode, start)
	}
	if _, ok := t.paths[end]; !ok {
		return shortest.PathResult{}, fmt.Errorf("%w: end %q", core.ErrUnknownNode, end)
	}
	res, ok := row[end]
	if !ok {
		return shortest.PathResult{}, fmt.Errorf("%w: %s → %s", shortest.ErrUnreachable, start, end)
	}

	return copyResult(res), nil
}

// Cost returns the shortest-path cost start → end and whether end is reachable.
// It never allocates, which makes it suitable for hot loops.
func (t *Table) Cost(start, end string) (int64, bool) {
	res, ok := t.paths[start][end]

	return res.Cost, ok
}

// From returns a copy of every result reachable from start, keyed by destination.
func (t *Table) From(start string) (map[string]shortest.PathResult, error) {
	row, ok := t.paths[start]
	if !ok {
		return nil, fmt.Errorf("%w: start %q", core.ErrUnknownNode, start)
	}
	out := make(map[string]shortest.PathResult, len(row))
	for dst, res := range row {
		out[dst] = copyResult(res)
	}

	return out, nil
}

func copyResult(res shortest.PathResult) shortest.PathResult {
	route := make([]string, len(res.Route))
	copy(route, res.Route)

	return shortest.PathResult{Cost: res.Cost, Route: route}
}
