// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvroute/allpairs"
	"github.com/katalvlaran/lvroute/shortest"
)

// Legs expands an order into the shortest path of each consecutive hop, so
// callers can print the concrete route walked between visits.
//
// Errors: core.ErrUnknownNode or shortest.ErrUnreachable from the table.
func Legs(table *allpairs.Table, order []string) ([]shortest.PathResult, error) {
	if len(order) < 2 {
		return nil, nil
	}
	legs := make([]shortest.PathResult, 0, len(order)-1)
	for i := 0; i+1 < len(order); i++ {
		res, err := table.Get(order[i], order[i+1])
		if err != nil {
			return nil, fmt.Errorf("tsp: leg %d: %w", i, err)
		}
		legs = append(legs, res)
	}

	return legs, nil
}

// Walk flattens legs into a single node sequence, dropping the repeated
// joint node between consecutive legs.
func Walk(legs []shortest.PathResult) []string {
	var out []string
	for i, leg := range legs {
		route := leg.Route
		if i > 0 && len(route) > 0 {
			route = route[1:]
		}
		out = append(out, route...)
	}

	return out
}
