// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"

	"github.com/katalvlaran/lvroute/allpairs"
	"github.com/katalvlaran/lvroute/core"
)

// validate checks the table and the start node and returns the sorted IDs
// together with the index of the start (-1 when unanchored).
// Complexity: O(n).
func validate(table *allpairs.Table, start string) ([]string, int, error) {
	if table == nil || table.Len() == 0 {
		return nil, -1, ErrEmptyGraph
	}
	ids := table.Sources()
	if start == "" {
		return ids, -1, nil
	}
	for i, id := range ids {
		if id == start {
			return ids, i, nil
		}
	}

	return nil, -1, fmt.Errorf("%w: start %q", core.ErrUnknownNode, start)
}

// costMatrix copies table costs into a dense matrix indexed like ids.
// Unreachable pairs are marked with unreachable.
// Complexity: O(n²).
func costMatrix(table *allpairs.Table, ids []string) [][]int64 {
	m := make([][]int64, len(ids))
	for i, from := range ids {
		m[i] = make([]int64, len(ids))
		for j, to := range ids {
			c, ok := table.Cost(from, to)
			if !ok {
				c = unreachable
			}
			m[i][j] = c
		}
	}

	return m
}
