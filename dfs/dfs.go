// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// frame is one vertex on the explicit traversal stack.
type frame struct {
	id   string
	nbrs []string
	next int // index of the next neighbor to try
}

// DFS walks g depth-first from startID and records every vertex reachable
// from it. Neighbors are explored in the graph's declared order. The walk
// keeps its own stack, so long chains do not deepen the goroutine stack.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighborFetch.
//
// Complexity: Time O(V + E), Memory O(V).
func DFS(g *core.Graph, startID string) (*DFSResult, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	// 2. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Start:  startID,
		Order:  make([]string, 0, n),
		Depth:  make(map[string]int, n),
		Parent: make(map[string]string, n),
	}
	nbrs, err := g.NeighborIDs(startID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	res.Depth[startID] = 0
	stack := []frame{{id: startID, nbrs: nbrs}}

	// 3. Descend into the first unseen neighbor; finish a vertex once all
	//    of its neighbors have been tried.
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			res.Order = append(res.Order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		nid := top.nbrs[top.next]
		top.next++
		if _, seen := res.Depth[nid]; seen {
			continue
		}
		next, err := g.NeighborIDs(nid)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		res.Depth[nid] = res.Depth[top.id] + 1
		res.Parent[nid] = top.id
		stack = append(stack, frame{id: nid, nbrs: next})
	}

	return res, nil
}
