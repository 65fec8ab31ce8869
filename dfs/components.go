// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvroute/core"
)

// tarjan holds the state of one strongly connected components pass.
type tarjan struct {
	graph   *core.Graph
	index   map[string]int
	low     map[string]int
	onStack map[string]bool
	stack   []string
	next    int
	comps   [][]string
}

// StronglyConnected returns the strongly connected components of g. Each
// component is sorted; components are ordered so that every edge between
// two components goes from an earlier one to a later one.
//
// Complexity: O(V + E) time, O(V) memory.
func StronglyConnected(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	t := &tarjan{
		graph:   g,
		index:   make(map[string]int, len(verts)),
		low:     make(map[string]int, len(verts)),
		onStack: make(map[string]bool, len(verts)),
	}
	for _, v := range verts {
		if _, seen := t.index[v]; seen {
			continue
		}
		if err := t.connect(v); err != nil {
			return nil, err
		}
	}
	// Tarjan emits sinks first.
	for i, j := 0, len(t.comps)-1; i < j; i, j = i+1, j-1 {
		t.comps[i], t.comps[j] = t.comps[j], t.comps[i]
	}

	return t.comps, nil
}

func (t *tarjan) connect(v string) error {
	t.index[v] = t.next
	t.low[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	nbrs, err := t.graph.NeighborIDs(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, w := range nbrs {
		if _, seen := t.index[w]; !seen {
			if err := t.connect(w); err != nil {
				return err
			}
			t.low[v] = min(t.low[v], t.low[w])
		} else if t.onStack[w] {
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	if t.low[v] != t.index[v] {
		return nil
	}
	// v is a root: pop its component.
	var comp []string
	for {
		last := len(t.stack) - 1
		w := t.stack[last]
		t.stack = t.stack[:last]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	sort.Strings(comp)
	t.comps = append(t.comps, comp)

	return nil
}

// CanVisitAll reports whether an order exists that visits every node of g
// once when each hop may follow any path, optionally anchored at start.
//
// This holds iff the component DAG is a single chain (every component has
// an edge into the next one) and, when anchored, every node is reachable
// from start. An empty graph has no such order.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound.
func CanVisitAll(g *core.Graph, start string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if start != "" {
		reach, err := DFS(g, start)
		if err != nil {
			return false, err
		}
		if len(reach.Depth) < g.VertexCount() {
			return false, nil
		}
	}
	comps, err := StronglyConnected(g)
	if err != nil {
		return false, err
	}
	if len(comps) == 0 {
		return false, nil
	}
	for i := 0; i+1 < len(comps); i++ {
		linked, err := hasEdgeInto(g, comps[i], comps[i+1])
		if err != nil {
			return false, err
		}
		if !linked {
			return false, nil
		}
	}

	return true, nil
}

// hasEdgeInto reports whether any node of from has an edge into to.
func hasEdgeInto(g *core.Graph, from, to []string) (bool, error) {
	target := make(map[string]bool, len(to))
	for _, id := range to {
		target[id] = true
	}
	for _, id := range from {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return false, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, n := range nbrs {
			if target[n] {
				return true, nil
			}
		}
	}

	return false, nil
}
