// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// NewGraph validates def and builds an immutable Graph from it.
//
// Implementation:
//   - Stage 1: Apply options and collect the declared node set.
//   - Stage 2: Validate every entry (shape, neighbors, costs) and detect the
//     weighted flag: any Costs entry makes the graph weighted.
//   - Stage 3: Under WithStrict, reject a mix of List and Costs entries.
//   - Stage 4: Materialize adjacency in deterministic neighbor order.
//
// Errors:
//   - ErrInvalidGraph wrapped with the offending node, neighbor or cost.
//
// Complexity:
//   - Time O(V log V + E log d), Space O(V + E).
func NewGraph(def Definition, opts ...Option) (*Graph, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: sorted node set.
	vertices := make([]string, 0, len(def))
	for id := range def {
		if id == "" {
			return nil, fmt.Errorf("%w: empty node ID", ErrInvalidGraph)
		}
		vertices = append(vertices, id)
	}
	sort.Strings(vertices)

	// Stage 2: per-entry validation and weighted detection.
	var weightedEntries, listEntries int
	for _, id := range vertices {
		e := def[id]
		if e.Neighbors != nil && e.Costs != nil {
			return nil, fmt.Errorf("%w: node %q has both a neighbor list and a cost map", ErrInvalidGraph, id)
		}
		if e.IsWeighted() {
			weightedEntries++
			for to, w := range e.Costs {
				if _, ok := def[to]; !ok {
					return nil, fmt.Errorf("%w: node %q references undeclared neighbor %q", ErrInvalidGraph, id, to)
				}
				if w < 0 {
					return nil, fmt.Errorf("%w: edge %s→%s has negative cost %d", ErrInvalidGraph, id, to, w)
				}
			}

			continue
		}
		listEntries++
		for _, to := range e.Neighbors {
			if _, ok := def[to]; !ok {
				return nil, fmt.Errorf("%w: node %q references undeclared neighbor %q", ErrInvalidGraph, id, to)
			}
		}
	}

	// Stage 3: strict mode refuses mixed representations.
	if o.strict && weightedEntries > 0 && listEntries > 0 {
		return nil, fmt.Errorf("%w: %d weighted and %d unweighted entries mixed", ErrInvalidGraph, weightedEntries, listEntries)
	}

	// Stage 4: materialize.
	g := &Graph{
		weighted:  weightedEntries > 0,
		vertices:  vertices,
		adjacency: make(map[string][]Edge, len(vertices)),
		weights:   make(map[string]map[string]int64, len(vertices)),
		def:       make(Definition, len(vertices)),
	}
	for _, id := range vertices {
		e := def[id]
		edges, idx := buildEdges(id, e)
		g.adjacency[id] = edges
		g.weights[id] = idx
		g.edgeCount += len(edges)
		g.def[id] = copyEntry(e)
	}

	return g, nil
}

// buildEdges turns one entry into its outgoing edge slice and lookup index.
// List neighbors keep declared order (first occurrence wins); Costs
// neighbors are sorted by ID.
func buildEdges(from string, e Entry) ([]Edge, map[string]int64) {
	if e.IsWeighted() {
		targets := make([]string, 0, len(e.Costs))
		for to := range e.Costs {
			targets = append(targets, to)
		}
		sort.Strings(targets)

		edges := make([]Edge, 0, len(targets))
		idx := make(map[string]int64, len(targets))
		for _, to := range targets {
			edges = append(edges, Edge{From: from, To: to, Weight: e.Costs[to]})
			idx[to] = e.Costs[to]
		}

		return edges, idx
	}

	edges := make([]Edge, 0, len(e.Neighbors))
	idx := make(map[string]int64, len(e.Neighbors))
	for _, to := range e.Neighbors {
		if _, dup := idx[to]; dup {
			continue
		}
		edges = append(edges, Edge{From: from, To: to, Weight: UnitWeight})
		idx[to] = UnitWeight
	}

	return edges, idx
}

func copyEntry(e Entry) Entry {
	if e.IsWeighted() {
		costs := make(map[string]int64, len(e.Costs))
		for k, v := range e.Costs {
			costs[k] = v
		}

		return Entry{Costs: costs}
	}
	neighbors := make([]string, len(e.Neighbors))
	copy(neighbors, e.Neighbors)

	return Entry{Neighbors: neighbors}
}
