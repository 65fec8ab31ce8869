// SPDX-License-Identifier: MIT

// Package core: read-only Graph queries.
//
// The Graph is immutable, so none of these methods lock. Slices handed back
// to callers are fresh copies; mutating them never affects the Graph.

package core

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Weighted reports whether at least one entry of the Definition was a cost map.
// Complexity: O(1).
func (g *Graph) Weighted() bool { return g.weighted }

// HasVertex reports whether id was declared (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	_, ok := g.adjacency[id]

	return ok
}

// HasEdge reports whether a directed edge from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.weights[from][to]

	return ok
}

// EdgeWeight returns the cost of from → to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (int64, bool) {
	w, ok := g.weights[from][to]

	return w, ok
}

// Neighbors returns the outgoing edges of id in deterministic order.
// For unweighted graphs every Weight is UnitWeight.
// Returns ErrUnknownNode if id was not declared.
// Complexity: O(d).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// NeighborIDs returns the destinations of id's outgoing edges, in the same
// order as Neighbors.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out, nil
}

// Vertices returns all node IDs sorted lexicographically.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns every edge grouped by source (sorted) and in neighbor order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, id := range g.vertices {
		out = append(out, g.adjacency[id]...)
	}

	return out
}

// VertexCount returns the number of declared nodes.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Definition returns a deep copy of the adjacency the Graph was built from.
// Complexity: O(V + E).
func (g *Graph) Definition() Definition {
	out := make(Definition, len(g.def))
	for id, e := range g.def {
		out[id] = copyEntry(e)
	}

	return out
}

// Fingerprint returns a stable 64-bit digest of the graph's topology,
// weights and weighted flag. Identical Definitions always produce the same
// value; it is computed on first use and cached.
// Complexity: O(V + E) on first call, O(1) afterwards.
func (g *Graph) Fingerprint() uint64 {
	g.fpOnce.Do(func() {
		d := xxhash.New()
		buf := make([]byte, 0, 64)
		if g.weighted {
			buf = append(buf, 'w')
		} else {
			buf = append(buf, 'u')
		}
		for _, id := range g.vertices {
			buf = append(buf, 0x1e)
			buf = append(buf, id...)
			for _, e := range g.adjacency[id] {
				buf = append(buf, 0x1f)
				buf = append(buf, e.To...)
				buf = append(buf, ':')
				buf = strconv.AppendInt(buf, e.Weight, 10)
			}
			_, _ = d.Write(buf)
			buf = buf[:0]
		}
		_, _ = d.Write(buf)
		g.fingerprint = d.Sum64()
	})

	return g.fingerprint
}
