// SPDX-License-Identifier: MIT

// Package core provides the immutable route graph consumed by every lvroute
// algorithm package.
//
// A Graph is built once from a Definition, a mapping from node ID to the
// node's outgoing connections. Each Entry is written in one of two forms:
//
//   - List("B", "C")                       unweighted, every hop costs 1
//   - Costs(map[string]int64{"B": 4})      weighted, explicit non-negative cost
//
// The weighted flag is fixed at construction:
//
//   - Any Costs entry makes the whole graph weighted. List entries of such a
//     graph contribute edges of cost 1.
//   - WithStrict() rejects a Definition mixing both forms instead.
//
// Construction fails fast with ErrInvalidGraph on malformed input:
//
//	empty node ID                    → ErrInvalidGraph
//	entry with both list and costs   → ErrInvalidGraph
//	neighbor not declared as a node  → ErrInvalidGraph
//	negative cost                    → ErrInvalidGraph
//	mixed forms under WithStrict()   → ErrInvalidGraph
//
// Queries:
//
//	Weighted() bool                          // O(1)
//	HasVertex(id) bool                       // O(1)
//	HasEdge(from, to) bool                   // O(1)
//	EdgeWeight(from, to) (int64, bool)       // O(1)
//	Neighbors(id) ([]Edge, error)            // O(d)
//	NeighborIDs(id) ([]string, error)        // O(d)
//	Vertices() []string                      // O(V), sorted
//	Edges() []Edge                           // O(E), sorted by (From, declared order)
//	VertexCount(), EdgeCount() int           // O(1)
//	Fingerprint() uint64                     // O(V+E) once, cached
//	Definition() Definition                  // O(V+E), deep copy
//
// Edges are directed: an Entry lists outgoing connections only. Neighbor
// order is deterministic. List entries keep their declared order with
// duplicates dropped, Costs entries are sorted by neighbor ID.
//
// A Graph is never mutated after NewGraph returns, so it is safe for
// concurrent readers without locking.
package core
