// SPDX-License-Identifier: MIT

// Package dijkstra implements best-first shortest-path search on a core.Graph
// with non-negative edge costs.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost route from a single source node to all
//     reachable nodes in O((V + E) log V) time.
//   - The frontier is a min-heap ordered by (tentative cost, node ID), so ties
//     are always broken by the lexicographically smaller node ID and the
//     result is deterministic for a fixed graph.
//   - Unweighted graphs are accepted: each edge costs core.UnitWeight, which
//     makes the result identical to a breadth-first search.
//
// Key features:
//
//   - Source(id):        required, the starting node.
//   - WithTarget(id):    stop as soon as id is finalized (early exit).
//   - WithReturnPath():  also return the predecessor map.
//   - WithMaxDistance(): do not finalize nodes farther than the cap.
//   - WithContext(ctx):  return ctx.Err() once ctx ends.
//
// Result shape:
//
//	dist[v] = cost of the best known route Source → v. Only discovered nodes
//	          appear; an absent key means v was not reached.
//	prev[v] = predecessor of v on that route ("" never appears; Source has no entry).
//
// When WithTarget stops the search early, dist and prev describe the state at
// that moment: the target and every node finalized before it are exact, other
// discovered nodes hold tentative costs.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source was not set.
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrVertexNotFound: Source or target is not in the graph (matches core.ErrUnknownNode).
//   - ErrBadMaxDistance: MaxDistance < 0.
//
// Negative costs cannot reach this package: core.NewGraph rejects them.
// An edge whose cost would push a route past math.MaxInt64 is ignored, so a
// node reachable only through such routes is reported as unreached.
//
// Thread safety:
//
//   - core.Graph is immutable, so concurrent Dijkstra runs on the same graph are safe.
package dijkstra
