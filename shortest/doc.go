// SPDX-License-Identifier: MIT

// Package shortest is the single-source path finder used by the rest of
// lvroute. It hides the choice between breadth-first search (unweighted
// graphs) and Dijkstra (weighted graphs) behind one result type.
//
//	tree, err := shortest.From(g, "A")          // every reachable node
//	res, err := shortest.Between(g, "A", "C")   // one destination, early exit
//
// Contracts:
//
//   - Between(g, s, s) == PathResult{Cost: 0, Route: [s]}.
//   - Route[0] is the start, Route[len-1] the destination, and every
//     consecutive pair is an edge of g.
//   - Cost is the sum of edge weights along Route (hops for unweighted graphs).
//   - An unreached destination yields ErrUnreachable, never a finite cost.
//
// Errors:
//
//   - core.ErrUnknownNode  start or end was not declared.
//   - ErrUnreachable       no route exists; a normal result variant.
package shortest
