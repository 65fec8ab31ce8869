// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over an unweighted core.Graph,
// returning hop-count distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order:  visit (dequeue) sequence
//   - Depth:  node → hop count from start
//   - Parent: node → predecessor in the BFS tree
//   - Optional early exit once a target node has been visited (WithTarget).
//   - Optional cancellation (WithContext), checked once per visited node.
//
// Determinism
//
//	Each level is expanded in ascending node ID order, so when several nodes
//	on one level reach the same neighbor, the smallest ID becomes its parent.
//	The BFS tree therefore does not depend on how neighbor lists are ordered.
//
// Relation to Dijkstra
//
//	With every edge costing one hop, BFS level order is exactly the (cost, ID)
//	order in which package dijkstra finalizes nodes, so Depth and Parent equal
//	the Dijkstra result on the same topology with unit costs.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V log V + E), the log factor from sorting each level
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist (also matches core.ErrUnknownNode).
//   - ErrTargetNotFound       if WithTarget names an undeclared node.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ctx.Err()               once the WithContext context ends.
package bfs
