// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal, topological sort and
// strongly connected components on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, on an explicit stack. Reports post-order, depths and
//     parents of everything reachable from the start.
//   - TopologicalSort: linear order of an acyclic graph, ErrCycleDetected
//     otherwise. Cancellable through WithCancelContext.
//   - StronglyConnected: Tarjan's components, listed so that every edge
//     between components points forward.
//   - CanVisitAll: whether some order can reach every node once when hops
//     may follow any shortest path, i.e. whether a visit-all tour exists.
//
// Why:
//
//   - A visit-all tour over n nodes costs n! permutations to enumerate; the
//     component chain answers "is there any tour at all" in O(V + E).
//
// Complexity:
//
//   - DFS, TopologicalSort, StronglyConnected: Time O(V+E), Memory O(V).
//   - CanVisitAll: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph (wraps core.ErrUnknownNode)
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - ErrNeighborFetch        neighbor lookup failed
//   - context.Canceled        TopologicalSort cancelled via context
package dfs
