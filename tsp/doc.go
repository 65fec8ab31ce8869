// SPDX-License-Identifier: MIT

// Package tsp finds the minimum-cost order visiting every node of a graph
// exactly once (an open Hamiltonian path), scored on the complete graph of
// shortest-path costs held by an allpairs.Table.
//
// Algorithm:
//
//   - Brute force: permutations of the sorted node IDs are enumerated in
//     lexicographic order; each is scored by summing table costs between
//     consecutive nodes. The first permutation reaching the minimum wins.
//   - WithStart(id) anchors the order: only permutations beginning with id
//     are scored. The enumeration order of those is the same as when
//     filtering the full enumeration, so anchoring never changes which tie wins.
//   - Permutations containing an unreachable hop are skipped; partial sums
//     already at or above the best total are abandoned early (costs are
//     non-negative, so such a prefix can never win).
//
// Complexity:
//
//   - Time:  O(n! · n) worst case ((n-1)! · n anchored).
//   - Space: O(n²) for the cost matrix.
//
// Confirmation gate:
//
//	For n ≥ Threshold (default 50) the search refuses to start unless the
//	ConfirmFunc passed with WithConfirm approves the Estimate. The package
//	never prompts; a CLI collaborator decides. PermutationCount exposes the
//	count up front so drivers can ask before calling Solve.
//
// Errors:
//
//   - ErrEmptyGraph      the table has no nodes.
//   - core.ErrUnknownNode the start node is not in the table.
//   - ErrCancelled       confirmation was declined or missing.
//   - ErrNoTour          every permutation has an unreachable hop.
//   - ctx.Err()          the context was cancelled mid-search.
package tsp
