// SPDX-License-Identifier: MIT

// Package allpairs computes and memoizes shortest-path results from every
// node of a core.Graph to every node it can reach.
//
// A Resolver owns the cache for one immutable graph:
//
//	r := allpairs.New(g)
//	table, err := r.Table(ctx)         // computed on first call
//	res, err := r.Lookup(ctx, "A", "C") // O(1) map lookup afterwards
//
// The table is built lazily, exactly once. Concurrent first callers share a
// single computation (singleflight) and the finished table is published
// under a single-writer lock, so no caller ever observes a partial table.
// It is never invalidated: the graph cannot change. The build is cancelled
// only when every caller waiting on it has given up.
//
// Building runs shortest.From once per source. Sources are independent, so
// WithWorkers(n) fans them out over an errgroup; the result is identical to
// the sequential build.
package allpairs
