// SPDX-License-Identifier: MIT

// Package lvroute answers route questions over a static station map:
// the cheapest route between two stations, every such route at once, and
// the cheapest order in which to visit all of them.
//
// Layout:
//
//	core/       immutable Graph built from a Definition (lists or cost maps)
//	bfs/        hop-count search for unweighted graphs
//	dijkstra/   best-first search for weighted graphs
//	shortest/   picks BFS or Dijkstra and rebuilds routes
//	allpairs/   lazy, memoized all-pairs table
//	tsp/        exhaustive visit-all search with a confirmation gate
//	dfs/        traversal, topological order, strong components
//	planner/    one entry point tying the above together
//	graphfile/  JSON and YAML graph files
//	builder/    reproducible synthetic graphs
//	cmd/lvroute the command line tool
//
// Quick start:
//
//	g, _ := core.NewGraph(core.Definition{
//		"A": core.List("B"),
//		"B": core.List("C"),
//		"C": core.List(),
//	})
//	p := planner.New(g)
//	res, _ := p.ShortestPath("A", "C") // Cost 2, Route [A B C]
//
// Graphs are directed. A Definition written only with neighbor lists is
// unweighted and every hop costs 1; any cost map makes the graph weighted.
package lvroute
