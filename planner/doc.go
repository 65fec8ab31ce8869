// SPDX-License-Identifier: MIT

// Package planner is the single entry point over one route graph.
//
// A Planner owns the all-pairs Resolver of its graph, answers point queries
// from the cached table once it exists (and with an early-exit search before
// that), and runs the Hamiltonian search over the same table.
//
//	p := planner.New(g)
//	res, err := p.ShortestPath("A", "C")
//	tour, err := p.TourVisitingAll(ctx, "A", confirm)
//
// A Planner is safe for concurrent use.
package planner
