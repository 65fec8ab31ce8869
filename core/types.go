// SPDX-License-Identifier: MIT

// Package core defines the Graph, Edge, Entry and Definition types together
// with the sentinel errors shared by all lvroute packages.
//
// Errors:
//
//	ErrInvalidGraph - malformed Definition (fails at construction).
//	ErrUnknownNode  - a query referenced a node absent from the graph.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidGraph indicates malformed adjacency data passed to NewGraph.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrUnknownNode indicates an operation referenced a node that was not declared.
	ErrUnknownNode = errors.New("core: unknown node")
)

// UnitWeight is the cost of a single hop in an unweighted graph, and of
// every List edge in a weighted graph.
const UnitWeight int64 = 1

// Edge is a directed connection From → To with a non-negative Weight.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the traversal cost (UnitWeight for list-declared edges).
	Weight int64
}

// Entry is the adjacency of a single node in one of two forms.
//
// Neighbors is the unweighted form, Costs the weighted one. Exactly one of
// them may be set; the zero Entry is an empty neighbor list.
type Entry struct {
	Neighbors []string
	Costs     map[string]int64
}

// List returns an unweighted Entry pointing at the given neighbors.
func List(neighbors ...string) Entry {
	if neighbors == nil {
		neighbors = []string{}
	}

	return Entry{Neighbors: neighbors}
}

// Costs returns a weighted Entry. A nil map is treated as an empty cost map,
// which still marks the node (and therefore the graph) as weighted.
func Costs(costs map[string]int64) Entry {
	if costs == nil {
		costs = map[string]int64{}
	}

	return Entry{Costs: costs}
}

// IsWeighted reports whether the Entry is written in cost-map form.
func (e Entry) IsWeighted() bool { return e.Costs != nil }

// Definition maps each node ID to its outgoing connections.
// Every key is a node; every neighbor must also be a key.
type Definition map[string]Entry

// Option configures Graph construction.
type Option func(*buildOptions)

type buildOptions struct {
	strict bool
}

// WithStrict rejects Definitions that mix List and Costs entries with
// ErrInvalidGraph instead of treating the whole graph as weighted.
func WithStrict() Option {
	return func(o *buildOptions) { o.strict = true }
}

// Graph is an immutable directed graph over named nodes.
//
// vertices holds the sorted node IDs; adjacency keeps outgoing edges in
// deterministic neighbor order; weights indexes adjacency for O(1) lookups.
type Graph struct {
	weighted  bool
	vertices  []string
	adjacency map[string][]Edge
	weights   map[string]map[string]int64
	edgeCount int

	// def is the normalized input kept for Definition().
	def Definition

	fpOnce      sync.Once
	fingerprint uint64
}
