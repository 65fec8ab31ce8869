// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// From computes best costs and predecessor links from start to every node
// reachable in g (or up to the WithTarget node).
//
// Implementation:
//   - Stage 1: Validate start (and target) against g.
//   - Stage 2: Resolve Auto to BreadthFirst or BestFirst from g.Weighted().
//   - Stage 3: Run the engine and convert its output into a Tree.
//
// Errors:
//   - core.ErrUnknownNode for an undeclared start or target.
//   - bfs.ErrWeightedGraph when BreadthFirst is forced on a weighted graph.
//   - ctx.Err() when the WithContext context ends mid-search.
//
// Complexity:
//   - BFS: O(V + E); Dijkstra: O((V + E) log V).
func From(g *core.Graph, start string, opts ...Option) (*Tree, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil || !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", core.ErrUnknownNode, start)
	}
	if o.target != "" && !g.HasVertex(o.target) {
		return nil, fmt.Errorf("%w: end %q", core.ErrUnknownNode, o.target)
	}

	algo := o.algo
	if algo == Auto {
		algo = BreadthFirst
		if g.Weighted() {
			algo = BestFirst
		}
	}

	switch algo {
	case BreadthFirst:
		return fromBFS(g, start, o)
	case BestFirst:
		return fromDijkstra(g, start, o)
	default:
		return nil, fmt.Errorf("shortest: unsupported algorithm %s", algo)
	}
}

// Between answers a single (start, end) query with early exit.
// Returns ErrUnreachable when end is never finalized.
func Between(g *core.Graph, start, end string, opts ...Option) (PathResult, error) {
	tree, err := From(g, start, append(opts, WithTarget(end))...)
	if err != nil {
		return PathResult{}, err
	}

	return tree.Result(end)
}

func fromBFS(g *core.Graph, start string, o options) (*Tree, error) {
	bopts := []bfs.Option{bfs.WithContext(o.ctx)}
	if o.target != "" {
		bopts = append(bopts, bfs.WithTarget(o.target))
	}
	res, err := bfs.BFS(g, start, bopts...)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		Source: start,
		Cost:   make(map[string]int64, len(res.Depth)),
		Prev:   res.Parent,
	}
	for id, d := range res.Depth {
		t.Cost[id] = int64(d) * core.UnitWeight
	}

	return t, nil
}

func fromDijkstra(g *core.Graph, start string, o options) (*Tree, error) {
	dopts := []dijkstra.Option{dijkstra.Source(start), dijkstra.WithReturnPath(), dijkstra.WithContext(o.ctx)}
	if o.target != "" {
		dopts = append(dopts, dijkstra.WithTarget(o.target))
	}
	dist, prev, err := dijkstra.Dijkstra(g, dopts...)
	if err != nil {
		return nil, err
	}

	return &Tree{Source: start, Cost: dist, Prev: prev}, nil
}
