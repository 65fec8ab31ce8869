// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop count from a start node,
// with an optional target for early exit and cancellation via context.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvroute/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// errTargetReached stops the main loop once the target has been visited.
var errTargetReached = errors.New("bfs: target reached")

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrTargetNotFound for an undeclared target, ErrWeightedGraph for weighted
// graphs, or the context error once WithContext's ctx ends.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate start and target
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	if o.Target != "" && !g.HasVertex(o.Target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, o.Target)
	}
	// Disallow weighted graphs
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil && !errors.Is(err, errTargetReached) {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id discovered at depth d, records its parent and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue one level at a time until empty, error, target
// or cancellation. Each level is expanded in ascending ID order, so among
// equal-hop parents the smallest ID wins, matching dijkstra's (dist, id)
// heap order on unit costs.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		level := w.queue
		w.queue = make([]queueItem, 0, len(level))
		sort.Slice(level, func(i, j int) bool { return level[i].id < level[j].id })

		for _, item := range level {
			// cancellation check (once per node)
			select {
			case <-w.ctx.Done():
				return w.ctx.Err()
			default:
			}

			w.res.Order = append(w.res.Order, item.id)
			if item.id == w.opts.Target {
				return errTargetReached
			}
			if err := w.enqueueNeighbors(item); err != nil {
				return err
			}
		}
	}

	return nil
}

// enqueueNeighbors enqueues each undiscovered neighbor one hop deeper.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %q: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		// first time seen?
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
