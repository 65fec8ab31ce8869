// SPDX-License-Identifier: MIT

// Package dijkstra implements best-first shortest-path search.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap order is (dist, id) so equal-cost frontier nodes are finalized in ID order.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We stop immediately after finalizing Target, when one is set.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Dijkstra computes shortest distances from the source node (Options.Source)
// to every node reachable in g.
//
// Returns:
//
//   - dist: map from node ID to its best known cost; unreached nodes are absent.
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//   - err:  error if inputs are invalid, or Ctx.Err() once Ctx ends.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
//  4. g must contain Source and, when set, Target (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.MaxDistance < 0 {
		return nil, nil, ErrBadMaxDistance
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if cfg.Target != "" && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 2) Prepare state. prev is always tracked; it is dropped at the end
	//    when the caller did not ask for it.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 3) Seed and run.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only.
	options Options           // Configuration options.
	dist    map[string]int64  // Maps node ID → current best cost from Source.
	prev    map[string]string // Maps node ID → predecessor on the best route.
	visited map[string]bool   // Tracks finalized nodes.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source cost to zero and pushes it onto the heap.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop. It repeatedly finalizes the cheapest frontier
// node and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - Target has just been finalized.
//   - Options.Ctx has ended.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		if err := r.options.Ctx.Err(); err != nil {
			return err
		}

		r.visited[u] = true
		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u and improves neighbor costs.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.To
		if r.visited[v] {
			continue
		}
		// A cost past MaxInt64 is not representable; treat the edge as absent.
		if e.Weight > math.MaxInt64-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only: the first route found at a given cost wins.
		if cur, seen := r.dist[v]; seen && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a node and its tentative distance from the source.
type nodeItem struct {
	id   string // node ID
	dist int64  // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node ID for deterministic ties.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
