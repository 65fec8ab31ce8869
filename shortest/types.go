// SPDX-License-Identifier: MIT

package shortest

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnreachable is returned when no route connects the requested nodes.
var ErrUnreachable = errors.New("shortest: destination unreachable")

// Algorithm selects the search strategy used by From and Between.
type Algorithm int

const (
	// Auto picks BFS for unweighted graphs and Dijkstra for weighted graphs.
	Auto Algorithm = iota
	// BreadthFirst forces BFS (unweighted graphs only).
	BreadthFirst
	// BestFirst forces Dijkstra, which treats unweighted edges as unit costs.
	BestFirst
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Auto:
		return "auto"
	case BreadthFirst:
		return "bfs"
	case BestFirst:
		return "dijkstra"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Option configures From and Between.
type Option func(*options)

type options struct {
	algo   Algorithm
	target string
	ctx    context.Context
}

// WithAlgorithm forces a search strategy instead of Auto.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algo = a }
}

// WithTarget lets From stop once id is finalized. The returned Tree then
// only guarantees exact results for id and nodes finalized before it.
func WithTarget(id string) Option {
	return func(o *options) { o.target = id }
}

// WithContext makes the search stop with ctx.Err() once ctx ends.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// PathResult is the cost and route from one node to another.
type PathResult struct {
	Cost  int64
	Route []string
}

// Tree is the single-source search result: best costs and predecessor links
// for every node reached from Source.
type Tree struct {
	Source string
	Cost   map[string]int64
	Prev   map[string]string
}

// Reachable reports whether id was reached from Source.
func (t *Tree) Reachable(id string) bool {
	_, ok := t.Cost[id]

	return ok
}

// Route rebuilds the Source → id route from predecessor links.
// Returns ErrUnreachable if id was not reached.
func (t *Tree) Route(id string) ([]string, error) {
	if !t.Reachable(id) {
		return nil, fmt.Errorf("%w: %s → %s", ErrUnreachable, t.Source, id)
	}
	rev := []string{id}
	for cur := id; cur != t.Source; {
		p, ok := t.Prev[cur]
		if !ok || len(rev) > len(t.Cost) {
			return nil, fmt.Errorf("shortest: broken predecessor chain at %q", cur)
		}
		rev = append(rev, p)
		cur = p
	}
	route := make([]string, len(rev))
	for i, v := range rev {
		route[len(rev)-1-i] = v
	}

	return route, nil
}

// Result returns the PathResult for id.
func (t *Tree) Result(id string) (PathResult, error) {
	route, err := t.Route(id)
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Cost: t.Cost[id], Route: route}, nil
}

// Results returns a PathResult for every reached node, keyed by destination.
// Complexity: O(V · L) where L is the longest route length.
func (t *Tree) Results() map[string]PathResult {
	out := make(map[string]PathResult, len(t.Cost))
	for id := range t.Cost {
		res, err := t.Result(id)
		if err != nil {
			continue
		}
		out[id] = res
	}

	return out
}
