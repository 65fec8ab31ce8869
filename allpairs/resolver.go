// SPDX-License-Identifier: MIT

package allpairs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/shortest"
)

// buildKey is the singleflight key; a Resolver only ever builds one table.
const buildKey = "all-pairs"

// Option configures a Resolver.
type Option func(*Resolver)

// WithWorkers sets how many sources are searched concurrently during the
// build. Values below 1 are treated as 1 (sequential).
func WithWorkers(n int) Option {
	return func(r *Resolver) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

// WithLogger attaches a logger for build diagnostics. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// Resolver lazily computes and caches the all-pairs Table of one graph.
// It is safe for concurrent use.
type Resolver struct {
	g       *core.Graph
	workers int
	log     *zap.Logger

	mu    sync.RWMutex // guards table
	table *Table
	group singleflight.Group

	flightMu sync.Mutex // guards flight
	flight   *flight
}

// New returns a Resolver for g. Nothing is computed until Table or Lookup
// is called.
func New(g *core.Graph, opts ...Option) *Resolver {
	r := &Resolver{
		g:       g,
		workers: 1,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Graph returns the graph the Resolver works on.
func (r *Resolver) Graph() *core.Graph { return r.g }

// Built reports whether the table has already been computed.
func (r *Resolver) Built() bool {
	return r.Cached() != nil
}

// Cached returns the table if it has been built, nil otherwise. It never
// triggers a computation.
func (r *Resolver) Cached() *Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.table
}

// Table returns the all-pairs table, computing it on first use.
//
// Implementation:
//   - Stage 1: Fast path under the read lock.
//   - Stage 2: singleflight collapses concurrent first callers into one build.
//   - Stage 3: The finished table is published under the write lock.
//
// The build runs on a context of its own that ends only once every caller
// waiting on it has gone, so one caller's cancellation never fails the
// others. A caller whose ctx ends returns ctx.Err() at once. A failed or
// cancelled build is not cached; the next call retries.
func (r *Resolver) Table(ctx context.Context) (*Table, error) {
	for {
		if t := r.Cached(); t != nil {
			return t, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f := r.join(ctx)
		ch := r.group.DoChan(buildKey, func() (any, error) {
			if t := r.Cached(); t != nil {
				return t, nil
			}
			t, err := r.build(f.ctx)
			if err != nil {
				return nil, err
			}
			r.mu.Lock()
			r.table = t
			r.mu.Unlock()

			return t, nil
		})

		select {
		case <-ctx.Done():
			r.leave(f)
			return nil, ctx.Err()
		case res := <-ch:
			r.leave(f)
			// Joined a build its own waiters abandoned; start over.
			if errors.Is(res.Err, context.Canceled) && ctx.Err() == nil {
				continue
			}
			if res.Err != nil {
				return nil, res.Err
			}

			return res.Val.(*Table), nil
		}
	}
}

// flight is the shared context of one build and how many callers wait on it.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// join registers a waiter on the current flight, starting one if needed.
func (r *Resolver) join(ctx context.Context) *flight {
	r.flightMu.Lock()
	defer r.flightMu.Unlock()

	if r.flight == nil {
		bctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		r.flight = &flight{ctx: bctx, cancel: cancel}
	}
	r.flight.waiters++

	return r.flight
}

// leave drops a waiter; the last one out cancels the flight.
func (r *Resolver) leave(f *flight) {
	r.flightMu.Lock()
	defer r.flightMu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if r.flight == f {
		r.flight = nil
	}
}

// Lookup answers a (start, end) query from the table, building it if needed.
func (r *Resolver) Lookup(ctx context.Context, start, end string) (shortest.PathResult, error) {
	t, err := r.Table(ctx)
	if err != nil {
		return shortest.PathResult{}, err
	}

	return t.Get(start, end)
}

// build runs one single-source search per node.
// Complexity: V × single-source cost; memory O(V²·L) for stored routes.
func (r *Resolver) build(ctx context.Context) (*Table, error) {
	if r.g == nil {
		return nil, fmt.Errorf("%w: nil graph", core.ErrInvalidGraph)
	}
	began := time.Now()
	sources := r.g.Vertices()
	rows := make([]map[string]shortest.PathResult, len(sources))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for i, src := range sources {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := shortest.From(r.g, src, shortest.WithContext(ctx))
			if err != nil {
				return fmt.Errorf("allpairs: source %q: %w", src, err)
			}
			rows[i] = tree.Results()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	t := &Table{
		Fingerprint: r.g.Fingerprint(),
		sources:     sources,
		paths:       make(map[string]map[string]shortest.PathResult, len(sources)),
	}
	var pairs int
	for i, src := range sources {
		t.paths[src] = rows[i]
		pairs += len(rows[i])
	}

	r.log.Debug("all-pairs table built",
		zap.Int("sources", len(sources)),
		zap.Int("reachablePairs", pairs),
		zap.Int("workers", r.workers),
		zap.Duration("duration", time.Since(began)),
		zap.Uint64("fingerprint", t.Fingerprint),
	)

	return t, nil
}
