// SPDX-License-Identifier: MIT

package planner

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/allpairs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/shortest"
	"github.com/katalvlaran/lvroute/tsp"
)

// Option configures a Planner.
type Option func(*Planner)

// WithWorkers sets the all-pairs build fan-out.
func WithWorkers(n int) Option {
	return func(p *Planner) { p.workers = n }
}

// WithThreshold sets the node count from which tours need confirmation.
func WithThreshold(n int) Option {
	return func(p *Planner) { p.threshold = n }
}

// WithLogger attaches a logger shared with the resolver and the tour search.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// Planner answers route queries over one immutable graph.
type Planner struct {
	g         *core.Graph
	resolver  *allpairs.Resolver
	workers   int
	threshold int
	log       *zap.Logger
}

// New returns a Planner for g. No search runs until a query is made.
func New(g *core.Graph, opts ...Option) *Planner {
	p := &Planner{
		g:         g,
		workers:   1,
		threshold: tsp.DefaultThreshold,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.resolver = allpairs.New(g, allpairs.WithWorkers(p.workers), allpairs.WithLogger(p.log))

	return p
}

// Graph returns the planner's graph.
func (p *Planner) Graph() *core.Graph { return p.g }

// Resolver returns the all-pairs resolver backing the planner.
func (p *Planner) Resolver() *allpairs.Resolver { return p.resolver }

// Threshold returns the confirmation threshold in effect.
func (p *Planner) Threshold() int { return p.threshold }

// ShortestPath returns the cheapest route start → end. It reads the cached
// all-pairs table when one has been built and runs a single early-exit
// search otherwise.
//
// Errors: core.ErrUnknownNode, shortest.ErrUnreachable.
func (p *Planner) ShortestPath(start, end string) (shortest.PathResult, error) {
	if t := p.resolver.Cached(); t != nil {
		return t.Get(start, end)
	}

	return shortest.Between(p.g, start, end)
}

// AllPairs returns the memoized all-pairs table, computing it on first use.
func (p *Planner) AllPairs(ctx context.Context) (*allpairs.Table, error) {
	return p.resolver.Table(ctx)
}

// TourVisitingAll returns the cheapest order visiting every node once,
// starting at start (empty for any start). confirm is consulted when the
// graph reaches the confirmation threshold; nil declines.
//
// Graphs whose components cannot be chained fail with tsp.ErrNoTour before
// any enumeration or confirmation. The all-pairs table is built first when
// needed.
func (p *Planner) TourVisitingAll(ctx context.Context, start string, confirm tsp.ConfirmFunc) (tsp.Result, error) {
	if p.g != nil && p.g.VertexCount() > 0 {
		ok, err := dfs.CanVisitAll(p.g, start)
		if err != nil {
			return tsp.Result{}, err
		}
		if !ok {
			return tsp.Result{}, fmt.Errorf("%w: components do not form a chain", tsp.ErrNoTour)
		}
	}

	table, err := p.resolver.Table(ctx)
	if err != nil {
		return tsp.Result{}, err
	}

	began := time.Now()
	res, err := tsp.Solve(ctx, table,
		tsp.WithStart(start),
		tsp.WithThreshold(p.threshold),
		tsp.WithConfirm(confirm),
		tsp.WithLogger(p.log),
	)
	if err != nil {
		return tsp.Result{}, err
	}
	p.log.Info("tour computed",
		zap.String("start", start),
		zap.Int64("cost", res.Cost),
		zap.Duration("duration", time.Since(began)),
	)

	return res, nil
}

// Legs expands a tour order into the concrete route of each hop.
func (p *Planner) Legs(ctx context.Context, order []string) ([]shortest.PathResult, error) {
	table, err := p.resolver.Table(ctx)
	if err != nil {
		return nil, err
	}

	return tsp.Legs(table, order)
}

// Feasible reports whether some order visits every node, starting at start
// when it is non-empty.
func (p *Planner) Feasible(start string) (bool, error) {
	return dfs.CanVisitAll(p.g, start)
}

// PermutationCount returns nodeCount!, the size of a full tour enumeration.
func (p *Planner) PermutationCount(nodeCount int) *big.Int {
	return tsp.PermutationCount(nodeCount)
}

// NeedsConfirmation reports whether a tour over this graph would consult
// the confirmation callback.
func (p *Planner) NeedsConfirmation() bool {
	return p.g.VertexCount() >= p.threshold
}
