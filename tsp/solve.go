// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/allpairs"
)

// Solve returns the cheapest order visiting every node of table exactly once.
//
// Implementation:
//   - Stage 1: Validate the table and the optional start node.
//   - Stage 2: Consult the confirmation gate when n ≥ Threshold.
//   - Stage 3: Enumerate permutations over the dense cost matrix.
//
// Errors: ErrEmptyGraph, core.ErrUnknownNode, ErrCancelled, ErrNoTour,
// an error returned by the ConfirmFunc, or ctx.Err().
func Solve(ctx context.Context, table *allpairs.Table, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids, anchor, err := validate(table, o.Start)
	if err != nil {
		return Result{}, err
	}

	est := EstimateFor(len(ids), anchor >= 0)
	if est.NeedsConfirmation(o.Threshold) {
		if err := confirm(ctx, o, est); err != nil {
			return Result{}, err
		}
	}

	began := time.Now()
	s := &search{cost: costMatrix(table, ids), anchor: anchor}
	if err := s.run(ctx); err != nil {
		return Result{}, err
	}
	o.Logger.Debug("hamiltonian search finished",
		zap.Int("nodes", est.Nodes),
		zap.Stringer("candidates", est.Candidates),
		zap.Uint64("scored", s.scored),
		zap.Bool("found", s.found),
		zap.Duration("duration", time.Since(began)),
	)
	if !s.found {
		return Result{}, ErrNoTour
	}

	order := make([]string, len(s.order))
	for i, idx := range s.order {
		order[i] = ids[idx]
	}

	return Result{Cost: s.best, Order: order}, nil
}

// confirm runs the gate. A missing callback declines.
func confirm(ctx context.Context, o Options, est Estimate) error {
	if o.Confirm == nil {
		return fmt.Errorf("%w: %d nodes need confirmation", ErrCancelled, est.Nodes)
	}
	ok, err := o.Confirm(ctx, est)
	if err != nil {
		return fmt.Errorf("tsp: confirm: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: declined for %d nodes", ErrCancelled, est.Nodes)
	}
	o.Logger.Info("oversized search confirmed",
		zap.Int("nodes", est.Nodes),
		zap.Stringer("permutations", est.Permutations),
	)

	return nil
}
