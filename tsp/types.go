// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"errors"
	"math/big"

	"go.uber.org/zap"
)

// Sentinel errors for Hamiltonian search.
var (
	// ErrEmptyGraph is returned when there is no node to visit.
	ErrEmptyGraph = errors.New("tsp: graph has no nodes")

	// ErrCancelled is returned when an oversized search was not confirmed.
	ErrCancelled = errors.New("tsp: search cancelled")

	// ErrNoTour is returned when no order can reach every node.
	ErrNoTour = errors.New("tsp: no order visits every node")
)

// DefaultThreshold is the node count from which Solve asks for confirmation.
const DefaultThreshold = 50

// Result holds the cheapest order found.
type Result struct {
	// Cost is the sum of shortest-path costs between consecutive nodes.
	Cost int64

	// Order lists every node exactly once; Order[0] is the start when anchored.
	Order []string
}

// Estimate describes the enumeration Solve is about to run.
type Estimate struct {
	// Nodes is the number of nodes to order.
	Nodes int

	// Permutations is Nodes!, the size of the full enumeration.
	Permutations *big.Int

	// Candidates is the number of permutations actually scored:
	// (Nodes-1)! when anchored, Nodes! otherwise.
	Candidates *big.Int

	// Anchored reports whether a start node was fixed.
	Anchored bool
}

// NeedsConfirmation reports whether the estimate reaches threshold.
func (e Estimate) NeedsConfirmation(threshold int) bool {
	return e.Nodes >= threshold
}

// ConfirmFunc decides whether an oversized search should proceed. It returns
// true to allow it, false to decline, and may return an error to abort.
type ConfirmFunc func(context.Context, Estimate) (bool, error)

// Options configures Solve.
type Options struct {
	// Start anchors the order at this node when non-empty.
	Start string

	// Threshold is the node count from which Confirm is consulted.
	Threshold int

	// Confirm is asked before oversized searches. nil declines them.
	Confirm ConfirmFunc

	// Logger receives search diagnostics.
	Logger *zap.Logger
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns unanchored Options with DefaultThreshold and no
// confirmation callback.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Logger:    zap.NewNop(),
	}
}

// WithStart anchors the order at id.
func WithStart(id string) Option {
	return func(o *Options) { o.Start = id }
}

// WithThreshold overrides DefaultThreshold.
func WithThreshold(n int) Option {
	return func(o *Options) { o.Threshold = n }
}

// WithConfirm registers the confirmation callback for oversized searches.
func WithConfirm(fn ConfirmFunc) Option {
	return func(o *Options) { o.Confirm = fn }
}

// WithLogger attaches a logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
