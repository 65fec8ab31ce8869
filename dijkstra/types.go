// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for best-first shortest-path search.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target node does not exist.
	ErrVertexNotFound = fmt.Errorf("dijkstra: vertex not found in graph: %w", core.ErrUnknownNode)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// Target      – optional node; the search stops once it is finalized.
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – nodes whose cost would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// Ctx         – checked once per finalized node; its error aborts the search.
type Options struct {
	Source      string          // The ID of the source node
	Target      string          // Optional early-exit node
	ReturnPath  bool            // Whether to return the predecessor map
	MaxDistance int64           // Maximum distance to explore
	Ctx         context.Context // Cancellation; never nil after DefaultOptions
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget makes Dijkstra return as soon as id is finalized.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Negative values make Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithContext sets the cancellation context. nil keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source node ID.
//
// Defaults:
//   - Target:      "" (explore everything reachable).
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64.
//   - Ctx:         context.Background().
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
		Ctx:         context.Background(),
	}
}
