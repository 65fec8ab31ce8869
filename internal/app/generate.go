// SPDX-License-Identifier: MIT

package app

import (
	"context"
	"fmt"

	"go.trai.ch/zerr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/graphfile"
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// Kind names the topology: complete, cycle, path, star, wheel, grid, random.
	Kind string
	// Nodes is n, or the row count for grid.
	Nodes int
	// Cols is the grid column count.
	Cols int
	// P is the edge probability for random.
	P float64
	// Seed drives random edges and weights.
	Seed int64
	// MinCost and MaxCost switch the output to cost maps when MaxCost > 0.
	MinCost int64
	MaxCost int64
	// TwoWay mirrors every edge.
	TwoWay bool
}

// ErrInvalidGenerate is returned for unusable generator settings.
var ErrInvalidGenerate = zerr.New("invalid generator settings")

// Generate writes a synthetic station graph in the given format.
func (a *App) Generate(_ context.Context, opts GenerateOptions, format graphfile.Format) error {
	con, err := builder.ByName(opts.Kind, builder.Params{N: opts.Nodes, Cols: opts.Cols, P: opts.P})
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", ErrInvalidGenerate, err), "kind", opts.Kind)
	}

	bopts := []builder.BuilderOption{
		builder.WithExcelColumnIDs(),
		builder.WithSeed(opts.Seed),
	}
	if opts.MaxCost > 0 {
		if opts.MinCost < 0 || opts.MinCost > opts.MaxCost {
			return zerr.With(zerr.With(zerr.Wrap(ErrInvalidGenerate, "cost range"), "min_cost", opts.MinCost), "max_cost", opts.MaxCost)
		}
		bopts = append(bopts, builder.WithUniformWeight(opts.MinCost, opts.MaxCost))
	}
	if opts.TwoWay {
		bopts = append(bopts, builder.WithBidirectional())
	}

	def, err := builder.BuildDefinition(bopts, con)
	if err != nil {
		return zerr.With(fmt.Errorf("%w: %w", ErrInvalidGenerate, err), "kind", opts.Kind)
	}
	a.log.Debug("graph generated",
		zap.String("kind", opts.Kind),
		zap.Int("nodes", len(def)),
		zap.Int64("seed", opts.Seed),
	)

	return graphfile.Encode(a.out, def, format)
}
