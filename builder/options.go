// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before any constructor runs.
// Later options override earlier ones.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// idFn maps a zero-based index to a vertex ID.
	idFn IDFn
	// rng drives RandomSparse and random weights; nil means deterministic.
	rng *rand.Rand
	// weightFn is nil for list output, non-nil for cost-map output.
	weightFn WeightFn
	// bidirectional mirrors every edge v → u.
	bidirectional bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weighted reports whether the draft is materialized as cost maps.
func (c builderConfig) weighted() bool { return c.weightFn != nil }

// weight draws the next edge weight; list output always gets 0.
func (c builderConfig) weight() int64 {
	if c.weightFn == nil {
		return 0
	}

	return c.weightFn(c.rng)
}

// WithIDScheme sets the index → ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithSymbolIDs names vertices "A".."Z". Indices above 25 make the
// constructor panic, so use it for small fixtures only.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs names vertices "A", "B", ..., "Z", "AA", "AB", ...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPrefixIDs names vertices prefix+index, e.g. "s0", "s1".
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG for reproducible output.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn switches the output to cost maps and draws each edge weight
// from fn. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge the weight w.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [lo, hi].
func WithUniformWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithBidirectional mirrors every generated edge.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}
