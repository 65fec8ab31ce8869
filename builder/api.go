// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor adds one topology to a draft using the resolved config.
type Constructor func(d *Draft, cfg builderConfig) error

// Draft accumulates vertices and directed edges in emission order.
// It is exported only so Constructor can name it; use BuildDefinition.
type Draft struct {
	order []string                    // vertices in first-seen order
	out   map[string][]string         // neighbor lists in first-seen order
	cost  map[string]map[string]int64 // first weight per edge
}

func newDraft() *Draft {
	return &Draft{
		out:  make(map[string][]string),
		cost: make(map[string]map[string]int64),
	}
}

// vertex declares id if it is new.
func (d *Draft) vertex(id string) {
	if _, ok := d.cost[id]; ok {
		return
	}
	d.order = append(d.order, id)
	d.out[id] = nil
	d.cost[id] = make(map[string]int64)
}

// edge records u → v (and v → u when cfg is bidirectional). Repeated edges
// keep their first weight.
func (d *Draft) edge(cfg builderConfig, u, v string) {
	w := cfg.weight()
	d.arc(u, v, w)
	if cfg.bidirectional {
		d.arc(v, u, w)
	}
}

func (d *Draft) arc(u, v string, w int64) {
	d.vertex(u)
	d.vertex(v)
	if _, dup := d.cost[u][v]; dup {
		return
	}
	d.cost[u][v] = w
	d.out[u] = append(d.out[u], v)
}

// definition materializes the draft as lists or cost maps.
func (d *Draft) definition(weighted bool) core.Definition {
	def := make(core.Definition, len(d.order))
	for _, id := range d.order {
		if weighted {
			costs := make(map[string]int64, len(d.cost[id]))
			for to, w := range d.cost[id] {
				costs[to] = w
			}
			def[id] = core.Costs(costs)
			continue
		}
		def[id] = core.List(append([]string(nil), d.out[id]...)...)
	}

	return def
}

// BuildDefinition resolves bopts, runs every constructor in order against
// one draft and returns the resulting Definition.
//
// Implementation:
//   - Stage 1: Resolve options into a builderConfig (last wins).
//   - Stage 2: Run constructors; the first error aborts the build.
//   - Stage 3: Emit neighbor lists, or cost maps when a weight option is set.
//
// Complexity: the sum of the constructors' costs plus O(V + E) to emit.
func BuildDefinition(bopts []BuilderOption, cons ...Constructor) (core.Definition, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()
	for i, con := range cons {
		if con == nil {
			continue
		}
		if err := con(d, cfg); err != nil {
			return nil, fmt.Errorf("builder: constructor %d: %w", i, err)
		}
	}

	return d.definition(cfg.weighted()), nil
}

// BuildGraph is BuildDefinition followed by core.NewGraph(def, gopts...).
func BuildGraph(gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	def, err := BuildDefinition(bopts, cons...)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(def, gopts...)
}
