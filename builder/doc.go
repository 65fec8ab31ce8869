// SPDX-License-Identifier: MIT

// Package builder generates reproducible graph Definitions for fixtures,
// benchmarks and the `lvroute generate` command.
//
// A Constructor writes vertices and directed edges into a shared draft;
// BuildDefinition runs constructors in order and materializes the draft as
// a core.Definition. Several constructors may target the same IDs, in which
// case their edges are merged (first weight wins).
//
// Topologies:
//
//	Complete(n)          every ordered pair i → j, i ≠ j
//	Cycle(n)             i → (i+1) mod n
//	Path(n)              i → i+1
//	Star(n)              hub 0 → every leaf
//	Wheel(n)             Cycle over the rim plus hub spokes
//	Grid(rows, cols)     right and down neighbors, IDs "r,c"
//	RandomSparse(n, p)   each ordered pair kept with probability p
//
// Options:
//
//	WithIDScheme / WithSymbolIDs / WithExcelColumnIDs / WithPrefixIDs
//	WithSeed / WithRand      RNG for RandomSparse and random weights
//	WithWeightFn / WithConstantWeight / WithUniformWeight
//	                         switch the output to cost maps
//	WithBidirectional        mirror every generated edge
//
// Without a weight option the output uses neighbor lists, so the resulting
// graph is unweighted and searched with BFS.
//
// Determinism:
//
// Vertices are emitted by ascending index and edges in a fixed loop order,
// so a given seed always produces the same Definition.
//
// Errors:
//
//	ErrTooFewVertices      - n, rows or cols below the constructor minimum.
//	ErrInvalidProbability  - p outside [0, 1].
//	ErrNeedRandSource      - RandomSparse with 0 < p < 1 and no RNG.
//
// Option constructors panic on nil functions or meaningless ranges;
// constructors never panic.
package builder
