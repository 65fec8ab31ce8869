// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) core.Definition {
	t.Helper()
	def, err := builder.BuildDefinition(bopts, cons...)
	require.NoError(t, err)

	return def
}

func TestTopologies(t *testing.T) {
	symbols := []builder.BuilderOption{builder.WithSymbolIDs()}

	tests := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want core.Definition
	}{
		{
			name: "cycle",
			opts: symbols,
			con:  builder.Cycle(4),
			want: core.Definition{
				"A": core.List("B"),
				"B": core.List("C"),
				"C": core.List("D"),
				"D": core.List("A"),
			},
		},
		{
			name: "path bidirectional",
			opts: []builder.BuilderOption{builder.WithSymbolIDs(), builder.WithBidirectional()},
			con:  builder.Path(3),
			want: core.Definition{
				"A": core.List("B"),
				"B": core.List("A", "C"),
				"C": core.List("B"),
			},
		},
		{
			name: "star",
			con:  builder.Star(4),
			want: core.Definition{
				"0": core.List("1", "2", "3"),
				"1": core.List(),
				"2": core.List(),
				"3": core.List(),
			},
		},
		{
			name: "wheel",
			con:  builder.Wheel(5),
			want: core.Definition{
				"0": core.List("1", "2", "3", "4"),
				"1": core.List("2"),
				"2": core.List("3"),
				"3": core.List("4"),
				"4": core.List("1"),
			},
		},
		{
			name: "grid",
			opts: symbols,
			con:  builder.Grid(2, 2),
			want: core.Definition{
				"0,0": core.List("0,1", "1,0"),
				"0,1": core.List("1,1"),
				"1,0": core.List("1,1"),
				"1,1": core.List(),
			},
		},
		{
			name: "complete weighted",
			opts: []builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(2)},
			con:  builder.Complete(3),
			want: core.Definition{
				"A": core.Costs(map[string]int64{"B": 2, "C": 2}),
				"B": core.Costs(map[string]int64{"A": 2, "C": 2}),
				"C": core.Costs(map[string]int64{"A": 2, "B": 2}),
			},
		},
		{
			name: "random p=1 is complete",
			opts: symbols,
			con:  builder.RandomSparse(3, 1),
			want: core.Definition{
				"A": core.List("B", "C"),
				"B": core.List("A", "C"),
				"C": core.List("A", "B"),
			},
		},
		{
			name: "random p=0 keeps isolated vertices",
			con:  builder.RandomSparse(2, 0),
			want: core.Definition{
				"0": core.List(),
				"1": core.List(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, build(t, tt.opts, tt.con))
		})
	}
}

func TestBuildDefinition_MergesConstructors(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSymbolIDs()}
	merged := build(t, opts, builder.Cycle(3), builder.Path(3), nil)
	assert.Equal(t, build(t, opts, builder.Cycle(3)), merged)
}

func TestBuildDefinition_Errors(t *testing.T) {
	_, err := builder.BuildDefinition(nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.ErrorContains(t, err, "constructor 0")

	_, err = builder.BuildDefinition(nil, builder.Path(3), builder.Grid(2, 0))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.ErrorContains(t, err, "cols=0")

	_, err = builder.BuildDefinition(nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildDefinition(nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(3, 9)}
	}
	a := build(t, opts(), builder.RandomSparse(20, 0.2))
	b := build(t, opts(), builder.RandomSparse(20, 0.2))
	assert.Equal(t, a, b)

	g, err := core.NewGraph(a)
	require.NoError(t, err)
	assert.Equal(t, 20, g.VertexCount())
	assert.True(t, g.Weighted())
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, int64(3))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestBuildGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 12, g.EdgeCount())
	assert.False(t, g.Weighted())

	_, err = builder.BuildGraph(nil, nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{"complete", "cycle", "grid", "path", "random", "star", "wheel"}, builder.Kinds())

	con, err := builder.ByName("GRID", builder.Params{N: 2, Cols: 3})
	require.NoError(t, err)
	def := build(t, nil, con)
	assert.Len(t, def, 6)

	_, err = builder.ByName("hexagon", builder.Params{N: 6})
	require.ErrorIs(t, err, builder.ErrUnknownKind)
	assert.ErrorContains(t, err, "complete, cycle")
}

func TestIDFns(t *testing.T) {
	cases := map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"}
	for idx, want := range cases {
		assert.Equal(t, want, builder.ExcelColumnIDFn(idx), "idx %d", idx)
	}
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "C", builder.SymbolIDFn(2))
	assert.Equal(t, "s12", builder.PrefixIDFn("s")(12))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.PrefixIDFn("s")(-1) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
}

func TestUniformWeightFn(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(4, 8)(nil))
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 4)(nil))
}
