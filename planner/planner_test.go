// SPDX-License-Identifier: MIT

package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/shortest"
	"github.com/katalvlaran/lvroute/tsp"
)

func mustGraph(t testing.TB, def core.Definition) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(def)
	require.NoError(t, err)

	return g
}

func weighted(t testing.TB) *core.Graph {
	return mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"B": 1, "C": 4}),
		"B": core.Costs(map[string]int64{"C": 1}),
		"C": core.Costs(nil),
		"X": core.Costs(map[string]int64{"Y": 3}),
		"Y": core.Costs(nil),
	})
}

func TestShortestPath_BeforeAndAfterTable(t *testing.T) {
	p := planner.New(weighted(t))

	before, err := p.ShortestPath("A", "C")
	require.NoError(t, err)
	assert.Equal(t, shortest.PathResult{Cost: 2, Route: []string{"A", "B", "C"}}, before)

	_, err = p.AllPairs(context.Background())
	require.NoError(t, err)

	after, err := p.ShortestPath("A", "C")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	for _, cached := range []bool{false, true} {
		q := planner.New(weighted(t))
		if cached {
			_, err := q.AllPairs(context.Background())
			require.NoError(t, err)
		}
		_, err = q.ShortestPath("A", "Y")
		assert.ErrorIs(t, err, shortest.ErrUnreachable)
		_, err = q.ShortestPath("A", "Q")
		assert.ErrorIs(t, err, core.ErrUnknownNode)
		res, err := q.ShortestPath("X", "X")
		require.NoError(t, err)
		assert.Equal(t, shortest.PathResult{Cost: 0, Route: []string{"X"}}, res)
	}
}

func TestAllPairs_Memoized(t *testing.T) {
	p := planner.New(weighted(t), planner.WithWorkers(3))
	first, err := p.AllPairs(context.Background())
	require.NoError(t, err)
	second, err := p.AllPairs(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestTourVisitingAll(t *testing.T) {
	g := mustGraph(t, core.Definition{
		"A": core.List("B", "C", "D"),
		"B": core.List("A", "C", "D"),
		"C": core.List("A", "B", "D"),
		"D": core.List("A", "B", "C"),
	})
	obs, logs := observer.New(zapcore.InfoLevel)
	p := planner.New(g, planner.WithLogger(zap.New(obs)))

	res, err := p.TourVisitingAll(context.Background(), "A", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Cost)
	assert.Equal(t, "A", res.Order[0])
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, 1, logs.FilterMessage("tour computed").Len())

	legs, err := p.Legs(context.Background(), res.Order)
	require.NoError(t, err)
	assert.Len(t, legs, 3)

	_, err = p.TourVisitingAll(context.Background(), "Z", nil)
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

func TestTourVisitingAll_InfeasibleSkipsGate(t *testing.T) {
	def, err := builder.BuildDefinition(nil, builder.RandomSparse(60, 0))
	require.NoError(t, err)
	p := planner.New(mustGraph(t, def))

	ok, err := p.Feasible("")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = p.TourVisitingAll(context.Background(), "", func(context.Context, tsp.Estimate) (bool, error) {
		t.Fatal("confirmation must not be asked for an impossible tour")
		return false, nil
	})
	assert.ErrorIs(t, err, tsp.ErrNoTour)
	assert.False(t, p.Resolver().Built(), "no table is needed to reject the tour")
}

func TestTourVisitingAll_EmptyGraph(t *testing.T) {
	_, err := planner.New(mustGraph(t, core.Definition{})).TourVisitingAll(context.Background(), "", nil)
	assert.ErrorIs(t, err, tsp.ErrEmptyGraph)
}

func TestTourVisitingAll_Gate(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Cycle(60))
	require.NoError(t, err)
	p := planner.New(g)

	assert.True(t, p.NeedsConfirmation())
	assert.GreaterOrEqual(t, p.PermutationCount(60).Cmp(p.PermutationCount(50)), 0)

	asked := 0
	_, err = p.TourVisitingAll(context.Background(), "A", func(_ context.Context, est tsp.Estimate) (bool, error) {
		asked++
		assert.Equal(t, 60, est.Nodes)
		return false, nil
	})
	assert.ErrorIs(t, err, tsp.ErrCancelled)
	assert.Equal(t, 1, asked)

	small := planner.New(weighted(t))
	assert.False(t, small.NeedsConfirmation())
	assert.Equal(t, tsp.DefaultThreshold, small.Threshold())
	assert.True(t, planner.New(weighted(t), planner.WithThreshold(5)).NeedsConfirmation())
}
