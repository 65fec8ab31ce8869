// SPDX-License-Identifier: MIT

// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, weighted and unit-cost correctness, early exit and ties.
package dijkstra_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

func mustGraph(t testing.TB, def core.Definition) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(def)
	require.NoError(t, err)

	return g
}

func triangle(t testing.TB) *core.Graph {
	return mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"B": 1, "C": 4}),
		"B": core.Costs(map[string]int64{"C": 1}),
		"C": core.Costs(nil),
	})
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := triangle(t)

	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource, "empty source has priority over nil graph")

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrUnknownNode)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("X"))
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev must be nil without WithReturnPath")
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 2}, dist)
}

func TestDijkstra_TriangleWithPath(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["C"])
	assert.Equal(t, map[string]string{"B": "A", "C": "B"}, prev)
}

func TestDijkstra_UnreachableAbsent(t *testing.T) {
	g := mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"B": 3}),
		"B": core.Costs(nil),
		"C": core.Costs(map[string]int64{"A": 1}),
	})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 3}, dist)
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"B": 0, "C": 2}),
		"B": core.Costs(map[string]int64{"C": 0}),
		"C": core.Costs(nil),
	})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist["C"])
	assert.Equal(t, "B", prev["C"])
}

// ------------------------------------------------------------------------
// 3. Early exit, caps and ties
// ------------------------------------------------------------------------

func TestDijkstra_TargetEarlyExit(t *testing.T) {
	g := mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"B": 1, "Z": 10}),
		"B": core.Costs(map[string]int64{"C": 1}),
		"C": core.Costs(nil),
		"Z": core.Costs(map[string]int64{"Y": 1}),
		"Y": core.Costs(nil),
	})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTarget("C"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["C"])
	// Z was discovered but never expanded, so Y is unknown.
	assert.Contains(t, dist, "Z")
	assert.NotContains(t, dist, "Y")
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"B": 2}),
		"B": core.Costs(map[string]int64{"C": 2}),
		"C": core.Costs(map[string]int64{"D": 2}),
		"D": core.Costs(nil),
	})
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 2, "C": 4}, dist)
}

func TestDijkstra_TiesAreDeterministic(t *testing.T) {
	// Two equal-cost routes to D: via B and via C. B is finalized first
	// (ID order), so it claims D.
	g := mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"C": 1, "B": 1}),
		"B": core.Costs(map[string]int64{"D": 1}),
		"C": core.Costs(map[string]int64{"D": 1}),
		"D": core.Costs(nil),
	})
	for i := 0; i < 20; i++ {
		_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
		require.NoError(t, err)
		require.Equal(t, "B", prev["D"])
	}
}

func TestDijkstra_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// nil keeps the background context.
	dist, _, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source("A"), dijkstra.WithContext(nil)) //nolint:staticcheck
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist["C"])
}

func TestDijkstra_CostsNeverOverflow(t *testing.T) {
	g := mustGraph(t, core.Definition{
		"A": core.Costs(map[string]int64{"B": math.MaxInt64 - 1, "D": 2}),
		"B": core.Costs(map[string]int64{"C": 5}),
		"C": core.Costs(nil),
		"D": core.Costs(map[string]int64{"E": math.MaxInt64 - 2}),
		"E": core.Costs(nil),
	})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.Equal(t, int64(math.MaxInt64-1), dist["B"])
	assert.NotContains(t, dist, "C")
	// 2 + (MaxInt64-2) is exactly MaxInt64 and still representable.
	assert.Equal(t, int64(math.MaxInt64), dist["E"])
	assert.Equal(t, "D", prev["E"])
	for id, d := range dist {
		assert.GreaterOrEqual(t, d, int64(0), id)
	}
}

// ------------------------------------------------------------------------
// 4. Agreement with BFS on unit costs
// ------------------------------------------------------------------------

func TestDijkstra_AgreesWithBFSOnUnitCosts(t *testing.T) {
	// A 4x4 directed grid (right and down moves) plus a few shortcuts.
	list := core.Definition{}
	unit := core.Definition{}
	id := func(r, c int) string { return fmt.Sprintf("%d_%d", r, c) }
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var nbrs []string
			if c+1 < 4 {
				nbrs = append(nbrs, id(r, c+1))
			}
			if r+1 < 4 {
				nbrs = append(nbrs, id(r+1, c))
			}
			if r == c && r+2 < 4 {
				nbrs = append(nbrs, id(r+2, c+2))
			}
			list[id(r, c)] = core.List(nbrs...)
			costs := make(map[string]int64, len(nbrs))
			for _, n := range nbrs {
				costs[n] = 1
			}
			unit[id(r, c)] = core.Costs(costs)
		}
	}
	gl := mustGraph(t, list)
	gu := mustGraph(t, unit)

	for _, src := range gl.Vertices() {
		res, err := bfs.BFS(gl, src)
		require.NoError(t, err)

		dw, _, err := dijkstra.Dijkstra(gu, dijkstra.Source(src))
		require.NoError(t, err)
		// Dijkstra also accepts the unweighted graph directly.
		dl, _, err := dijkstra.Dijkstra(gl, dijkstra.Source(src))
		require.NoError(t, err)

		require.Len(t, dw, len(res.Depth), "source %s", src)
		for v, d := range res.Depth {
			assert.Equal(t, int64(d), dw[v], "source %s → %s", src, v)
			assert.Equal(t, int64(d), dl[v], "source %s → %s", src, v)
		}
	}
}
