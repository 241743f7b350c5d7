package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/graph"
)

func TestInit_AllocatesDoubleArena(t *testing.T) {
	g := graph.New(5)
	g.Init(5)
	require.Equal(t, 5, g.N())
	require.Equal(t, 0, g.M())
	// The root-copy half [N, 2N) is allocated and initialized too.
	require.Equal(t, graph.NIL, g.V(2*5-1).DFI)
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := graph.New(4)
	g.Init(4)
	_, err := g.AddEdge(1, 1)
	require.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestAddEdge_RejectsOutOfRange(t *testing.T) {
	g := graph.New(4)
	g.Init(4)
	_, err := g.AddEdge(0, 9)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestAddEdge_TwinsAgree(t *testing.T) {
	g := graph.New(4)
	g.Init(4)
	e, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1, g.A(e).V)
	require.Equal(t, 0, g.A(graph.Twin(e)).V)
	require.Equal(t, 1, g.M())
}

func TestAddEdge_StrictModeRejectsPastPlanarBound(t *testing.T) {
	// K5 has 10 edges on 5 vertices, exceeding 3*5-6=9: strict mode must
	// reject the tenth edge.
	g := graph.New(5)
	g.Init(5)
	added := 0
	outer := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	var lastErr error
	for _, e := range outer {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			lastErr = err
			continue
		}
		added++
	}
	require.Equal(t, 9, added)
	require.ErrorIs(t, lastErr, graph.ErrTooManyEdges)
}

func TestAddEdge_DenseModeAcceptsPastPlanarBound(t *testing.T) {
	g := graph.New(5, graph.AllowDenseGraph())
	g.Init(5)
	outer := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	for _, e := range outer {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.Equal(t, 10, g.M())
}

func TestFreeze_RejectsMutation(t *testing.T) {
	g := graph.New(3)
	g.Init(3)
	g.Freeze()
	_, err := g.AddEdge(0, 1)
	require.ErrorIs(t, err, graph.ErrFrozen)
	g.Unfreeze()
	_, err = g.AddEdge(0, 1)
	require.NoError(t, err)
}

func TestDeleteEdge_ReturnsArcToFreelist(t *testing.T) {
	g := graph.New(3)
	g.Init(3)
	e, err := g.AddEdge(0, 1)
	require.NoError(t, err)
	g.DeleteEdge(0, e)
	require.Equal(t, 0, g.M())
	require.False(t, g.A(e).InUse)

	// Hole is reused by the next AddEdge.
	e2, err := g.AddEdge(1, 2)
	require.NoError(t, err)
	require.True(t, g.A(e2).InUse)
}

func TestCopy_IsIndependent(t *testing.T) {
	g := graph.New(3)
	g.Init(3)
	_, _ = g.AddEdge(0, 1)
	cp := g.Copy()
	_, _ = cp.AddEdge(1, 2)
	require.Equal(t, 1, g.M())
	require.Equal(t, 2, cp.M())
}
