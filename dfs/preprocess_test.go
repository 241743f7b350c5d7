package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/graph"
)

func buildPath(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	g.Init(n)
	for i := 0; i+1 < n; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	return g
}

func TestPreprocess_PathGraph(t *testing.T) {
	g := buildPath(t, 5)
	require.NoError(t, dfs.Preprocess(g))

	for i := 0; i < 5; i++ {
		require.Equal(t, i, g.V(i).DFI)
	}
	require.Equal(t, graph.NIL, g.V(0).DFSParent)
	for i := 1; i < 5; i++ {
		require.Equal(t, i-1, g.V(i).DFSParent)
	}
}

func TestPreprocess_CycleProducesBackEdge(t *testing.T) {
	g := graph.New(4)
	g.Init(4)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(3, 0)

	require.NoError(t, dfs.Preprocess(g))

	// vertex 3's back edge to 0 should lower its leastAncestor and
	// propagate into lowpoints of 3, 2, 1.
	require.Equal(t, 0, g.V(3).LeastAncestor)
	require.Equal(t, 0, g.V(3).Lowpoint)
	require.Equal(t, 0, g.V(2).Lowpoint)
	require.Equal(t, 0, g.V(1).Lowpoint)
	require.Equal(t, 0, g.V(0).Lowpoint)
}

func TestPreprocess_SeparatedChildListSortedByLowpoint(t *testing.T) {
	// Star-like graph: 0 is parent of 1 and 2; 2 has a back edge making its
	// subtree's lowpoint smaller than 1's.
	g := graph.New(5)
	g.Init(5)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(0, 2)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(3, 4)
	_, _ = g.AddEdge(4, 0) // back edge from 4 up to 0

	require.NoError(t, dfs.Preprocess(g))

	root := g.V(0)
	require.NotEqual(t, graph.NIL, root.SepHead)
	// The child whose subtree reaches back to 0 (lowpoint 0) must be first.
	first := root.SepHead
	require.Equal(t, 0, g.V(first).Lowpoint)
}

func TestPreprocess_DisconnectedGraph(t *testing.T) {
	g := graph.New(4)
	g.Init(4)
	_, _ = g.AddEdge(0, 1)
	// vertices 2, 3 left isolated from {0,1}
	_, _ = g.AddEdge(2, 3)

	err := dfs.Preprocess(g)
	require.ErrorIs(t, err, dfs.ErrDisconnected)
}

func TestPreprocess_ForwardArcListAscendingByTargetDFI(t *testing.T) {
	g := graph.New(5)
	g.Init(5)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(3, 4)
	_, _ = g.AddEdge(0, 2)
	_, _ = g.AddEdge(0, 4)

	require.NoError(t, dfs.Preprocess(g))

	var dfis []int
	for arc := g.V(0).FwdHead; arc != graph.NIL; arc = g.A(arc).FwdNext {
		dfis = append(dfis, g.V(g.A(arc).V).DFI)
	}
	for i := 1; i < len(dfis); i++ {
		require.LessOrEqual(t, dfis[i-1], dfis[i])
	}
	require.NotEmpty(t, dfis)
}
