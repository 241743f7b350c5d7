package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/graph"
	"github.com/katalvlaran/planarity/subgraph"
)

func TestFind_K4DetectsCompleteFour(t *testing.T) {
	g := graph.New(4, graph.AllowDenseGraph())
	g.Init(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_, _ = g.AddEdge(i, j)
		}
	}
	matches := subgraph.Find(g, subgraph.K4)
	require.Len(t, matches, 1)
}

func TestFind_K33DetectsBipartiteComplete(t *testing.T) {
	g := graph.New(6, graph.AllowDenseGraph())
	g.Init(6)
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			_, _ = g.AddEdge(i, j)
		}
	}
	matches := subgraph.Find(g, subgraph.K33)
	require.NotEmpty(t, matches)
}

func TestFind_K4AbsentInPath(t *testing.T) {
	g := graph.New(5)
	g.Init(5)
	for i := 0; i+1 < 5; i++ {
		_, _ = g.AddEdge(i, i+1)
	}
	require.Empty(t, subgraph.Find(g, subgraph.K4))
}
