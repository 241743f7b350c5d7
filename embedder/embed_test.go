package embedder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/embedder"
	"github.com/katalvlaran/planarity/graph"
	"github.com/katalvlaran/planarity/integrity"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g := graph.New(n, graph.AllowDenseGraph())
	g.Init(n)
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, dfs.Preprocess(g))
	return g
}

func TestEmbed_PathGraphIsPlanar(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	res := embedder.Embed(g)
	require.Equal(t, embedder.OK, res.Code)
}

func TestEmbed_TriangleIsPlanar(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	res := embedder.Embed(g)
	require.Equal(t, embedder.OK, res.Code)
}

func TestEmbed_K4IsPlanar(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	})
	res := embedder.Embed(g)
	require.Equal(t, embedder.OK, res.Code)
}

func TestEmbed_K4MinusEdgeIsPlanar(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3},
	})
	res := embedder.Embed(g)
	require.Equal(t, embedder.OK, res.Code)
}

func TestEmbed_K5IsNonPlanar(t *testing.T) {
	edges := [][2]int{}
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	g := buildGraph(t, 5, edges)
	original := g.Dup()
	res := embedder.Embed(g)
	require.Equal(t, embedder.NonEmbeddable, res.Code)
	require.NotNil(t, res.Kuratowski)
	require.NoError(t, integrity.CheckKuratowski(res.Kuratowski, original, integrity.ModePlanar))
}

func TestEmbed_K33IsNonPlanar(t *testing.T) {
	edges := [][2]int{
		{0, 3}, {0, 4}, {0, 5},
		{1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
	}
	g := buildGraph(t, 6, edges)
	original := g.Dup()
	res := embedder.Embed(g)
	require.Equal(t, embedder.NonEmbeddable, res.Code)
	require.NotNil(t, res.Kuratowski)
	require.NoError(t, integrity.CheckKuratowski(res.Kuratowski, original, integrity.ModePlanar))
}

// TestEmbed_PetersenGraphIsNonPlanar exercises the isolator against a
// witness it cannot solve by ancestor-marking alone: the Petersen graph's
// smallest K3,3 subdivision is spread across the outer cycle, the inner
// pentagram and the spokes connecting them, per spec.md §8's named
// scenario.
func TestEmbed_PetersenGraphIsNonPlanar(t *testing.T) {
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // outer pentagon
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}, // inner pentagram
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}, // spokes
	}
	g := buildGraph(t, 10, edges)
	original := g.Dup()
	res := embedder.Embed(g)
	require.Equal(t, embedder.NonEmbeddable, res.Code)
	require.NotNil(t, res.Kuratowski)
	require.NoError(t, integrity.CheckKuratowski(res.Kuratowski, original, integrity.ModePlanar))
}

func TestEmbed_PreprocessesUnpreprocessedGraphItself(t *testing.T) {
	g := graph.New(3)
	g.Init(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	res := embedder.Embed(g)
	require.Equal(t, embedder.OK, res.Code)
}
