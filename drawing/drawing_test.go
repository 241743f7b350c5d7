package drawing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/drawing"
	"github.com/katalvlaran/planarity/embedder"
	"github.com/katalvlaran/planarity/graph"
)

func TestBuild_OneSegmentPerVertex(t *testing.T) {
	g := graph.New(4)
	g.Init(4)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)
	require.NoError(t, dfs.Preprocess(g))
	res := embedder.Embed(g)
	require.Equal(t, embedder.OK, res.Code)

	layout := drawing.Build(g)
	require.Len(t, layout.Segments, 4)
	require.Len(t, layout.EdgeCols, 3)
}
