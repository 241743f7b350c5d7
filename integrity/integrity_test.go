package integrity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/embedder"
	"github.com/katalvlaran/planarity/graph"
	"github.com/katalvlaran/planarity/integrity"
)

func TestCheck_TriangleSatisfiesEuler(t *testing.T) {
	g := graph.New(3)
	g.Init(3)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 0)
	require.NoError(t, dfs.Preprocess(g))
	res := embedder.Embed(g)
	require.Equal(t, embedder.OK, res.Code)

	report := integrity.Check(g)
	require.True(t, report.ConnectedOK, report.Issues)
	require.True(t, report.RotationOK, report.Issues)
	require.True(t, report.EulerOK, report.Issues)
}

func TestCheck_DupProducesStructurallyEquivalentCopy(t *testing.T) {
	g := graph.New(4)
	g.Init(4)
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)

	cp := g.Dup()

	type summary struct {
		N, M int
	}
	want := summary{N: g.N(), M: g.M()}
	got := summary{N: cp.N(), M: cp.M()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Dup() changed graph shape (-want +got):\n%s", diff)
	}
}
