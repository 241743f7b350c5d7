package fileio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/fileio"
)

func TestReadAdjList_ParsesTriangle(t *testing.T) {
	g, labels, err := fileio.ReadAdjList("a(b,c), b(c)")
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 3, g.M())
	require.ElementsMatch(t, []string{"a", "b", "c"}, labels)
}

func TestReadAdjList_RejectsEmpty(t *testing.T) {
	_, _, err := fileio.ReadAdjList("   ")
	require.ErrorIs(t, err, fileio.ErrEmptyInput)
}

func TestWriteAdjList_RoundTripsEdgeCount(t *testing.T) {
	g, labels, err := fileio.ReadAdjList("a(b,c), b(c)")
	require.NoError(t, err)
	out := fileio.WriteAdjList(g, labels)
	g2, _, err := fileio.ReadAdjList(out)
	require.NoError(t, err)
	require.Equal(t, g.M(), g2.M())
}

func TestReadAdjMatrix_ParsesSquare(t *testing.T) {
	g, err := fileio.ReadAdjMatrix("0 1 1\n1 0 1\n1 1 0\n")
	require.NoError(t, err)
	require.Equal(t, 3, g.N())
	require.Equal(t, 3, g.M())
}

func TestReadAdjMatrix_RejectsAsymmetric(t *testing.T) {
	_, err := fileio.ReadAdjMatrix("0 1\n0 0\n")
	require.ErrorIs(t, err, fileio.ErrAsymmetricMatrix)
}

func TestWriteAdjMatrix_RoundTrips(t *testing.T) {
	g, err := fileio.ReadAdjMatrix("0 1 1\n1 0 1\n1 1 0\n")
	require.NoError(t, err)
	out := fileio.WriteAdjMatrix(g)
	g2, err := fileio.ReadAdjMatrix(out)
	require.NoError(t, err)
	require.Equal(t, g.M(), g2.M())
}
