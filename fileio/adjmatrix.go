package fileio

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/planarity/graph"
)

// ReadAdjMatrix parses a dense 0/1 adjacency matrix, one row per line,
// whitespace-separated columns, into a *graph.Graph. Grounded on the
// teacher's matrix.Matrix row/column bounds-checked access pattern,
// rendered here as a plain [][]int scan since the embedder only needs a
// one-shot parse, not a reusable Matrix value. Complexity: O(N^2).
func ReadAdjMatrix(s string) (*graph.Graph, error) {
	lines := splitNonEmptyLines(s)
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(lines)
	rows := make([][]int, n)
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, ErrNonRectangular
		}
		row := make([]int, n)
		for j, f := range fields {
			val, err := strconv.Atoi(f)
			if err != nil {
				return nil, ErrBadToken
			}
			row[j] = val
		}
		rows[i] = row
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return nil, ErrAsymmetricMatrix
			}
		}
	}

	g := graph.New(n, graph.AllowDenseGraph())
	g.Init(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i][j] != 0 {
				if _, err := g.AddEdge(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// WriteAdjMatrix renders g as a dense 0/1 adjacency matrix. Complexity: O(N^2).
func WriteAdjMatrix(g *graph.Graph) string {
	n := g.N()
	matrix := make([][]byte, n)
	for i := range matrix {
		matrix[i] = make([]byte, n)
		for j := range matrix[i] {
			matrix[i][j] = '0'
		}
	}
	for u := 0; u < n; u++ {
		start := g.V(u).FirstArc
		if start == graph.NIL {
			continue
		}
		e := start
		for {
			v := g.A(e).V
			if v < n {
				matrix[u][v] = '1'
			}
			e = g.A(e).Link[0]
			if e == start {
				break
			}
		}
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(matrix[i][j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
