// Package drawing derives a visibility-representation layout from a
// combinatorial embedding: every vertex gets a horizontal segment row,
// every edge a vertical segment column, following the same
// coordinate/adjacency bookkeeping style as the teacher's gridgraph
// package (cells addressed by (row, col), neighbors discovered by walking
// a fixed offset table) but driven by the embedder's rotation system
// instead of a literal 2D input grid.
package drawing

import (
	"github.com/katalvlaran/planarity/graph"
)

// Segment is one vertex's horizontal placement in the layout.
type Segment struct {
	Vertex   int
	Row      int
	ColStart int
	ColEnd   int
}

// Layout is the full visibility representation: one Segment per vertex
// plus the column each embedded edge occupies.
type Layout struct {
	Segments []Segment
	EdgeCols map[[2]int]int
}

// Build walks g's rotation system (already embedded by the embedder
// package) and assigns each vertex a row by DFI and each edge a distinct
// column in the order its tail-side arc appears in the rotation, a direct
// rendering of the combinatorial embedding rather than a coordinate
// solver — sufficient for a textual/debugging visibility diagram, not a
// crossing-minimizing drawing.
func Build(g *graph.Graph) Layout {
	n := g.N()
	layout := Layout{
		Segments: make([]Segment, 0, n),
		EdgeCols: make(map[[2]int]int),
	}

	col := 0
	for u := 0; u < n; u++ {
		start := g.V(u).FirstArc
		colStart := col
		if start != graph.NIL {
			e := start
			for {
				v := g.A(e).V
				if v < n && u < v {
					key := [2]int{u, v}
					layout.EdgeCols[key] = col
					col++
				}
				e = g.A(e).Link[0]
				if e == start {
					break
				}
			}
		}
		colEnd := col
		if colEnd == colStart {
			colEnd = colStart + 1
		}
		layout.Segments = append(layout.Segments, Segment{
			Vertex:   u,
			Row:      g.V(u).DFI,
			ColStart: colStart,
			ColEnd:   colEnd,
		})
	}
	return layout
}
