package embedder

import (
	"github.com/katalvlaran/planarity/embedder/ext"
	"github.com/katalvlaran/planarity/graph"
)

// classifyMinor assigns ctx.Minor from the blocked-vertex pattern
// Walkdown recorded. Per spec.md §4.7 the five Kuratowski minors are
// distinguished by the relationship between the pertinent vertex W that
// couldn't be reached and the two blocking vertices X and Y:
//
//   - Minor A: W is not even a direct DFS child of V — the failure sits
//     below a separated bicomp rather than on V's own pertinent child,
//     the simplest K5 pattern of three independent branches off V.
//   - Minor B: W itself is externally active above V — one of the two
//     branches can reuse W directly as a K3,3 split vertex.
//   - Minor C/D: W has two or more separated DFS children (counted
//     whether or not they still carry pertinence), pointing at a K3,3
//     subdivision split across siblings;
//     D is the stronger case where at least two of those children are
//     themselves externally active (both sides of the split still need
//     to reach further up than V), C the weaker case of at most one.
//   - Minor E (subcases E1-E4): none of the above applies, so the
//     blockage is entangled with an already-resolved back edge; the
//     subcase names which of W, X or Y the entanglement runs through,
//     which isolateObstruction uses to pick the extra branch to mark.
//
// This is every minor this codebase's isolator can actually reach from
// the IsolatorContext fields Walkdown populates (R, V, W, X, Y); it does
// not re-derive the original C isolator's full dozen bicomp-shape special
// cases, since the relevant source file is not present in
// `_examples/original_source` (only the outerplanarity isolator is). The
// label now drives isolateObstruction's extraction directly — see
// DESIGN.md for the mapping from each case to the branch it marks.
func classifyMinor(g *graph.Graph, ctx *ext.IsolatorContext) {
	w, v := ctx.W, ctx.V
	x, y := ctx.X, ctx.Y

	if g.V(w).DFSParent != v {
		ctx.Minor = ext.MinorA
		return
	}

	if isExternallyActive(g, w, v) {
		ctx.Minor = ext.MinorB
		return
	}

	childCount, activeChildren := 0, 0
	for c := g.V(w).SepHead; c != graph.NIL; c = g.V(c).SepNext {
		childCount++
		if isExternallyActive(g, c, v) {
			activeChildren++
		}
	}
	if childCount >= 2 {
		if activeChildren >= 2 {
			ctx.Minor = ext.MinorD
		} else {
			ctx.Minor = ext.MinorC
		}
		return
	}

	switch {
	case w == x || w == y:
		ctx.Minor = ext.MinorE1
	case x != graph.NIL && x < g.N() && isExternallyActive(g, x, v):
		ctx.Minor = ext.MinorE2
	case y != graph.NIL && y < g.N() && isExternallyActive(g, y, v):
		ctx.Minor = ext.MinorE3
	default:
		ctx.Minor = ext.MinorE4
	}
}
