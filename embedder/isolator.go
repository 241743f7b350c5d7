package embedder

import (
	"github.com/katalvlaran/planarity/embedder/ext"
	"github.com/katalvlaran/planarity/graph"
)

// isolateObstruction builds the pruned Kuratowski witness once Walkdown has
// failed at vertex V while resolving the bicomp rooted at R. Per spec.md
// §4.7 the witness needs three distinct pieces, all of which the old
// ancestor-only marking skipped:
//
//   - the outer-face path from X to Y through R — the two branches
//     Walkdown's face walk actually collided with (markExternalFacePath);
//   - the tree path connecting the blocked pertinent vertex W down to V
//     (markDFSPath), closing the "top" of the subdivision;
//   - at least one still-unembedded back edge climbing from below W back
//     up to V (findDescendantWithBackEdge + markDFSPath), closing the
//     "bottom" — without it the witness is just the two face branches with
//     no third independent path, which is not a Kuratowski subdivision.
//
// classifyMinor's label decides which extra branch, if any, gets added on
// top of that common skeleton: MinorC/D contribute a second pertinent
// child of W (the second split vertex a K3,3 subdivision needs), MinorE's
// subcases contribute the entangled ancestor branch that caused the
// blockage to be indirect rather than a direct back edge from W itself.
// Grounded on spec.md §4.7's "mark then prune" description and the
// mark/join/delete shape of `_examples/original_source`'s outerplanarity
// isolator (`_IsolateOuterplanarObstruction` and its
// `_MarkPathAlongBicompExtFace`/`fpMarkDFSPath` helpers) — the closest
// isolator source the pack actually ships, the full K5/K3,3 case having no
// surviving C file in `_examples/original_source` to port line-for-line.
func isolateObstruction(g *graph.Graph, ctx *ext.IsolatorContext) *graph.Graph {
	n := g.N()
	marked := make([]bool, n)
	mark := func(v int) {
		if v != graph.NIL && v >= 0 && v < n {
			marked[v] = true
		}
	}

	w := ctx.W
	mark(ctx.V)
	mark(w)
	mark(realVertex(g, ctx.R))
	mark(ctx.X)
	mark(ctx.Y)

	markExternalFacePath(g, ctx.R, ctx.X, mark)
	markExternalFacePath(g, ctx.R, ctx.Y, mark)
	markDFSPath(g, w, ctx.V, mark)

	switch ctx.Minor {
	case ext.MinorC, ext.MinorD:
		markSecondPertinentBranch(g, w, ctx.V, mark)
	case ext.MinorE1, ext.MinorE2, ext.MinorE3, ext.MinorE4:
		markEntangledBranch(g, ctx, mark)
	}

	if dw := findDescendantWithBackEdge(g, w, ctx.V); dw != graph.NIL {
		mark(dw)
		markDFSPath(g, dw, w, mark)
	}

	return pruneToMarked(g, marked)
}

// markDFSPath marks every vertex on the DFS-tree path from "from" up to
// and including "to" (an ancestor of "from" by construction), stopping at
// the root if "to" is never reached so a mismatched pair can't loop.
func markDFSPath(g *graph.Graph, from, to int, mark func(int)) {
	if from == graph.NIL {
		return
	}
	for cur := from; cur != graph.NIL; cur = g.V(cur).DFSParent {
		mark(cur)
		if cur == to {
			return
		}
	}
}

// markExternalFacePath walks the external face of the bicomp rooted at r
// looking for target, trying both face directions since the isolator
// context doesn't retain which of LinkNext/LinkPrev is the one that
// actually reached X versus Y. Every vertex on whichever direction finds
// target gets marked; the other direction is left untouched. If neither
// direction reaches target within one full lap (e.g. target belongs to a
// bicomp nested deeper than r, reached only through a recursive Walkdown
// call), target is still marked by the caller directly — this just adds
// the connecting face vertices when they exist.
func markExternalFacePath(g *graph.Graph, r, target int, mark func(int)) {
	if target == graph.NIL {
		return
	}
	rv := g.V(r)
	for _, start := range [2]int{rv.LinkNext, rv.LinkPrev} {
		if start == graph.NIL {
			continue
		}
		if walkFaceMarking(g, r, start, target, mark) {
			return
		}
	}
}

// walkFaceMarking walks the external face starting at arc startArc (owned
// by r), collecting every vertex crossed. If target is found within one
// lap the collected vertices are committed via mark and true is returned;
// otherwise nothing is committed and false is returned.
func walkFaceMarking(g *graph.Graph, r, startArc, target int, mark func(int)) bool {
	var visited []int
	arc := startArc
	bound := 2*g.N() + 2
	for i := 0; i < bound; i++ {
		w := g.A(arc).V
		real := realVertex(g, w)
		visited = append(visited, real)
		if real == target {
			for _, v := range visited {
				mark(v)
			}
			return true
		}
		if real == realVertex(g, r) {
			return false
		}
		arc = externalFaceStep(g, w, arc)
	}
	return false
}

// markSecondPertinentBranch handles MinorC/D: w has (at least) two
// separated children still carrying pertinence toward v, which is exactly
// the second split vertex a K3,3 subdivision needs alongside the R/X/Y
// branch already marked. Marks up to two such children plus a descendant
// of each with a still-unembedded back edge to v.
func markSecondPertinentBranch(g *graph.Graph, w, v int, mark func(int)) {
	found := 0
	for c := g.V(w).SepHead; c != graph.NIL && found < 2; c = g.V(c).SepNext {
		dw := findDescendantWithBackEdge(g, c, v)
		if dw == graph.NIL {
			continue
		}
		mark(c)
		mark(dw)
		markDFSPath(g, dw, c, mark)
		found++
	}
}

// markEntangledBranch handles MinorE's subcases: the blockage is entangled
// with an already-resolved ancestor back edge rather than a plain
// ancestor-to-W relationship, so the extra branch to mark runs through
// whichever of W, X or Y the classifier identified as the entangled side.
func markEntangledBranch(g *graph.Graph, ctx *ext.IsolatorContext, mark func(int)) {
	switch ctx.Minor {
	case ext.MinorE1:
		markDFSPath(g, ctx.W, ctx.V, mark)
	case ext.MinorE2:
		markDFSPath(g, ctx.X, ctx.V, mark)
	case ext.MinorE3:
		markDFSPath(g, ctx.Y, ctx.V, mark)
	case ext.MinorE4:
		markDFSPath(g, ctx.X, ctx.V, mark)
		markDFSPath(g, ctx.Y, ctx.V, mark)
	}
}

// findDescendantWithBackEdge searches the static DFS subtree rooted at
// root (via SepHead/SepNext, which dfs.Preprocess builds once and Walkdown
// never mutates) for a vertex still carrying AdjacentTo == anc: a back
// edge to anc that Walkdown has not yet embedded. Returns graph.NIL if
// every back edge in the subtree has already been resolved, which can
// happen when the blockage is purely a face-walk collision rather than a
// specific unembedded edge.
func findDescendantWithBackEdge(g *graph.Graph, root, anc int) int {
	if root == graph.NIL {
		return graph.NIL
	}
	if g.V(root).AdjacentTo == anc {
		return root
	}
	for c := g.V(root).SepHead; c != graph.NIL; c = g.V(c).SepNext {
		if found := findDescendantWithBackEdge(g, c, anc); found != graph.NIL {
			return found
		}
	}
	return graph.NIL
}

// pruneToMarked builds a fresh witness graph containing only the marked
// vertices and the edges between them, read directly off g's arc arena
// rather than Dup-then-DeleteEdge: scanning by arc index picks up both
// currently-embedded edges and the still-detached forward/back arc that
// closes the witness's third path, and building fresh via AddEdge avoids
// ever touching a detached arc's stale rotation links (DeleteEdge on an
// arc that initBicomps already spliced out of its owner's rotation would
// read those stale Link fields and corrupt an unrelated vertex's live
// rotation — see DESIGN.md).
func pruneToMarked(g *graph.Graph, marked []bool) *graph.Graph {
	n := g.N()
	witness := graph.New(n, graph.AllowDenseGraph())
	witness.Init(n)

	seen := make(map[[2]int]bool)
	for e := 0; e < g.ArcArenaLen(); e += 2 {
		if !g.A(e).InUse {
			continue
		}
		tail := g.Tail(e)
		head := g.A(e).V
		if tail >= n || head >= n || tail == head {
			continue
		}
		if !marked[tail] || !marked[head] {
			continue
		}
		key := [2]int{tail, head}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		_, _ = witness.AddEdge(key[0], key[1])
	}
	return witness
}
