// Package outerplanar tests outerplanarity: a graph is outerplanar iff it
// has no K4 or K2,3 minor, which the embedder's extension hook can detect
// by restricting the isolator to that two-pattern set instead of the full
// K5/K3,3 Kuratowski set (spec.md §4.8's motivating example).
package outerplanar

import (
	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/embedder"
	"github.com/katalvlaran/planarity/embedder/ext"
	"github.com/katalvlaran/planarity/graph"
)

// extension narrows classifyMinor's output (computed by the core embedder
// before IsolateObstruction is even called, so it's the same label the
// full planarity isolator would have used) to the two outerplanarity
// obstructions: MinorA and MinorE collapse onto the K4 pattern (no second
// branch needed, the face-path-plus-back-edge skeleton already gives four
// mutually reachable branch vertices), MinorB/C/D collapse onto K2,3 (the
// second pertinent branch they contribute is exactly K2,3's third leaf).
// Grounded on `_examples/original_source/c/graphOuterplanarObstruction.c`'s
// `_ChooseTypeOfNonOuterplanarityMinor`/`_IsolateOuterplanarityObstructionA/B/E`
// shape: mark the whole external face of the blocked bicomp, mark the tree
// path down to the pertinent vertex, mark a still-unembedded back edge
// climbing back up, and — only for the B/C/D-shaped case — a second
// branch. The marking helpers below are local to this package rather than
// imported from `embedder` because the core isolator's equivalents are
// unexported (spec.md §4.8: extensions get the live arena, not the core's
// internals), the same separation the original C sources keep between
// `graphIsolator.c`-style files and `graphOuterplanarObstruction.c`.
type extension struct {
	ext.Default
}

func (extension) IsolateObstruction(g *graph.Graph, ctx *ext.IsolatorContext) *graph.Graph {
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
	markWholeExternalFace(g, ctx.R, mark)
	markDFSPath(g, w, ctx.V, mark)
	if dw := findDescendantWithBackEdge(g, w, ctx.V); dw != graph.NIL {
		mark(dw)
		markDFSPath(g, dw, w, mark)
	}

	switch ctx.Minor {
	case ext.MinorB, ext.MinorC, ext.MinorD:
		markSecondBranch(g, w, ctx.V, mark)
	case ext.MinorE1, ext.MinorE2, ext.MinorE3, ext.MinorE4:
		mark(ctx.X)
		mark(ctx.Y)
		markDFSPath(g, ctx.X, ctx.V, mark)
		markDFSPath(g, ctx.Y, ctx.V, mark)
	}

	return pruneToMarked(g, marked)
}

// realVertex mirrors embedder's unexported helper of the same name: given
// an index that may be a real vertex or a root copy, return the real
// vertex it stands in for.
func realVertex(g *graph.Graph, idx int) int {
	if idx >= g.N() {
		return idx - g.N()
	}
	return idx
}

// externalFaceStep mirrors embedder's unexported helper: the arc to take
// leaving w, having just arrived via arrivedVia.
func externalFaceStep(g *graph.Graph, w, arrivedVia int) int {
	v := g.V(w)
	twin := graph.Twin(arrivedVia)
	if v.LinkNext == twin {
		return v.LinkPrev
	}
	return v.LinkNext
}

// markWholeExternalFace marks every vertex on the full external-face cycle
// of the bicomp rooted at r, per `_MarkPathAlongBicompExtFace(graph, r, r)`
// in the grounding C source — passing r as both endpoints there means
// "the entire face", which is what the outerplanarity isolator needs since
// (unlike the full planarity isolator) it doesn't need to distinguish
// which half of the face reached which blocking vertex.
func markWholeExternalFace(g *graph.Graph, r int, mark func(int)) {
	start := g.V(r).LinkNext
	if start == graph.NIL {
		mark(realVertex(g, r))
		return
	}
	arc := start
	bound := 2*g.N() + 2
	for i := 0; i < bound; i++ {
		w := g.A(arc).V
		mark(realVertex(g, w))
		if w == r {
			return
		}
		arc = externalFaceStep(g, w, arc)
	}
}

// markDFSPath marks every vertex on the DFS-tree path from "from" up to
// and including "to".
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

// findDescendantWithBackEdge searches root's static DFS subtree for a
// vertex still carrying AdjacentTo == anc: an unembedded back edge to anc.
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

// markSecondBranch marks a second separated child of w (and a descendant
// of it with a still-unembedded back edge to v), the extra leaf that turns
// the base skeleton into a K2,3 shape instead of a K4 shape.
func markSecondBranch(g *graph.Graph, w, v int, mark func(int)) {
	for c := g.V(w).SepHead; c != graph.NIL; c = g.V(c).SepNext {
		dw := findDescendantWithBackEdge(g, c, v)
		if dw == graph.NIL {
			continue
		}
		mark(c)
		mark(dw)
		markDFSPath(g, dw, c, mark)
		return
	}
}

// pruneToMarked builds a fresh witness graph over g's own vertex numbering
// containing only the marked vertices and the edges between them, reading
// directly off g's arc arena (see embedder.isolateObstruction's doc
// comment for why this is safer than Dup-then-DeleteEdge here too).
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

// Result is the outcome of Embed: whether g is outerplanar, and — when it
// is not — the K2,3/K4 witness the narrowed isolator produced.
type Result struct {
	Outerplanar bool
	Witness     *graph.Graph
}

// Embed tests outerplanarity by the standard reduction to planarity: add a
// new universal vertex connected to every existing vertex, embed the
// augmented graph with the minor set narrowed to {A, B, E}, and report
// whichever witness comes back. g is outerplanar iff the augmented graph
// is planar.
func Embed(g *graph.Graph) (Result, error) {
	n := g.N()
	aug := graph.New(n+1, graph.AllowDenseGraph())
	aug.Init(n + 1)

	for u := 0; u < n; u++ {
		start := g.V(u).FirstArc
		if start == graph.NIL {
			continue
		}
		e := start
		for {
			v := g.A(e).V
			if v < n && u < v {
				if _, err := aug.AddEdge(u, v); err != nil {
					return Result{}, err
				}
			}
			e = g.A(e).Link[0]
			if e == start {
				break
			}
		}
	}
	hub := n
	for u := 0; u < n; u++ {
		if _, err := aug.AddEdge(u, hub); err != nil {
			return Result{}, err
		}
	}

	if err := dfs.Preprocess(aug); err != nil {
		return Result{}, err
	}
	res := embedder.EmbedWithExtension(aug, extension{})
	if res.Code == embedder.OK {
		return Result{Outerplanar: true}, nil
	}
	return Result{Outerplanar: false, Witness: res.Kuratowski}, nil
}

// Check reports whether g is outerplanar, discarding the witness; kept for
// callers (and tests) that only need the boolean.
func Check(g *graph.Graph) (bool, error) {
	res, err := Embed(g)
	if err != nil {
		return false, err
	}
	return res.Outerplanar, nil
}
