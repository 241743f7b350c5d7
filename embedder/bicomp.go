package embedder

import "github.com/katalvlaran/planarity/graph"

// rootCopy returns the virtual root-copy index reserved for vertex c when c
// is some vertex's DFS child (spec.md §4.1: root copies live in [N, 2N)).
// The DFS root itself never uses its own root copy slot; it stays unused.
func rootCopy(g *graph.Graph, c int) int { return g.N() + c }

// realVertex is rootCopy's inverse: given an index that may be a real
// vertex or a root copy, return the real vertex it stands in for.
func realVertex(g *graph.Graph, idx int) int {
	if idx >= g.N() {
		return idx - g.N()
	}
	return idx
}

// initBicomps builds the initial trivial bicomps: for every non-root
// vertex c with DFS parent p, the tree arc (p, c) is repointed so it runs
// between rootCopy(c) and c instead of between p and c directly — p only
// gains the edge once mergeBicomps later identifies rootCopy(c) with p.
// Every back/forward arc is detached from both endpoints' rotations;
// Walkdown re-inserts each one at the precise point it belongs once it
// decides to embed it. Grounded on the root-copy identification scheme in
// spec.md §4.1/§4.4 and the original C implementation's gp_CreateDFSTree.
func initBicomps(g *graph.Graph) {
	n := g.N()
	for c := 0; c < n; c++ {
		p := g.V(c).DFSParent
		if p == graph.NIL {
			continue
		}
		e := findTreeArc(g, p, c)
		twin := graph.Twin(e)
		rc := rootCopy(g, c)

		g.DetachArc(p, twin)
		g.V(rc).LinkNext, g.V(rc).LinkPrev = twin, twin
		g.V(rc).FirstArc = graph.NIL
		g.InsertArcAfter(rc, graph.NIL, twin)
		g.A(twin).V = c

		g.V(c).LinkNext, g.V(c).LinkPrev = e, e
	}

	for e := 0; e < g.ArcArenaLen(); e++ {
		arc := g.A(e)
		if !arc.InUse {
			continue
		}
		if arc.Type == graph.ArcBack || arc.Type == graph.ArcForward {
			tail := g.Tail(e)
			g.DetachArc(tail, e)
		}
	}
}

// findTreeArc returns the arc owned by p pointing to its tree child c.
func findTreeArc(g *graph.Graph, p, c int) int {
	start := g.V(p).FirstArc
	e := start
	for {
		if g.A(e).V == c && g.A(e).Type == graph.ArcTree {
			return e
		}
		e = g.A(e).Link[0]
		if e == start {
			return graph.NIL
		}
	}
}

// externalFaceStep returns the arc to take leaving w, having just arrived
// via arrivedVia: whichever of w's two face-boundary slots isn't the twin
// of arrivedVia. On a degenerate single-arc bicomp (a leaf not yet merged
// into anything) both slots are equal and the walk correctly bounces back
// the way it came.
func externalFaceStep(g *graph.Graph, w, arrivedVia int) int {
	v := g.V(w)
	twin := graph.Twin(arrivedVia)
	if v.LinkNext == twin {
		return v.LinkPrev
	}
	return v.LinkNext
}

// isPertinent reports whether w's subtree (in the bicomp currently rooted
// under v's processing) still has an unembedded back edge to v: either w
// itself is v's back-edge neighbor, or w has a non-empty pertinent-bicomp
// list (some descendant of w still needs to reach v).
func isPertinent(g *graph.Graph, w, v int) bool {
	wv := g.V(w)
	return wv.AdjacentTo == v || wv.PertHead != graph.NIL
}

// isExternallyActive reports whether w still needs to remain on the
// external face for some ancestor strictly above v: either w has a
// separated-child-list entry whose Lowpoint is less than v's DFI (an
// unprocessed descendant subtree reaching above v), or w's own
// LeastAncestor is less than v's DFI (a direct back edge above v).
func isExternallyActive(g *graph.Graph, w, v int) bool {
	wv := g.V(w)
	vDFI := g.V(v).DFI
	if wv.LeastAncestor < vDFI {
		return true
	}
	for c := wv.SepHead; c != graph.NIL; c = g.V(c).SepNext {
		if g.V(c).Lowpoint < vDFI {
			return true
		}
	}
	return false
}

// mergeBicomps identifies root copy r with v, splicing r's bicomp face
// into v's own. treeArc is the arc at v (or, before v has any arcs, the
// twin of r's own arc) that leads to r's underlying child. r's two face
// arcs, LinkNext and LinkPrev, are taken so that the one equal to
// Twin(treeArc), if either is, is spliced second; both are detached from
// r, inserted into v's rotation after v.FirstArc, and any of v's face
// slots that were NIL or pointed at treeArc are set to them. The child
// bicomp is never inverted: no arc's Sign or Link fields inside it change.
func mergeBicomps(g *graph.Graph, v, treeArc, r int) {
	rv := g.V(r)
	vv := g.V(v)

	far := rv.LinkPrev
	near := rv.LinkNext
	if far == graph.Twin(treeArc) {
		far, near = near, far
	}

	g.DetachArc(r, near)
	g.DetachArc(r, far)

	if vv.FirstArc == graph.NIL {
		vv.LinkNext, vv.LinkPrev = graph.NIL, graph.NIL
	}
	if vv.LinkNext == treeArc || vv.LinkNext == graph.NIL {
		if vv.FirstArc == treeArc || vv.FirstArc == graph.NIL {
			vv.FirstArc = graph.NIL
		}
		vv.LinkNext = far
	}
	if vv.LinkPrev == treeArc || vv.LinkPrev == graph.NIL {
		vv.LinkPrev = near
	}
	if vv.FirstArc == graph.NIL {
		vv.FirstArc = far
	}

	g.InsertArcAfter(v, pickAnchor(g, v), far)
	if near != far {
		g.InsertArcAfter(v, far, near)
	}

	rv.LinkNext, rv.LinkPrev = graph.NIL, graph.NIL
	rv.FirstArc = graph.NIL
}

// pickAnchor returns an existing arc in v's rotation to splice after, or
// NIL if v's rotation is still empty (first-ever merge into v).
func pickAnchor(g *graph.Graph, v int) int {
	return g.V(v).FirstArc
}
