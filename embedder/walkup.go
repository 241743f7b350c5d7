package embedder

import "github.com/katalvlaran/planarity/graph"

// walkup climbs from w toward v along the DFS-parent chain, marking every
// bicomp root it crosses as pertinent to its parent so Walkdown knows
// which child bicomps to visit when it processes v. w is the descendant
// endpoint of an unembedded back edge (v, w); v is always w's ancestor by
// construction (Type == ArcForward at v, ArcBack at w). Complexity: O(d)
// per call, d being the DFS-tree distance from w up to v: the climb always
// continues to v, also past roots that an earlier call for the same v
// already marked. Grounded on the original C
// implementation's gp_Walkup, rendered as an explicit loop per spec.md
// §9's non-recursive-traversal preference.
func walkup(g *graph.Graph, v, w int) {
	g.V(w).AdjacentTo = v

	cur := w
	for cur != v {
		parent := g.V(cur).DFSParent
		if parent == graph.NIL {
			return
		}
		markPertinent(g, cur, parent, v)
		cur = parent
	}
}

// markPertinent inserts the root copy representing child's bicomp into
// parent's pertinentBicompList, ordered so externally-active roots sit at
// the head (invariant per spec.md §4.4) and internally-active roots
// accumulate at the tail, where Walkdown visits them first.
func markPertinent(g *graph.Graph, child, parent, v int) {
	r := rootCopy(g, child)
	if g.V(r).PertNext != graph.NIL || g.V(r).PertPrev != graph.NIL || g.V(parent).PertHead == r {
		return
	}
	pv := g.V(parent)
	links := graph.ListLinks{
		Next:    func(i int) int { return g.V(i).PertNext },
		SetNext: func(i, val int) { g.V(i).PertNext = val },
		Prev:    func(i int) int { return g.V(i).PertPrev },
		SetPrev: func(i, val int) { g.V(i).PertPrev = val },
	}
	if isExternallyActive(g, child, v) {
		graph.ListPushFront(&pv.PertHead, &pv.PertTail, links, r)
	} else {
		graph.ListPushBack(&pv.PertHead, &pv.PertTail, links, r)
	}
}
