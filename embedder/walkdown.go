package embedder

import (
	"github.com/katalvlaran/planarity/embedder/ext"
	"github.com/katalvlaran/planarity/graph"
)

// walkdown resolves every pertinent child bicomp of v by walking each
// one's external face in both directions, embedding back edges to v as it
// finds them and recursing into nested pertinence. It processes v's
// pertinentBicompList from tail to head so internally-active roots (at
// the tail, per markPertinent's ordering) are merged before the
// externally-active ones at the head are even attempted, matching
// spec.md §4.6 item 1's required visit order. Returns stepBlocked with ctx
// populated the first time some root's pertinence can't be resolved in
// either direction.
func walkdown(g *graph.Graph, v int, extn ext.Extension) (stepStatus, *ext.IsolatorContext) {
	for {
		r := g.V(v).PertTail
		if r == graph.NIL {
			break
		}
		removePertinent(g, v, r)

		status, ctx := resolveRoot(g, v, r, extn)
		if status == stepBlocked {
			return stepBlocked, ctx
		}
	}
	return stepOK, nil
}

// resolveRoot walks both directions out of root copy r, embedding
// whatever pertinence it finds, until the root's own pertinence (w ==
// r's underlying child no longer has any unresolved back edge to v) is
// exhausted, then merges r into v. If both directions get stuck on an
// externally-active vertex while pertinence remains, that's Walkdown
// failure: build the isolator context identifying the blocking vertices.
func resolveRoot(g *graph.Graph, v, r int, extn ext.Extension) (stepStatus, *ext.IsolatorContext) {
	rv := g.V(r)
	dirs := []int{rv.LinkNext, rv.LinkPrev}

	var blockedAt [2]int
	var blocked [2]bool
	for d := 0; d < 2; d++ {
		if dirs[d] == graph.NIL {
			blocked[d] = true
			continue
		}
		x, fail := walkFace(g, v, r, dirs[d], extn)
		if fail != graph.NIL {
			blocked[d] = true
			blockedAt[d] = fail
		} else {
			_ = x
		}
	}

	if blocked[0] && blocked[1] && childStillPertinent(g, v, r) {
		ctx := &ext.IsolatorContext{
			R: r,
			V: v,
			W: realVertex(g, r),
			X: blockedAt[0],
			Y: blockedAt[1],
		}
		classifyMinor(g, ctx)
		return stepBlocked, ctx
	}

	chosenDir := 0
	if dirs[0] == graph.NIL {
		chosenDir = 1
	}
	if dirs[chosenDir] != graph.NIL {
		treeArc := treeArcToChild(g, v, r)
		if treeArc != graph.NIL {
			mergeBicomps(g, v, treeArc, r)
			_ = extn.MergeBicomps(g, v, chosenDir, r, chosenDir)
		}
	}
	return stepOK, nil
}

// walkFace walks the external face starting at arc startArc (owned by the
// current root r, entering the next vertex), embedding any direct back
// edge to v it encounters and recursing into pertinent descendants via
// their own resolveRoot calls. Returns NIL on success (pertinence along
// this direction fully resolved) or the externally-active vertex that
// blocked progress.
func walkFace(g *graph.Graph, v, r, startArc int, extn ext.Extension) (lastVertex, blockedAt int) {
	arc := startArc
	cur := r
	for {
		w := g.A(arc).V
		if w == v {
			return w, graph.NIL
		}

		if isPertinent(g, w, v) {
			if g.V(w).AdjacentTo == v {
				embedBackEdge(g, v, w, arc)
				g.V(w).AdjacentTo = graph.NIL
			}
			for g.V(w).PertHead != graph.NIL {
				childR := g.V(w).PertHead
				removePertinent(g, w, childR)
				status, ctx := resolveRoot(g, w, childR, extn)
				if status == stepBlocked {
					return w, ctx.X
				}
			}
			arc = externalFaceStep(g, w, arc)
			cur = w
			continue
		}

		if isExternallyActive(g, w, v) {
			return cur, w
		}

		arc = externalFaceStep(g, w, arc)
		cur = w
	}
}

// childStillPertinent reports whether r's underlying child still has
// unresolved pertinence after both face-walk directions have been tried —
// i.e. whether Walkdown genuinely failed rather than simply finished.
func childStillPertinent(g *graph.Graph, v, r int) bool {
	real := realVertex(g, r)
	return g.V(real).AdjacentTo == v || g.V(real).PertHead != graph.NIL
}

// removePertinent splices root r out of owner's pertinentBicompList.
func removePertinent(g *graph.Graph, owner, r int) {
	ov := g.V(owner)
	links := graph.ListLinks{
		Next:    func(i int) int { return g.V(i).PertNext },
		SetNext: func(i, val int) { g.V(i).PertNext = val },
		Prev:    func(i int) int { return g.V(i).PertPrev },
		SetPrev: func(i, val int) { g.V(i).PertPrev = val },
	}
	graph.ListRemove(&ov.PertHead, &ov.PertTail, links, r)
}

// treeArcToChild finds the arc at v pointing into root copy r's
// underlying real child, which InitBicomps repointed to originate at r
// rather than v — i.e. the arc InsertArcAfter/mergeBicomps needs as the
// splice point.
func treeArcToChild(g *graph.Graph, v, r int) int {
	child := realVertex(g, r)
	start := g.V(v).FirstArc
	if start == graph.NIL {
		return findTreeArcAtRoot(g, r, child)
	}
	e := start
	for {
		if g.A(e).V == child {
			return e
		}
		e = g.A(e).Link[0]
		if e == start {
			break
		}
	}
	return findTreeArcAtRoot(g, r, child)
}

// findTreeArcAtRoot locates the tree arc still owned by root copy r (v
// hasn't merged anything yet, so the splice point is r's own single arc).
func findTreeArcAtRoot(g *graph.Graph, r, child int) int {
	e := g.V(r).FirstArc
	if e == graph.NIL {
		return graph.NIL
	}
	return graph.Twin(e)
}

// embedBackEdge finds the still-detached forward arc (v, w) in v's
// fwdArcList, removes it from that list, and inserts the edge into both
// v's and w's rotations adjacent to the current face-walk position,
// closing off the pertinence that brought Walkup to mark w.
func embedBackEdge(g *graph.Graph, v, w, atArc int) {
	arc := findAndUnlinkFwdArc(g, v, w)
	if arc == graph.NIL {
		return
	}
	back := graph.Twin(arc)

	g.InsertArcAfter(v, pickAnchor(g, v), arc)
	g.InsertArcAfter(w, atArc, back)

	vv := g.V(v)
	if vv.LinkNext == graph.NIL {
		vv.LinkNext = arc
	}
	if vv.LinkPrev == graph.NIL {
		vv.LinkPrev = arc
	}
}

// findAndUnlinkFwdArc scans v's fwdArcList for the forward arc targeting
// w, splicing it out of the singly-linked list as it goes.
func findAndUnlinkFwdArc(g *graph.Graph, v, w int) int {
	vv := g.V(v)
	prev := graph.NIL
	cur := vv.FwdHead
	for cur != graph.NIL {
		if g.A(cur).V == w {
			if prev == graph.NIL {
				vv.FwdHead = g.A(cur).FwdNext
			} else {
				g.A(prev).FwdNext = g.A(cur).FwdNext
			}
			g.A(cur).FwdNext = graph.NIL
			return cur
		}
		prev = cur
		cur = g.A(cur).FwdNext
	}
	return graph.NIL
}
