package dfs

import (
	"errors"

	"github.com/katalvlaran/planarity/graph"
)

// ErrDisconnected indicates the input has more than one connected
// component; the embedder processes a single component per call.
var ErrDisconnected = errors.New("dfs: graph has more than one connected component")

// infinity stands in for "no back edge reaches this vertex": any real DFI
// is smaller, so min() with it is a no-op until a genuine back edge is
// found.
const infinity = 1 << 30

// frame is one activation record of the explicit-stack DFS: cursor is the
// next arc of v to examine (NIL once v's circular adjacency list has been
// fully walked).
type frame struct {
	v         int
	cursor    int
	parentArc int
}

// Preprocess assigns DFI and DFSParent, classifies every arc tree/back,
// computes LeastAncestor and Lowpoint for every vertex, bucket-sorts each
// vertex's separatedDFSChildList by child Lowpoint, and threads each
// vertex's fwdArcList in ascending target-DFI order. Complexity: O(N+M).
func Preprocess(g *graph.Graph) error {
	n := g.N()
	if n == 0 {
		return nil
	}

	for i := 0; i < n; i++ {
		v := g.V(i)
		v.DFSParent, v.LeastAncestor, v.Lowpoint, v.DFI = graph.NIL, infinity, infinity, graph.NIL
		v.FwdHead = graph.NIL
		v.SepHead, v.SepTail = graph.NIL, graph.NIL
	}

	visited := make([]bool, n)
	counter := 0

	visited[0] = true
	g.V(0).DFI = counter
	counter++

	stack := make([]frame, 0, n)
	stack = append(stack, frame{v: 0, cursor: g.V(0).FirstArc, parentArc: graph.NIL})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		v := top.v

		if top.cursor == graph.NIL {
			finishVertex(g, v)
			stack = stack[:len(stack)-1]
			if parent := g.V(v).DFSParent; parent != graph.NIL {
				if g.V(v).Lowpoint < g.V(parent).Lowpoint {
					g.V(parent).Lowpoint = g.V(v).Lowpoint
				}
			}
			continue
		}

		e := top.cursor
		next := g.A(e).Link[0]
		if next == g.V(v).FirstArc {
			top.cursor = graph.NIL
		} else {
			top.cursor = next
		}

		if g.A(e).Type != graph.ArcUnknown {
			// Already classified from the other endpoint's scan (the
			// parent-edge twin, or a back edge this arc's owner already
			// saw while w was still the frame on top).
			continue
		}

		w := g.A(e).V
		if !visited[w] {
			visited[w] = true
			g.V(w).DFI = counter
			counter++
			g.V(w).DFSParent = v
			g.A(e).Type = graph.ArcTree
			g.A(graph.Twin(e)).Type = graph.ArcTreeChild
			stack = append(stack, frame{v: w, cursor: g.V(w).FirstArc, parentArc: e})
			continue
		}

		// Back edge: determine ancestor/descendant by DFI, since an
		// unclassified arc to an already-visited vertex can, in a
		// pathological adjacency order, be reached from either endpoint
		// first.
		anc, desc := w, v
		arcDescToAnc, arcAncToDesc := e, graph.Twin(e)
		if g.V(v).DFI < g.V(w).DFI {
			anc, desc = v, w
			arcAncToDesc, arcDescToAnc = e, graph.Twin(e)
		}
		g.A(arcDescToAnc).Type = graph.ArcBack
		g.A(arcAncToDesc).Type = graph.ArcForward
		if g.V(anc).DFI < g.V(desc).LeastAncestor {
			g.V(desc).LeastAncestor = g.V(anc).DFI
		}
	}

	for i := 0; i < n; i++ {
		if !visited[i] {
			return ErrDisconnected
		}
	}

	buildSeparatedChildLists(g, n)
	buildForwardArcLists(g, n)
	return nil
}

// finishVertex folds DFI and LeastAncestor into Lowpoint once all of v's
// children have already folded their own Lowpoint in via the caller's pop
// handling.
func finishVertex(g *graph.Graph, v int) {
	vv := g.V(v)
	if vv.DFI < vv.Lowpoint {
		vv.Lowpoint = vv.DFI
	}
	if vv.LeastAncestor < vv.Lowpoint {
		vv.Lowpoint = vv.LeastAncestor
	}
}

// buildSeparatedChildLists bucket-sorts, for every vertex, its DFS
// children by child Lowpoint ascending. O(N) total: one bucket per
// possible Lowpoint value.
func buildSeparatedChildLists(g *graph.Graph, n int) {
	buckets := make([][]int, n)
	for c := 0; c < n; c++ {
		parent := g.V(c).DFSParent
		if parent == graph.NIL {
			continue
		}
		lp := g.V(c).Lowpoint
		if lp >= n {
			lp = n - 1
		}
		if lp < 0 {
			lp = 0
		}
		buckets[lp] = append(buckets[lp], c)
	}
	links := graph.ListLinks{
		Next:    func(i int) int { return g.V(i).SepNext },
		SetNext: func(i, v int) { g.V(i).SepNext = v },
		Prev:    func(i int) int { return g.V(i).SepPrev },
		SetPrev: func(i, v int) { g.V(i).SepPrev = v },
	}
	for lp := 0; lp < n; lp++ {
		for _, c := range buckets[lp] {
			parent := g.V(c).DFSParent
			pv := g.V(parent)
			graph.ListPushBack(&pv.SepHead, &pv.SepTail, links, c)
		}
	}
}

// buildForwardArcLists bucket-sorts every unembedded forward arc by its
// descendant-endpoint DFI and threads each tail vertex's fwdArcList in
// that order (spec.md §4.3); the embedder's main loop walks these lists.
func buildForwardArcLists(g *graph.Graph, n int) {
	type fwd struct {
		tail, arc int
	}
	buckets := make([][]fwd, n)
	for e := 0; e < g.ArcArenaLen(); e++ {
		arc := g.A(e)
		if !arc.InUse || arc.Type != graph.ArcForward {
			continue
		}
		tail := g.Tail(e)
		d := g.V(arc.V).DFI
		if d < 0 {
			d = 0
		}
		buckets[d] = append(buckets[d], fwd{tail: tail, arc: e})
	}
	fwdTail := make([]int, n)
	for i := range fwdTail {
		fwdTail[i] = graph.NIL
	}
	for d := 0; d < n; d++ {
		for _, x := range buckets[d] {
			if fwdTail[x.tail] == graph.NIL {
				g.V(x.tail).FwdHead = x.arc
			} else {
				g.A(fwdTail[x.tail]).FwdNext = x.arc
			}
			g.A(x.arc).FwdNext = graph.NIL
			fwdTail[x.tail] = x.arc
		}
	}
}
