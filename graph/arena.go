package graph

// New allocates a Graph sized for n vertices but does not yet reserve the
// arc arena; call Init before adding edges. Mirrors the teacher's
// two-phase New/Init split so a caller can hold a zero-value-ish Graph
// before committing to a size.
func New(n int, opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.n = n
	return g
}

// Init (re)reserves the vertex and arc arenas for n vertices. Complexity:
// O(n). After Init, AddEdge is O(1) amortized until the arc arena is
// exhausted.
func (g *Graph) Init(n int) {
	g.n = n
	g.vertices = make([]Vertex, 2*n)
	for i := range g.vertices {
		g.vertices[i] = Vertex{
			DFSParent: NIL, LeastAncestor: NIL, Lowpoint: NIL, DFI: NIL,
			AdjacentTo: NIL,
			PertHead:   NIL, PertTail: NIL, PertNext: NIL, PertPrev: NIL,
			SepHead: NIL, SepTail: NIL, SepNext: NIL, SepPrev: NIL,
			LinkNext: NIL, LinkPrev: NIL, FirstArc: NIL, FwdHead: NIL,
		}
	}
	cap := arcCapacity(n, g.allowDense)
	g.arcs = make([]Arc, 0, cap)
	g.holes = g.holes[:0]
	g.m = 0
	g.frozen = false
}

// arcCapacity returns the number of arc slots to pre-reserve: 2*(3n-6) for
// the planar bound, or 2*n*(n-1) (every ordered pair) when AllowDenseGraph
// was set, since a non-planar input may legitimately exceed 3n-6 edges and
// the embedder must still be able to load it before discovering the
// failure (see SPEC_FULL.md §4.1).
func arcCapacity(n int, dense bool) int {
	if n < 3 {
		return 4
	}
	if dense {
		return 2 * n * (n - 1)
	}
	c := 2 * (3*n - 6)
	if c < 4 {
		c = 4
	}
	return c
}

// Reinit clears scratch state (AdjacentTo, the pertinent lists and their
// links, visited flags) while keeping vertices, arcs, link slots and DFS
// results, including the separated-child lists, intact, so the same Graph can be fed to a second extension
// pass (e.g. re-running Walkdown for a drawing extension after a plain
// planarity check).
func (g *Graph) Reinit() {
	for i := range g.vertices {
		v := &g.vertices[i]
		v.AdjacentTo = NIL
		v.PertHead, v.PertTail = NIL, NIL
		v.PertNext, v.PertPrev = NIL, NIL
		v.Visited = false
	}
	g.frozen = false
}

// Free releases the arenas. After Free the Graph must not be used again.
func (g *Graph) Free() {
	g.vertices = nil
	g.arcs = nil
	g.holes = nil
	g.n, g.m = 0, 0
}

// N returns the number of real vertices.
func (g *Graph) N() int { return g.n }

// M returns the current number of edges.
func (g *Graph) M() int { return g.m }

// V returns a pointer to the vertex/root-copy record at index i, which
// must be in [0, 2n).
func (g *Graph) V(i int) *Vertex { return &g.vertices[i] }

// A returns a pointer to the arc record at index e.
func (g *Graph) A(e int) *Arc { return &g.arcs[e] }

// ArcArenaLen returns the number of arc slots currently allocated
// (in-use or on the hole freelist); callers iterating the whole arena —
// DFS pre-processing building fwdArcLists, the isolator scanning for
// unmarked arcs — range over [0, ArcArenaLen()) and check InUse.
func (g *Graph) ArcArenaLen() int { return len(g.arcs) }

// Twin returns the twin arc index of e (e XOR 1).
func Twin(e int) int { return e ^ 1 }

// Tail returns the vertex that owns arc e, derived from its twin's head —
// arcs don't store their own tail since e and Twin(e) always describe the
// same edge in opposite directions.
func (g *Graph) Tail(e int) int { return g.arcs[Twin(e)].V }

// freeze marks the graph as mid-embedding; exported for the embedder
// package via Freeze/Unfreeze so AddEdge rejects mutation once Embed has
// started.
func (g *Graph) Freeze()   { g.frozen = true }
func (g *Graph) Unfreeze() { g.frozen = false }

// AddEdge appends a new edge (u, v) as a pair of twin arcs to u's and v's
// adjacency lists. Self-loops are rejected outright; parallel edges are
// not detected, since no duplicate-edge scan is performed (callers that may
// see duplicates, such as fileio.ReadAdjList, deduplicate before calling).
// Returns the arc index owned by u (its twin, owned by v, is Twin(arc)).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (int, error) {
	if g.frozen {
		return NIL, ErrFrozen
	}
	if u == v {
		return NIL, ErrSelfLoop
	}
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return NIL, ErrInvalidVertex
	}

	e, err := g.allocArcPair()
	if err != nil {
		return NIL, err
	}
	eTwin := Twin(e)

	g.arcs[e] = Arc{V: v, Link: [2]int{NIL, NIL}, Sign: 1, FwdNext: NIL, InUse: true}
	g.arcs[eTwin] = Arc{V: u, Link: [2]int{NIL, NIL}, Sign: 1, FwdNext: NIL, InUse: true}

	g.appendAdjacency(u, e)
	g.appendAdjacency(v, eTwin)

	g.m++
	return e, nil
}

// allocArcPair pops a hole pair if one exists, else grows the arena.
func (g *Graph) allocArcPair() (int, error) {
	if len(g.holes) > 0 {
		base := g.holes[len(g.holes)-1]
		g.holes = g.holes[:len(g.holes)-1]
		return base, nil
	}
	if len(g.arcs)+2 > cap(g.arcs) {
		if !g.allowDense && cap(g.arcs) > 0 {
			return NIL, ErrTooManyEdges
		}
		return NIL, ErrOutOfMemory
	}
	base := len(g.arcs)
	g.arcs = append(g.arcs, Arc{}, Arc{})
	return base, nil
}

// DeleteEdge returns both arcs of e to the hole freelist and removes them
// from their owning vertices' circular link lists. Used by the isolator to
// prune everything the Kuratowski witness doesn't need.
func (g *Graph) DeleteEdge(tail, e int) {
	eTwin := Twin(e)
	g.removeFromLinkList(tail, e)
	g.removeFromLinkList(g.arcs[e].V, eTwin)
	g.arcs[e].InUse = false
	g.arcs[eTwin].InUse = false
	base := e &^ 1
	g.holes = append(g.holes, base)
	g.m--
}

// appendAdjacency inserts arc e into tail's initial (pre-DFS) adjacency
// list, seeding LinkNext/LinkPrev as a circular list of arcs.
func (g *Graph) appendAdjacency(tail, e int) {
	v := &g.vertices[tail]
	if v.FirstArc == NIL {
		v.FirstArc = e
		v.LinkNext, v.LinkPrev = e, e
		g.arcs[e].Link[0] = e
		g.arcs[e].Link[1] = e
		return
	}
	last := v.LinkPrev
	g.arcs[last].Link[0] = e
	g.arcs[e].Link[1] = last
	g.arcs[e].Link[0] = v.FirstArc
	g.arcs[v.FirstArc].Link[1] = e
	v.LinkPrev = e
}

// DetachArc removes arc e from owner's full rotation circular list without
// returning it to the hole freelist — used when an arc (typically an
// unembedded back/forward pair, or a tree arc being repointed to a root
// copy) needs to leave one vertex's rotation so it can be attached
// somewhere else via InsertArcAfter.
func (g *Graph) DetachArc(owner, e int) { g.removeFromLinkList(owner, e) }

// InsertArcAfter splices arc e into owner's full rotation circular list
// immediately after arc after (or as the sole element if owner's list is
// currently empty, in which case after is ignored and may be NIL).
func (g *Graph) InsertArcAfter(owner, after, e int) {
	v := &g.vertices[owner]
	if v.FirstArc == NIL {
		v.FirstArc = e
		v.LinkNext, v.LinkPrev = e, e
		g.arcs[e].Link[0] = e
		g.arcs[e].Link[1] = e
		return
	}
	next := g.arcs[after].Link[0]
	g.arcs[after].Link[0] = e
	g.arcs[e].Link[1] = after
	g.arcs[e].Link[0] = next
	g.arcs[next].Link[1] = e
}

// removeFromLinkList splices arc e out of owner's circular adjacency list.
func (g *Graph) removeFromLinkList(owner, e int) {
	v := &g.vertices[owner]
	next, prev := g.arcs[e].Link[0], g.arcs[e].Link[1]
	if next == e {
		v.FirstArc, v.LinkNext, v.LinkPrev = NIL, NIL, NIL
		return
	}
	g.arcs[prev].Link[0] = next
	g.arcs[next].Link[1] = prev
	if v.FirstArc == e {
		v.FirstArc = next
	}
	if v.LinkNext == e {
		v.LinkNext = next
	}
	if v.LinkPrev == e {
		v.LinkPrev = prev
	}
}

// Copy returns a deep, independent copy of g, including arc arena contents,
// arena capacity and hole freelist, but not the frozen flag (a copy is
// always unfrozen).
func (g *Graph) Copy() *Graph {
	cp := &Graph{
		n:          g.n,
		m:          g.m,
		allowDense: g.allowDense,
	}
	cp.vertices = append([]Vertex(nil), g.vertices...)
	cp.arcs = make([]Arc, len(g.arcs), cap(g.arcs))
	copy(cp.arcs, g.arcs)
	cp.holes = append([]int(nil), g.holes...)
	return cp
}

// Dup is an alias for Copy kept for parity with the spec's operation name
// (the embedder tests duplicate before embedding so the integrity checker
// can compare the post-embed result against a pristine original).
func (g *Graph) Dup() *Graph { return g.Copy() }

// SortVertices renumbers vertices by a caller-supplied permutation: the
// vertex at internal position i moves to position order[i], and every
// DFSParent and arc head is remapped to match. order[i] must hold the
// original index that now occupies internal position i; indices at or
// above g.n (root copies) are left alone. dfs.Preprocess does not reorder
// vertices or build such an order itself.
func (g *Graph) SortVertices(order []int) {
	if len(order) != g.n {
		return
	}
	perm := make([]int, g.n)
	for internal, original := range order {
		perm[internal] = original
	}
	remap := func(idx int) int {
		if idx == NIL {
			return NIL
		}
		if idx < g.n {
			return perm[idx]
		}
		return idx
	}
	newVertices := make([]Vertex, len(g.vertices))
	for internal := 0; internal < g.n; internal++ {
		nv := g.vertices[internal]
		nv.DFSParent = remap(nv.DFSParent)
		newVertices[perm[internal]] = nv
	}
	for i := g.n; i < len(g.vertices); i++ {
		newVertices[i] = g.vertices[i]
	}
	for e := range g.arcs {
		if g.arcs[e].InUse {
			g.arcs[e].V = remap(g.arcs[e].V)
		}
	}
	g.vertices = newVertices
}
