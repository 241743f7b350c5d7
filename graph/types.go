package graph

// NIL is the sentinel "null index" used throughout the arena in place of a
// nil pointer: array indices double as pointers, and NIL marks the absence
// of one.
const NIL = -1

// VertexType classifies the role an arc plays in the DFS tree built by the
// dfs package; it is also stashed on vertex records for bookkeeping during
// isolation.
type VertexType int

// Vertex/arc type tags. Unused is the zero value so freshly-initialized
// records read as "not yet classified" rather than "tree".
const (
	Unused VertexType = iota
	TreeVertex
	BackVertex
)

// ArcType classifies an arc as produced by DFS pre-processing.
type ArcType int

// Arc classifications set by dfs.Preprocess and consulted by the embedder.
const (
	ArcUnknown ArcType = iota
	ArcTree            // parent -> child in the DFS tree
	ArcTreeChild       // child -> parent twin of ArcTree
	ArcBack            // descendant -> ancestor back edge
	ArcForward         // ancestor -> descendant twin of ArcBack, held in fwdArcList
)

// Vertex is shared by real vertices [0, N) and root copies [N, 2N). Only
// the fields relevant to a given index's role are meaningful at any moment;
// see the field comments for which. Callers obtain a pointer via
// (*Graph).V and mutate fields directly — this is an arena, not an
// encapsulated object.
type Vertex struct {
	// DFSParent, LeastAncestor, Lowpoint, DFI are meaningful for real
	// vertices only, set once by dfs.Preprocess and read-only afterward.
	DFSParent     int
	LeastAncestor int
	Lowpoint      int
	DFI           int

	// AdjacentTo is scratch: the current back-edge target during
	// Walkup/Walkdown, NIL otherwise.
	AdjacentTo int

	// PertHead/PertTail are the head and tail of this vertex's own
	// pertinentBicompList (root-copy indices), kept with externally active
	// root copies linked at the head.
	PertHead, PertTail int
	// PertNext/PertPrev thread *this* index into the PertHead/PertTail list
	// of whichever ancestor vertex currently owns it (meaningful when this
	// index is a root copy).
	PertNext, PertPrev int

	// SepHead/SepTail are the head and tail of this vertex's own
	// separatedDFSChildList (DFS-child vertex indices), sorted ascending by
	// child Lowpoint.
	SepHead, SepTail int
	// SepNext/SepPrev thread *this* index into the SepHead/SepTail list of
	// its DFS parent (meaningful for any vertex with DFSParent != NIL).
	SepNext, SepPrev int

	// LinkNext/LinkPrev are arc indices. During embedding they trace the
	// external face of the bicomp this index currently roots or belongs to;
	// after a successful Embed they hold the final circular adjacency
	// order. Root copies use these exactly like real vertices.
	LinkNext, LinkPrev int

	// FirstArc is the arc that begins this vertex's initial (pre-DFS)
	// adjacency list, used to seed LinkNext/LinkPrev before any bicomp
	// structure exists.
	FirstArc int

	// FwdHead is the head of this vertex's fwdArcList: unembedded forward
	// arcs (this vertex -> descendant) in DFI order, threaded through each
	// arc's FwdNext field. Built by dfs.Preprocess, walked by the
	// embedder's main loop to start Walkup, and pruned by the embedder as
	// each back edge is embedded.
	FwdHead int

	// Visited is a scratch marking bit. Reinit clears it; dfs.Preprocess
	// and the isolator keep their own marking slices and do not use it.
	Visited bool

	// VType is a role tag for this index. No package in this module sets
	// it, so it stays at its zero value, Unused.
	VType VertexType
}

// Arc describes one direction of an edge; its twin is at index e^1. Callers
// obtain a pointer via (*Graph).A.
type Arc struct {
	// V is the head vertex (or root-copy) this arc points to.
	V int

	// Link[0]/Link[1] are the next/prev arcs in the circular list anchored
	// at the owning tail vertex's LinkNext/LinkPrev slots. Which of the two
	// is "next" depends on which slot you entered through — see
	// externalFaceStep in the embedder package.
	Link [2]int

	// Sign is the arc's orientation sign. AddEdge sets it to +1; no bicomp
	// merge changes it, since mergeBicomps never inverts a child bicomp.
	Sign int

	// Type classifies the arc as produced by dfs.Preprocess.
	Type ArcType

	// FwdNext chains this arc into its tail vertex's fwdArcList when Type
	// is ArcForward; NIL otherwise or when it is the list's last entry.
	FwdNext int

	// InUse is false for arcs sitting on the hole freelist.
	InUse bool
}

// Graph is the arena-backed store the embedder package operates on.
type Graph struct {
	n int // number of real vertices

	vertices []Vertex // length 2n: [0,n) vertices, [n,2n) root copies
	arcs     []Arc    // arena, two slots per edge
	m        int      // current edge count

	holes []int // freelist of deleted arc-pair base indices

	allowDense bool // see AllowDenseGraph
	frozen     bool // true once embedding has begun
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// AllowDenseGraph lifts the strict 3N-6 planar arc bound so that a
// known-non-planar graph (which legitimately has more edges than that) can
// still be loaded and fed to the embedder; the embedder itself still
// terminates with NonEmbeddable the first time Walkdown fails; this option
// only affects how large the arc arena is pre-sized and whether AddEdge
// rejects edges past the planar bound.
func AllowDenseGraph() GraphOption {
	return func(g *Graph) { g.allowDense = true }
}
