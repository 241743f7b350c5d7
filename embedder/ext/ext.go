// Package ext defines the hook surface the embedder package dispatches
// through, letting outerplanar, subgraph-search, and drawing extensions
// customize the core edge-addition algorithm without the core depending on
// any of them (spec.md §4.8). This mirrors the teacher's
// builder.Constructor/BuilderOption split: a small function-typed contract
// the core drives, implementations supplied by the caller.
package ext

import "github.com/katalvlaran/planarity/graph"

// MinorType classifies a Walkdown failure into one of the five Kuratowski
// obstruction patterns (spec.md §4.7).
type MinorType int

// Minor classifications. MinorUnknown is the zero value so a freshly
// constructed IsolatorContext reads as "not yet classified".
const (
	MinorUnknown MinorType = iota
	MinorA
	MinorB
	MinorC
	MinorD
	MinorE1
	MinorE2
	MinorE3
	MinorE4
)

// IsolatorContext records everything the isolator needs once Walkdown
// fails at vertex V while processing the bicomp rooted at R: W is the
// pertinent vertex the walk could not get past, X and Y are the two
// externally active vertices that blocked both directions.
type IsolatorContext struct {
	R, V, W, X, Y int
	Minor         MinorType
}

// Extension is the hook table the embedder's main loop and Walkdown drive.
// Every method receives the live arena directly — per spec.md §4.8,
// extensions never get their own copy of the graph, only an overlay they
// attach to it.
type Extension interface {
	// EmbedPostprocess runs once Walkdown succeeds for vertex v, before
	// the main loop moves to the next (lower-DFI) vertex.
	EmbedPostprocess(g *graph.Graph, v int) error

	// MergeBicomps is called right after the core has merged root copy r
	// into v, so an extension can observe or augment the merge. The core
	// performs the merge itself; implementations that don't need to
	// observe merges can embed Default and only override the hooks they
	// need. Its return value is ignored by the core.
	MergeBicomps(g *graph.Graph, v, vIn, r, rOut int) error

	// WalkdownDone runs after Walkdown for v has succeeded; it is not
	// called when Walkdown fails.
	WalkdownDone(g *graph.Graph, v int) error

	// IsolateObstruction replaces the default Kuratowski isolator; it
	// returns the pruned witness subgraph, or nil to let the core run its
	// default isolator. The outerplanar extension installs its own to
	// target K2,3/K4 rather than K5/K3,3.
	IsolateObstruction(g *graph.Graph, ctx *IsolatorContext) *graph.Graph
}

// Default is the no-op Extension the plain planarity embedder uses: every
// hook does nothing extra, and IsolateObstruction is expected to be
// replaced by the caller (embedder.Embed installs the default Kuratowski
// isolator directly, bypassing this field, when no extension is given).
type Default struct{}

func (Default) EmbedPostprocess(*graph.Graph, int) error            { return nil }
func (Default) MergeBicomps(*graph.Graph, int, int, int, int) error { return nil }
func (Default) WalkdownDone(*graph.Graph, int) error                { return nil }
func (Default) IsolateObstruction(*graph.Graph, *IsolatorContext) *graph.Graph {
	return nil
}

// Overlay is the scratch space an extension can attach to a graph for the
// duration of one Embed call, sized by the caller of Attach, and never
// touching the core's own fields (spec.md §4.8: "extensions never touch
// the core graph arenas directly"). No package in this module attaches
// one.
type Overlay struct {
	VertexData []interface{}
	ArcData    []interface{}
}

// Attach sizes the overlay to match g's current arena.
func Attach(g *graph.Graph, nVertexSlots, nArcSlots int) *Overlay {
	return &Overlay{
		VertexData: make([]interface{}, nVertexSlots),
		ArcData:    make([]interface{}, nArcSlots),
	}
}

// Detach drops the overlay's backing slices, making it safe to drop the
// last reference without waiting on GC pressure from a large arena.
func (o *Overlay) Detach() {
	o.VertexData = nil
	o.ArcData = nil
}
