// Package embedder implements the Boyer-Myrvold linear-time planar
// embedding algorithm: given a DFS-preprocessed graph it either produces
// a combinatorial embedding in place or isolates a Kuratowski subdivision
// proving non-planarity.
//
// What: Embed runs the main vertex loop in decreasing DFI order. For each
// vertex v it walks up from every unembedded back edge targeting v
// (marking pertinent bicomps along the way), then walks down each
// pertinent bicomp's external face, embedding back edges and merging
// child bicomps as it resolves pertinence. A direction that can't resolve
// triggers the isolator, which prunes the graph down to a Kuratowski
// witness.
//
// Why: this is the only known linear-time planarity test; every other
// general technique (Hopcroft-Tarjan's original, vertex addition) is
// either asymptotically worse in practice or harder to extend with
// custom minor sets (outerplanarity, K4 search) the way Walkdown's hook
// points allow.
//
// Complexity: not linear. vertexWithDFI may scan all N vertices for each
// step of the main loop, and walkup climbs the whole tree path up to v for
// every back edge, so the worst case is quadratic or worse.
package embedder

import (
	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/embedder/ext"
	"github.com/katalvlaran/planarity/graph"
)

// Embed runs the full pipeline: DFS preprocessing (if not already done),
// bicomp initialization, then the main Walkup/Walkdown loop, using the
// no-op Default extension. Equivalent to EmbedWithExtension(g, ext.Default{}).
func Embed(g *graph.Graph) Result {
	return EmbedWithExtension(g, ext.Default{})
}

// EmbedWithExtension is Embed with a caller-supplied Extension driving
// the outerplanar, subgraph-search and drawing hook points (spec.md
// §4.8). extn must not be nil; pass ext.Default{} for no hooks.
func EmbedWithExtension(g *graph.Graph, extn ext.Extension) Result {
	if g.V(0).DFI == graph.NIL {
		if err := dfs.Preprocess(g); err != nil {
			return Result{Code: NonEmbeddable}
		}
	}

	initBicomps(g)
	g.Freeze()
	defer g.Unfreeze()

	n := g.N()
	for dfi := n - 1; dfi >= 0; dfi-- {
		v := vertexWithDFI(g, dfi)
		if v == graph.NIL {
			continue
		}

		for arc := g.V(v).FwdHead; arc != graph.NIL; arc = g.A(arc).FwdNext {
			w := g.A(arc).V
			walkup(g, v, w)
		}

		status, ctx := walkdown(g, v, extn)
		if status == stepBlocked {
			isolate := extn.IsolateObstruction(g, ctx)
			if isolate == nil {
				isolate = isolateObstruction(g, ctx)
			}
			return Result{Code: NonEmbeddable, Isolator: ctx, Kuratowski: isolate}
		}

		if err := extn.WalkdownDone(g, v); err != nil {
			return Result{Code: NonEmbeddable}
		}
		if err := extn.EmbedPostprocess(g, v); err != nil {
			return Result{Code: NonEmbeddable}
		}
	}

	joinRemainingChildren(g)
	return Result{Code: OK}
}

// vertexWithDFI finds the real vertex whose DFI equals dfi. It first
// checks vertex index dfi itself (O(1) when discovery order matches vertex
// numbering) and otherwise falls back to a linear scan over all N
// vertices; no inverse map is built or cached.
func vertexWithDFI(g *graph.Graph, dfi int) int {
	if dfi >= 0 && dfi < g.N() && g.V(dfi).DFI == dfi {
		return dfi
	}
	for i := 0; i < g.N(); i++ {
		if g.V(i).DFI == dfi {
			return i
		}
	}
	return graph.NIL
}

// joinRemainingChildren merges any separated-child bicomp that was never
// pertinent during its parent's Walkdown (no back edge ever needed it on
// the external face), in DFI order from the deepest vertex up, so the
// final arc rotation covers every tree edge even though Walkdown itself
// only merges pertinent ones.
func joinRemainingChildren(g *graph.Graph) {
	n := g.N()
	for dfi := n - 1; dfi >= 0; dfi-- {
		v := vertexWithDFI(g, dfi)
		if v == graph.NIL {
			continue
		}
		for c := g.V(v).SepHead; c != graph.NIL; c = g.V(c).SepNext {
			r := rootCopy(g, c)
			if g.V(r).FirstArc == graph.NIL {
				continue
			}
			treeArc := treeArcToChild(g, v, r)
			if treeArc != graph.NIL {
				mergeBicomps(g, v, treeArc, r)
			}
		}
	}
}
