// Package dfs computes the depth-first numbering and low-point values the
// embedder package's main loop depends on.
//
// What:
//
//   - Preprocess walks the graph from vertex 0 with an explicit stack (not
//     recursion — planar inputs can have DFS depth O(N), and the embedder
//     must not risk exhausting a goroutine stack on a pathological chain
//     graph), assigning DFI (discovery order), DFSParent, classifying every
//     arc as tree or back, and computing LeastAncestor and Lowpoint.
//   - It bucket-sorts each vertex's separatedDFSChildList by child Lowpoint
//     in O(N) total, and threads each vertex's fwdArcList (unembedded
//     forward arcs to its descendants, in DFI order) for the embedder's
//     main loop to walk.
//
// Why: the embedder's main loop processes vertices in decreasing DFI order
// and relies on LeastAncestor and Lowpoint to decide externally-active
// status; both
// are meaningless without this pass, and both must be computed before any
// back edge is embedded.
//
// Complexity: O(N + M) time, O(N) space (explicit stack + bucket array).
//
// Errors: ErrDisconnected if the graph has more than one connected
// component — the embedder only handles a single component per call; a
// disconnected input is an InvalidInput error at the fileio/cmd boundary,
// not something Preprocess silently works around.
package dfs
