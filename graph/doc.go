// Package graph provides the arena-backed graph store the planarity
// embedder operates on.
//
// Unlike a map-keyed graph, every vertex, root copy, and arc is addressed by
// an integer index into a pre-sized arena: vertices occupy [0, N), root
// copies (one reserved per potential DFS child bicomp) occupy [N, 2N), and
// arcs are allocated in twin pairs (arc e and arc e^1 always describe the
// same edge, one per direction). NIL (-1) stands in for a null index.
//
// The arena is sized once, in Init, and never grows during embedding: the
// embedder's linear-time bound depends on no allocation happening after
// preprocessing begins. Copy and Dup exist for callers (such as the
// embedder tests, before handing both graphs to the integrity checker)
// that need an independent snapshot before or after a mutating call.
//
// Graph is not safe for concurrent mutation by multiple goroutines — the
// embedder that consumes it is specified as single-threaded and synchronous
// (see the embedder package) — but distinct Graph values may be embedded
// concurrently from independent goroutines, since no state is shared across
// instances.
package graph
