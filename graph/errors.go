package graph

import "errors"

// Sentinel errors for graph arena operations.
var (
	// ErrOutOfMemory indicates the arc or vertex arena is exhausted.
	ErrOutOfMemory = errors.New("graph: arena exhausted")

	// ErrInvalidVertex indicates a vertex index outside [0, N).
	ErrInvalidVertex = errors.New("graph: vertex index out of range")

	// ErrTooManyEdges indicates strict-mode rejection of an edge that would
	// push the arc arena past its planar bound (2*(3N-6)).
	ErrTooManyEdges = errors.New("graph: edge count exceeds 3N-6 in strict mode")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loops are not supported")

	// ErrDuplicateEdge indicates an attempt to add a parallel edge; the core
	// deduplicates rather than modeling multigraphs (spec non-goal).
	ErrDuplicateEdge = errors.New("graph: parallel edge ignored (multigraphs unsupported)")

	// ErrFrozen indicates an attempt to mutate a graph whose embedding is
	// already in progress or complete.
	ErrFrozen = errors.New("graph: graph is frozen mid-embedding")
)
