package embedder

import (
	"errors"

	"github.com/katalvlaran/planarity/embedder/ext"
	"github.com/katalvlaran/planarity/graph"
)

// ErrNotPreprocessed names the condition of a graph that hasn't been
// through dfs.Preprocess (no vertex has a DFI assigned). Embed does not
// return it: it runs dfs.Preprocess itself on such a graph.
var ErrNotPreprocessed = errors.New("embedder: graph has not been DFS-preprocessed")

// ResultCode is the outcome of a single Embed call.
type ResultCode int

const (
	// OK means the graph is planar and g now holds a combinatorial
	// embedding in its arc Link fields.
	OK ResultCode = iota
	// NonEmbeddable means Walkdown failed at some vertex; Result.Kuratowski
	// holds the isolated obstruction subgraph.
	NonEmbeddable
)

func (c ResultCode) String() string {
	if c == OK {
		return "OK"
	}
	return "NonEmbeddable"
}

// Result is what Embed returns: either a successful embedding (inspect g
// directly) or a witness to non-planarity.
type Result struct {
	Code ResultCode
	// Isolator is populated on NonEmbeddable with the vertices and minor
	// type the isolator classified the failure as.
	Isolator *ext.IsolatorContext
	// Kuratowski is populated on NonEmbeddable with the pruned subgraph
	// (spec.md §4.7): a subdivision of K5 or K3,3 for the full planarity
	// check, or of the reduced pattern set for a restricted extension.
	Kuratowski *graph.Graph
}

// stepStatus is Walkdown's internal per-direction result, finer-grained
// than ResultCode: a single direction can fail while the overall vertex
// still has other directions to try.
type stepStatus int

const (
	stepOK stepStatus = iota
	stepBlocked
)
