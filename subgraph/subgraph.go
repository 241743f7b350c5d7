// Package subgraph searches a graph for a handful of small named
// patterns (K4, K2,3, K3,3) as literal subgraphs — distinct from the
// embedder's Kuratowski isolator, which finds a topological minor
// (subdivision), not necessarily a subgraph. Useful when a caller wants
// to know "does this exact small structure appear" rather than "is this
// planar at all" (spec.md §4.8's subgraph-search extension motivation).
package subgraph

import "github.com/katalvlaran/planarity/graph"

// Pattern names the target structure.
type Pattern int

const (
	K4 Pattern = iota
	K23
	K33
)

// Match is one occurrence of a pattern, given as the vertex indices
// playing each role (order matches the pattern's own vertex numbering).
type Match struct {
	Pattern  Pattern
	Vertices []int
}

// Find returns every occurrence of pattern in g. Complexity is
// combinatorial in the pattern's vertex count (C(n,4) for K4, C(n,5) for
// K2,3, C(n,6) for K3,3) and is intended for the small graphs a subgraph
// extension would realistically be asked about, not as a production-scale
// planarity substitute — the embedder package is the linear-time tool for
// that.
func Find(g *graph.Graph, pattern Pattern) []Match {
	switch pattern {
	case K4:
		return findK4(g)
	case K23:
		return findK23(g)
	case K33:
		return findK33(g)
	default:
		return nil
	}
}

func adjacent(g *graph.Graph, u, v int) bool {
	start := g.V(u).FirstArc
	if start == graph.NIL {
		return false
	}
	e := start
	for {
		if g.A(e).V == v {
			return true
		}
		e = g.A(e).Link[0]
		if e == start {
			return false
		}
	}
}

func findK4(g *graph.Graph) []Match {
	n := g.N()
	var out []Match
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if !adjacent(g, a, b) {
				continue
			}
			for c := b + 1; c < n; c++ {
				if !adjacent(g, a, c) || !adjacent(g, b, c) {
					continue
				}
				for d := c + 1; d < n; d++ {
					if adjacent(g, a, d) && adjacent(g, b, d) && adjacent(g, c, d) {
						out = append(out, Match{Pattern: K4, Vertices: []int{a, b, c, d}})
					}
				}
			}
		}
	}
	return out
}

func findK23(g *graph.Graph) []Match {
	n := g.N()
	var out []Match
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for x := 0; x < n; x++ {
				if x == a || x == b || !adjacent(g, x, a) || !adjacent(g, x, b) {
					continue
				}
				for y := x + 1; y < n; y++ {
					if y == a || y == b || !adjacent(g, y, a) || !adjacent(g, y, b) {
						continue
					}
					for z := y + 1; z < n; z++ {
						if z == a || z == b || !adjacent(g, z, a) || !adjacent(g, z, b) {
							continue
						}
						out = append(out, Match{Pattern: K23, Vertices: []int{a, b, x, y, z}})
					}
				}
			}
		}
	}
	return out
}

func findK33(g *graph.Graph) []Match {
	n := g.N()
	var out []Match
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for x := 0; x < n; x++ {
					if x == a || x == b || x == c || !allAdjacent(g, x, a, b, c) {
						continue
					}
					for y := x + 1; y < n; y++ {
						if y == a || y == b || y == c || !allAdjacent(g, y, a, b, c) {
							continue
						}
						for z := y + 1; z < n; z++ {
							if z == a || z == b || z == c || !allAdjacent(g, z, a, b, c) {
								continue
							}
							out = append(out, Match{Pattern: K33, Vertices: []int{a, b, c, x, y, z}})
						}
					}
				}
			}
		}
	}
	return out
}

func allAdjacent(g *graph.Graph, v int, others ...int) bool {
	for _, o := range others {
		if !adjacent(g, v, o) {
			return false
		}
	}
	return true
}
