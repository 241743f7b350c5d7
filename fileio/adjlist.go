package fileio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle"

	"github.com/katalvlaran/planarity/graph"
)

// edgeToken is one "name(v1,v2,...)" entry of the ADJLIST grammar: name is
// conventionally the edge's own vertex of origin, followed by every
// vertex it connects to — the same shape lnz-BalancedGo's lib.ParseEdge
// uses for its edge-list format.
type edgeToken struct {
	Name     string   `@(Ident|Int)`
	Vertices []string `"(" ( @(Ident|Int) ","? )* ")"`
}

type adjListDoc struct {
	Edges []edgeToken `( @@ ","?)*`
}

var adjListParser = participle.MustBuild(&adjListDoc{}, participle.UseLookahead(1))

// ReadAdjList parses the ADJLIST grammar into a *graph.Graph. Vertex
// labels are assigned dense indices [0,N) in first-seen order, the same
// encoding scheme lib.GetGraph uses, so callers that need to map results
// back to the original labels should keep the returned label slice.
// Complexity: O(N+M).
func ReadAdjList(s string) (*graph.Graph, []string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, ErrEmptyInput
	}

	var doc adjListDoc
	if err := adjListParser.ParseString(s, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadToken, err)
	}

	index := make(map[string]int)
	var labels []string
	intern := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		i := len(labels)
		index[name] = i
		labels = append(labels, name)
		return i
	}

	type pair struct{ u, v int }
	var pairs []pair
	for _, e := range doc.Edges {
		u := intern(e.Name)
		for _, vtx := range e.Vertices {
			v := intern(vtx)
			if u != v {
				pairs = append(pairs, pair{u, v})
			}
		}
	}

	g := graph.New(len(labels), graph.AllowDenseGraph())
	g.Init(len(labels))
	seen := make(map[[2]int]bool)
	for _, p := range pairs {
		key := [2]int{p.u, p.v}
		if p.u > p.v {
			key = [2]int{p.v, p.u}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := g.AddEdge(p.u, p.v); err != nil {
			return nil, nil, err
		}
	}
	return g, labels, nil
}

// WriteAdjList renders g back into the ADJLIST grammar using labels (or
// numeric indices if labels is nil), one edge-origin token per vertex
// that owns at least one arc in the canonical direction (tail < head).
func WriteAdjList(g *graph.Graph, labels []string) string {
	name := func(i int) string {
		if labels != nil && i < len(labels) {
			return labels[i]
		}
		return strconv.Itoa(i)
	}

	adj := make(map[int][]int)
	n := g.N()
	for u := 0; u < n; u++ {
		start := g.V(u).FirstArc
		if start == graph.NIL {
			continue
		}
		e := start
		for {
			v := g.A(e).V
			if v < n && u < v {
				adj[u] = append(adj[u], v)
			}
			e = g.A(e).Link[0]
			if e == start {
				break
			}
		}
	}

	var b strings.Builder
	first := true
	for u := 0; u < n; u++ {
		vs, ok := adj[u]
		if !ok {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(name(u))
		b.WriteString("(")
		for i, v := range vs {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(name(v))
		}
		b.WriteString(")")
	}
	return b.String()
}
