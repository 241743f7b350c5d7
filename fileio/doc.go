// Package fileio reads and writes the two wire formats the embedder CLI
// and integration tests exchange graphs in.
//
// What & Why:
//
//	ADJLIST is a small textual grammar ("1(2,3,4)" — edge name followed by
//	a parenthesized vertex list), parsed with a PEG-style grammar rather
//	than a hand-rolled scanner, the way lnz-BalancedGo's lib.GetGraph
//	parses its own edge-list format. ADJMATRIX is a dense 0/1 matrix, one
//	row per line, for graphs exported from tools that don't think in edge
//	lists.
//
// Complexity: ReadAdjList is O(N+M); ReadAdjMatrix and WriteAdjMatrix are
// O(N^2).
package fileio
