// Package embedder is documented in embed.go; its package-level error
// variable lives in types.go.
package embedder
