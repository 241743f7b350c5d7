package fileio

import "errors"

var (
	// ErrEmptyInput is returned when the input text/matrix has no content.
	ErrEmptyInput = errors.New("fileio: empty input")
	// ErrNonRectangular is returned by ReadAdjMatrix when a row's length
	// differs from the number of rows (the matrix is not square).
	ErrNonRectangular = errors.New("fileio: matrix is not square")
	// ErrAsymmetricMatrix is returned when an adjacency matrix isn't symmetric
	// (the embedder works on undirected graphs only).
	ErrAsymmetricMatrix = errors.New("fileio: adjacency matrix is not symmetric")
	// ErrBadToken is returned when the ADJLIST grammar rejects the input.
	ErrBadToken = errors.New("fileio: malformed ADJLIST token")
)
