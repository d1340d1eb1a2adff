package graph

import "errors"

// Sentinel errors for graph loading and construction.
var (
	// ErrMalformedHeader indicates the first line did not parse as "n m".
	ErrMalformedHeader = errors.New("graph: malformed header line")

	// ErrMalformedEdge indicates an edge line did not parse as "u v".
	ErrMalformedEdge = errors.New("graph: malformed edge line")

	// ErrVertexOutOfRange indicates an edge referenced a vertex id >= n or < 0.
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates the same directed pair "u v" appeared twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrNegativeSize indicates a negative n or m in the header.
	ErrNegativeSize = errors.New("graph: negative vertex or edge count")
)
