package cliques

import "errors"

// Sentinel errors for the cliques package.
var (
	// ErrUnknownMode indicates an unrecognized counting mode string.
	ErrUnknownMode = errors.New("cliques: unknown mode, want one of A, V, E")

	// ErrKTooSmall indicates a requested K below the minimum meaningful
	// clique size (2, since count[1] and count[2] are trivial but K must
	// at least cover them for a well-formed query).
	ErrKTooSmall = errors.New("cliques: K must be 0 (auto) or >= 2")
)
