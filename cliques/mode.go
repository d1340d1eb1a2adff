package cliques

// Mode selects which of the three counting queries (spec.md §1) the
// enumerator answers.
type Mode int

const (
	// ModeAggregate counts, for each k, the total number of k-cliques in G.
	ModeAggregate Mode = iota
	// ModeVertex counts, for each k and each vertex v, the number of
	// k-cliques containing v.
	ModeVertex
	// ModeEdge counts, for each k and each edge (u,v), the number of
	// k-cliques containing that edge.
	ModeEdge
)

// String renders the CLI-facing letter for a Mode ("A", "V", or "E").
func (m Mode) String() string {
	switch m {
	case ModeAggregate:
		return "A"
	case ModeVertex:
		return "V"
	case ModeEdge:
		return "E"
	default:
		return "?"
	}
}

// ParseMode parses the CLI -t flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "A":
		return ModeAggregate, nil
	case "V":
		return ModeVertex, nil
	case "E":
		return ModeEdge, nil
	default:
		return 0, ErrUnknownMode
	}
}
