package cliques

// EdgeID identifies an undirected edge by its two (renamed) endpoints, with
// Lo <= Hi. spec.md §9 calls for "a hash map keyed by min(u,v)·n + max(u,v)
// ... not a dense n×n matrix" for per-edge accumulation; EdgeID is the
// struct form of that key, used as a map key directly rather than packed
// into a single integer, since Go maps hash structs natively.
type EdgeID struct {
	Lo, Hi int
}

func newEdgeID(u, v int) EdgeID {
	if u > v {
		u, v = v, u
	}
	return EdgeID{Lo: u, Hi: v}
}

// Result holds the counts produced by Count, populated according to Mode.
// Only the field matching Mode is populated; the others are nil.
type Result struct {
	Mode       Mode
	KEff       int
	Degeneracy int

	// Aggregate[k] is the number of k-cliques, for 1 <= k <= KEff.
	Aggregate []uint64

	// Vertex[k][v] is the number of k-cliques containing vertex v (renamed
	// id), for 1 <= k <= KEff.
	Vertex [][]uint64

	// Edge[k] maps each edge to the number of k-cliques containing it, for
	// 2 <= k <= KEff.
	Edge []map[EdgeID]uint64
}

func newResult(mode Mode, kEff, n int) *Result {
	res := &Result{Mode: mode, KEff: kEff}
	switch mode {
	case ModeAggregate:
		res.Aggregate = make([]uint64, kEff+1)
	case ModeVertex:
		res.Vertex = make([][]uint64, kEff+1)
		for k := range res.Vertex {
			res.Vertex[k] = make([]uint64, n)
		}
	case ModeEdge:
		res.Edge = make([]map[EdgeID]uint64, kEff+1)
		for k := range res.Edge {
			res.Edge[k] = make(map[EdgeID]uint64)
		}
	}
	return res
}
