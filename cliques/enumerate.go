package cliques

import (
	"github.com/katalvlaran/kcliques/combinatorics"
	"github.com/katalvlaran/kcliques/degeneracy"
)

// enumerator holds the state shared across one Count call: the accumulator
// every node posts into, the neighbor lookup, and per-depth scratch buffers
// so recursion never allocates beyond the initial setup (spec.md §5/§9).
type enumerator struct {
	acc       accumulator
	neighbors func(v int) []int
	mem       *membership
	optimize  bool
	kEff      int

	pBuf     []int   // reused, grown/shrunk via append/truncate as P is extended/retracted
	cBuf     [][]int // cBuf[depth] holds this depth's incoming C, written by its parent
	dBuf     [][]int // dBuf[depth] holds this depth's incoming D / grows into the done set
	groupBuf [][]int // groupBuf[depth] is scratch for {pivot} ∪ C∩N(pivot)
	interBuf [][]int // interBuf[depth] is scratch for C∩N(pivot), distinct from cBuf so C survives
	cpBuf    [][]int // cpBuf[depth] holds Cp = C∖N(pivot)∖{pivot}, distinct from cBuf so C survives
}

// Count runs the pivoting search over every vertex of ord as a subtree root
// and returns the accumulated counts up to kEff (0 meaning "up to the
// degeneracy-bounded maximum", per spec.md §6). optimize enables the
// near-clique shortcut: when a candidate set induces a complete subgraph,
// its contribution is posted in closed form without further recursion.
func Count(ord *degeneracy.Ordering, table *combinatorics.Table, mode Mode, kEff int, optimize bool) *Result {
	n := ord.Len()
	if kEff <= 0 {
		kEff = ord.Degeneracy() + 1
	}
	if kEff > table.NMax() {
		kEff = table.NMax()
	}

	res := newResult(mode, kEff, n)
	e := &enumerator{
		neighbors: ord.Neighbors,
		mem:       newMembership(n),
		optimize:  optimize,
		kEff:      kEff,
		pBuf:      make([]int, 0, kEff+1),
	}
	switch mode {
	case ModeAggregate:
		e.acc = &aggregateAccumulator{table: table, count: res.Aggregate}
	case ModeVertex:
		e.acc = &vertexAccumulator{table: table, count: res.Vertex}
	case ModeEdge:
		e.acc = &edgeAccumulator{table: table, neighbors: ord.Neighbors, count: res.Edge}
	}

	maxDepth := kEff + 2
	e.cBuf = make([][]int, maxDepth)
	e.dBuf = make([][]int, maxDepth)
	e.groupBuf = make([][]int, maxDepth)
	e.interBuf = make([][]int, maxDepth)
	e.cpBuf = make([][]int, maxDepth)
	for d := 0; d < maxDepth; d++ {
		e.cBuf[d] = make([]int, 0, n)
		e.dBuf[d] = make([]int, 0, n)
		e.groupBuf[d] = make([]int, 0, n)
		e.interBuf[d] = make([]int, 0, n)
		e.cpBuf[d] = make([]int, 0, n)
	}

	for _, rec := range ord.Records {
		if len(e.pBuf) != 0 {
			e.pBuf = e.pBuf[:0]
		}
		e.pBuf = append(e.pBuf, rec.Vertex)
		e.explore(e.pBuf, rec.Later, nil, 1)
	}
	res.Degeneracy = ord.Degeneracy()
	return res
}

// explore is the recursive search-tree node. P is the committed partial
// clique, C the candidate set that can still extend it, D the done set of
// vertices already explored as siblings at this level (kept out of
// consideration so their contribution is not recounted). depth indexes this
// call's own scratch buffers (interBuf/groupBuf/cpBuf) and advances by
// exactly one per recursion level, matching len(P): the root call starts at
// depth 1 with |P| = 1, and both grow in lockstep as P is extended.
func (e *enumerator) explore(P, C, D []int, depth int) {
	if len(P) >= e.kEff {
		// spec.md §4.4's termination clause: halt once P has reached kEff
		// vertices: no larger clique is tracked, and recursing further
		// would grow the search tree without bound on the depth-indexed
		// scratch buffers, which are sized for kEff levels.
		e.acc.post(P, nil, e.kEff)
		return
	}
	if len(C) == 0 {
		e.acc.post(P, nil, e.kEff)
		return
	}

	if e.optimize && isComplete(C, e.neighbors) {
		e.acc.post(P, C, e.kEff)
		return
	}

	p := choosePivot(e.neighbors, e.mem, C, D)
	Np := e.neighbors(p)

	inter := intersectInto(e.interBuf[depth][:0], C, Np) // C ∩ N(p), p excluded (p ∉ N(p))
	e.interBuf[depth] = inter
	group := mergeInsert(e.groupBuf[depth][:0], inter, p)
	e.groupBuf[depth] = group

	e.acc.post(P, group, e.kEff)

	Cp := diffExcludingInto(e.cpBuf[depth][:0], C, Np, p)
	e.cpBuf[depth] = Cp

	curD := e.dBuf[depth][:0]
	curD = append(curD, D...)
	e.dBuf[depth] = curD

	childDepth := depth + 1
	for _, x := range Cp {
		Nx := e.neighbors(x)
		Cx := intersectInto(e.cBuf[childDepth][:0], C, Nx)
		e.cBuf[childDepth] = Cx
		Dx := intersectInto(e.dBuf[childDepth][:0], e.dBuf[depth], Nx)
		e.dBuf[childDepth] = Dx

		P = append(P, x)
		e.explore(P, Cx, Dx, childDepth)
		P = P[:len(P)-1]

		e.dBuf[depth] = append(e.dBuf[depth], x)
	}
}

// isComplete reports whether the induced subgraph on C has every possible
// edge, the precondition for the near-clique closed-form shortcut. The
// target edge count is computed directly rather than via the binomial
// table, since |C| can exceed the table's bound (sized for kEff/degeneracy,
// not for n) at shallow recursion depths.
func isComplete(C []int, neighbors func(v int) []int) bool {
	h := len(C)
	if h < 2 {
		return true
	}
	return countEdgesInduced(C, neighbors) == h*(h-1)/2
}
