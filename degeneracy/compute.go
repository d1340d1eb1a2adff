package degeneracy

import (
	"sort"

	"github.com/katalvlaran/kcliques/graph"
)

// degreeBuckets is an intrusive doubly-linked list of live vertices indexed
// by current degree, giving O(1) amortized remove/reinsert during peeling
// (spec.md §4.2 step 2/4, and the "Design Notes" §9 intrusive-list option).
type degreeBuckets struct {
	head []int // head[d] = first vertex currently at degree d, or -1
	next []int // next[v], -1 if v is the tail of its bucket
	prev []int // prev[v], -1 if v is the head of its bucket
}

func newDegreeBuckets(n int, degree []int) *degreeBuckets {
	b := &degreeBuckets{
		head: make([]int, n),
		next: make([]int, n),
		prev: make([]int, n),
	}
	for d := range b.head {
		b.head[d] = -1
	}
	for v := n - 1; v >= 0; v-- { // reverse order so final list order is ascending by id; not load-bearing
		b.insert(v, degree[v])
	}
	return b
}

func (b *degreeBuckets) insert(v, d int) {
	b.prev[v] = -1
	b.next[v] = b.head[d]
	if b.head[d] != -1 {
		b.prev[b.head[d]] = v
	}
	b.head[d] = v
}

func (b *degreeBuckets) remove(v, d int) {
	p, nx := b.prev[v], b.next[v]
	if p != -1 {
		b.next[p] = nx
	} else {
		b.head[d] = nx
	}
	if nx != -1 {
		b.prev[nx] = p
	}
}

// Compute produces the degeneracy ordering of g by smallest-last peeling
// (spec.md §4.2). The returned Ordering renames every vertex to its rank.
func Compute(g *graph.Graph) *Ordering {
	n := g.N()
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		degree[v] = g.Degree(v)
	}

	buckets := newDegreeBuckets(n, degree)
	dead := make([]bool, n)
	rank := make([]int, n) // rank[origID] = removal index
	laterOrig := make([][]int, n)
	earlierOrig := make([][]int, n)

	degeneracy := 0
	curDeg := 0
	removed := 0
	for removed < n {
		if buckets.head[curDeg] == -1 {
			curDeg++
			continue
		}
		if curDeg > degeneracy {
			degeneracy = curDeg
		}

		v := buckets.head[curDeg]
		buckets.remove(v, curDeg)
		dead[v] = true
		rank[v] = removed

		for _, u := range g.Neighbors(v) {
			if dead[u] {
				earlierOrig[v] = append(earlierOrig[v], u)
				continue
			}
			buckets.remove(u, degree[u])
			laterOrig[v] = append(laterOrig[v], u)
			degree[u]--
			buckets.insert(u, degree[u])
		}

		removed++
		curDeg = 0 // degrees only ever decrease; a new minimum may sit below the old cursor
	}

	return buildOrdering(n, degeneracy, rank, laterOrig, earlierOrig)
}

// buildOrdering renames every vertex to its rank and sorts Later/Earlier,
// per spec.md §4.2's "Renaming variant" (the mode the enumerator needs).
func buildOrdering(n, degeneracy int, rank []int, laterOrig, earlierOrig [][]int) *Ordering {
	records := make([]Record, n)
	for origV := 0; origV < n; origV++ {
		r := rank[origV]
		records[r] = Record{
			Vertex: r,
			Rank:   r,
			Later:  renameAndSort(laterOrig[origV], rank),
			Earlier: renameAndSort(earlierOrig[origV], rank),
		}
	}

	adj := make([][]int, n)
	for i := range adj {
		adj[i] = mergeSorted(records[i].Later, records[i].Earlier)
	}

	return &Ordering{Records: records, degeneracy: degeneracy, adj: adj}
}

func renameAndSort(origIDs []int, rank []int) []int {
	out := make([]int, len(origIDs))
	for i, o := range origIDs {
		out[i] = rank[o]
	}
	sort.Ints(out)
	return out
}

// mergeSorted merges two already-sorted, disjoint slices.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
