package degeneracy

// Record holds, for one renamed vertex (its new id equals its rank), the
// sorted lists of higher-ranked (Later) and lower-ranked (Earlier)
// neighbors, per spec.md §3's Ordering record.
type Record struct {
	Vertex int // == Rank, after renaming (spec.md §9's renaming note)
	Rank   int
	Later  []int // sorted ascending, renamed ids
	Earlier []int // sorted ascending, renamed ids
}

// Ordering is the result of Compute: a full degeneracy ordering plus the
// renamed adjacency needed by the cliques package for full-neighborhood
// intersection (pivot selection looks at N(p), not just Later/Earlier).
type Ordering struct {
	Records    []Record // indexed by renamed id
	degeneracy int
	adj        [][]int // adj[i] = sorted Later[i] ∪ Earlier[i], renamed ids
}

// Len returns the number of vertices (== the source graph's N).
func (o *Ordering) Len() int { return len(o.Records) }

// Degeneracy returns d, the maximum Later-set size over all vertices.
// spec.md §9 notes the source computes this but doesn't reliably surface
// it; it is exposed here so the binomial table can be sized exactly.
func (o *Ordering) Degeneracy() int { return o.degeneracy }

// Neighbors returns the full, sorted neighbor list of renamed vertex v
// (Later ∪ Earlier), used by the enumerator for pivot-degree scoring.
func (o *Ordering) Neighbors(v int) []int { return o.adj[v] }
