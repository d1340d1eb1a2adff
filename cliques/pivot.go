package cliques

// choosePivot selects p from C ∪ D maximizing |C ∩ N(p)|, breaking ties by
// smallest vertex id (spec.md §4.4). mem is scratch: C is marked before
// scoring and unmarked after, so membership tests during scoring are O(1)
// without reallocating a bitset per call.
func choosePivot(neighbors func(v int) []int, mem *membership, C, D []int) int {
	mem.mark(C)
	defer mem.unmark(C)

	best, bestScore := -1, -1
	consider := func(p int) {
		score := 0
		for _, u := range neighbors(p) {
			if mem.has(u) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && (best == -1 || p < best)) {
			bestScore, best = score, p
		}
	}
	for _, p := range C {
		consider(p)
	}
	for _, p := range D {
		consider(p)
	}
	return best
}
