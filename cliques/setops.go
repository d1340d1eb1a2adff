package cliques

import "sort"

// containsSorted reports whether x appears in the ascending-sorted slice s.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)
	return i < len(s) && s[i] == x
}

// intersectInto writes, into dst[:0], the ascending-sorted intersection of
// two ascending-sorted, duplicate-free slices a and b, via linear merge
// (spec.md §4.4: "every C ∩ N(x) is a linear merge").
func intersectInto(dst, a, b []int) []int {
	dst = dst[:0]
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			dst = append(dst, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return dst
}

// diffExcludingInto writes, into dst[:0], the elements of sorted slice a
// that are neither in sorted slice b nor equal to exclude. It is used to
// compute Cp = C ∖ N(pivot) ∖ {pivot} (spec.md §4.4).
func diffExcludingInto(dst, a, b []int, exclude int) []int {
	dst = dst[:0]
	i, j := 0, 0
	for i < len(a) {
		if a[i] == exclude {
			i++
			continue
		}
		for j < len(b) && b[j] < a[i] {
			j++
		}
		if j < len(b) && b[j] == a[i] {
			i++
			continue
		}
		dst = append(dst, a[i])
		i++
	}
	return dst
}

// mergeInsert writes into dst[:0] the ascending-sorted merge of singleton p
// and the already-sorted, p-free slice inter. Used to build a pivot's group
// ({p} ∪ C∩N(p)) without a separate sort pass.
func mergeInsert(dst, inter []int, p int) []int {
	dst = dst[:0]
	inserted := false
	for _, x := range inter {
		if !inserted && p < x {
			dst = append(dst, p)
			inserted = true
		}
		dst = append(dst, x)
	}
	if !inserted {
		dst = append(dst, p)
	}
	return dst
}

// countEdgesInduced counts the number of edges of the graph with both
// endpoints in the ascending-sorted vertex set s, using neighbors(v) as the
// graph's full adjacency. Used by the near-clique optimization check.
func countEdgesInduced(s []int, neighbors func(v int) []int) int {
	edges := 0
	for _, v := range s {
		nbrs := neighbors(v)
		i, j := 0, 0
		for i < len(s) && j < len(nbrs) {
			switch {
			case s[i] == nbrs[j]:
				edges++
				i++
				j++
			case s[i] < nbrs[j]:
				i++
			default:
				j++
			}
		}
	}
	return edges / 2
}
