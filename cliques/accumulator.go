package cliques

import "github.com/katalvlaran/kcliques/combinatorics"

// accumulator is the single combinatorial-posting primitive every search-
// tree node calls into (spec.md §9's "Polymorphism over counting modes").
// P is the committed partial clique (s = len(P) vertices); group is the
// pivot plus its candidate-neighbors (h = len(group) vertices, possibly 0
// at a leaf with no pivot). post must add, for every k in [s, kEff], this
// node's contribution to that k's count.
type accumulator interface {
	post(P, group []int, kEff int)
}

// aggregateAccumulator implements spec.md §4.4's A-mode formula:
// count[k] += C(h, k-s).
type aggregateAccumulator struct {
	table *combinatorics.Table
	count []uint64
}

func (a *aggregateAccumulator) post(P, group []int, kEff int) {
	s, h := len(P), len(group)
	for k := s; k <= kEff; k++ {
		a.count[k] += a.table.C(h, k-s)
	}
}

// vertexAccumulator implements spec.md §4.4's V-mode formula: every vertex
// of P always participates (C(h, k-s)), and every pivot-group vertex
// participates when it is among the k-s chosen (C(h-1, k-s-1)).
type vertexAccumulator struct {
	table *combinatorics.Table
	count [][]uint64 // count[k][v]
}

func (a *vertexAccumulator) post(P, group []int, kEff int) {
	s, h := len(P), len(group)
	for k := s; k <= kEff; k++ {
		cFull := a.table.C(h, k-s)
		if cFull != 0 {
			for _, v := range P {
				a.count[k][v] += cFull
			}
		}
		cIncluded := a.table.C(h-1, k-s-1)
		if cIncluded != 0 {
			for _, x := range group {
				a.count[k][x] += cIncluded
			}
		}
	}
}

// edgeAccumulator implements spec.md §4.4's E-mode formula: edges wholly
// inside P get C(h, k-s); edges between P and the pivot group get
// C(h-1, k-s-1); edges with both endpoints in the pivot group get
// C(h-2, k-s-2) but only when that pair is an actual edge of the graph —
// unlike P and P-to-group pairs, group members are not guaranteed pairwise
// adjacent.
type edgeAccumulator struct {
	table     *combinatorics.Table
	neighbors func(v int) []int // full adjacency, for checking group-internal edges
	count     []map[EdgeID]uint64
}

func (a *edgeAccumulator) post(P, group []int, kEff int) {
	s, h := len(P), len(group)
	for k := s; k <= kEff; k++ {
		cFull := a.table.C(h, k-s)
		if cFull != 0 {
			for i := 0; i < len(P); i++ {
				for j := i + 1; j < len(P); j++ {
					a.add(k, P[i], P[j], cFull)
				}
			}
		}
		cBetween := a.table.C(h-1, k-s-1)
		if cBetween != 0 {
			for _, u := range P {
				for _, x := range group {
					a.add(k, u, x, cBetween)
				}
			}
		}
		cInside := a.table.C(h-2, k-s-2)
		if cInside != 0 {
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					if containsSorted(a.neighbors(group[i]), group[j]) {
						a.add(k, group[i], group[j], cInside)
					}
				}
			}
		}
	}
}

func (a *edgeAccumulator) add(k, u, v int, delta uint64) {
	a.count[k][newEdgeID(u, v)] += delta
}
