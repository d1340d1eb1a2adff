package cliques

import "github.com/soniakeys/bits"

// membership wraps a bits.Bits to answer "is vertex v in the current
// candidate set C" in O(1) during pivot scoring, the way soniakeys/graph's
// BronKerbosch pivot strategies test P/X membership (undir_cg.go). Unlike
// that code we do not rebuild the bitset per recursion level: mark sets the
// bits for one node's C, the node scores pivots against it, then unmark
// clears exactly those bits again, so the same bits.Bits is reused at every
// depth without an O(n) ClearAll.
type membership struct {
	bs bits.Bits
}

func newMembership(n int) *membership {
	return &membership{bs: bits.New(n)}
}

func (m *membership) mark(vertices []int) {
	for _, v := range vertices {
		m.bs.SetBit(v, 1)
	}
}

func (m *membership) unmark(vertices []int) {
	for _, v := range vertices {
		m.bs.SetBit(v, 0)
	}
}

func (m *membership) has(v int) bool {
	return m.bs.Bit(v) == 1
}
