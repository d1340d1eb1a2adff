package combinatorics

// Table is a read-only, precomputed binomial-coefficient lookup, C(n, r)
// for 0 <= n, r <= NMax.
type Table struct {
	nMax int
	data [][]uint64
}

// New populates a Table covering 0 <= n, r <= nMax via Pascal's recurrence.
// nMax should be at least degeneracy+1 (spec.md §4.3); callers typically
// pass max(kEff, degeneracy+1) plus a small slack.
func New(nMax int) *Table {
	if nMax < 0 {
		nMax = 0
	}
	data := make([][]uint64, nMax+1)
	for n := 0; n <= nMax; n++ {
		row := make([]uint64, nMax+1)
		row[0] = 1
		for r := 1; r <= n; r++ {
			row[r] = data[n-1][r-1] + data[n-1][r]
		}
		data[n] = row
	}
	return &Table{nMax: nMax, data: data}
}

// NMax returns the largest n this table was built for.
func (t *Table) NMax() int { return t.nMax }

// C returns C(n, r), the number of r-subsets of an n-set. It returns 0 for
// r < 0 or r > n, per spec.md §4.3's convention, rather than panicking, so
// the enumerator's accounting loops can call it unconditionally.
func (t *Table) C(n, r int) uint64 {
	if r < 0 || n < 0 || r > n {
		return 0
	}
	if n > t.nMax {
		panic("combinatorics: C(n, r) requested n beyond table bound; size the table with a larger NMax")
	}
	return t.data[n][r]
}
