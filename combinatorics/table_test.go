package combinatorics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kcliques/combinatorics"
)

func TestTable_KnownValues(t *testing.T) {
	tbl := combinatorics.New(10)
	cases := []struct {
		n, r int
		want uint64
	}{
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{4, 2, 6},
		{10, 3, 120},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, tbl.C(c.n, c.r), "C(%d,%d)", c.n, c.r)
	}
}

func TestTable_OutOfRangeIsZero(t *testing.T) {
	tbl := combinatorics.New(5)
	assert.Equal(t, uint64(0), tbl.C(3, 4))
	assert.Equal(t, uint64(0), tbl.C(3, -1))
	assert.Equal(t, uint64(0), tbl.C(-1, 0))
}

func TestTable_ZeroChooseZeroIsOne(t *testing.T) {
	tbl := combinatorics.New(0)
	assert.Equal(t, uint64(1), tbl.C(0, 0))
}
