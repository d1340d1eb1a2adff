package degeneracy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcliques/degeneracy"
	"github.com/katalvlaran/kcliques/graph"
)

func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	g.Finalize()
	return g
}

// TestCompute_TriangleInvariants checks the universal invariants from
// spec.md §8 on a triangle: every later(v) is within the degeneracy bound,
// and later/earlier partition N(v) consistently across both endpoints.
func TestCompute_TriangleInvariants(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	ord := degeneracy.Compute(g)

	require.Equal(t, 3, ord.Len())
	assert.LessOrEqual(t, ord.Degeneracy(), 2)

	sumLater := 0
	for v := 0; v < ord.Len(); v++ {
		rec := ord.Records[v]
		assert.LessOrEqual(t, len(rec.Later), ord.Degeneracy())
		sumLater += len(rec.Later)
		for _, u := range rec.Later {
			assert.Contains(t, ord.Records[u].Earlier, v)
		}
	}
	assert.Equal(t, g.M(), sumLater)
}

// TestCompute_PathDegeneracyIsOne verifies a path graph has degeneracy 1.
func TestCompute_PathDegeneracyIsOne(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	ord := degeneracy.Compute(g)
	assert.Equal(t, 1, ord.Degeneracy())
}

// TestCompute_K4DegeneracyIsThree verifies the complete graph on 4 vertices
// has degeneracy n-1.
func TestCompute_K4DegeneracyIsThree(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	})
	ord := degeneracy.Compute(g)
	assert.Equal(t, 3, ord.Degeneracy())
}

// TestCompute_RenamedIdsMatchRank checks the renaming invariant from
// spec.md §9: vertex == rank, and Later/Earlier entries are themselves
// valid renamed ids in range.
func TestCompute_RenamedIdsMatchRank(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {0, 2}})
	ord := degeneracy.Compute(g)
	for v := 0; v < ord.Len(); v++ {
		rec := ord.Records[v]
		assert.Equal(t, v, rec.Vertex)
		assert.Equal(t, v, rec.Rank)
		for _, u := range rec.Later {
			assert.True(t, u >= 0 && u < ord.Len())
			assert.Greater(t, u, v)
		}
		for _, u := range rec.Earlier {
			assert.Less(t, u, v)
		}
	}
}
