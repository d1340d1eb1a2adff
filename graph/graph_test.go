package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcliques/graph"
)

func mustParse(t *testing.T, body string) *graph.Graph {
	t.Helper()
	g, err := graph.LoadReader(strings.NewReader(body))
	require.NoError(t, err)
	return g
}

func TestLoad_SymmetrizesSingleDirection(t *testing.T) {
	g := mustParse(t, "4 3\n0 1\n1 2\n2 3\n")
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.M())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
}

func TestLoad_AcceptsBothDirectionsExplicitly(t *testing.T) {
	g := mustParse(t, "3 6\n0 1\n1 0\n1 2\n2 1\n0 2\n2 0\n")
	assert.Equal(t, 3, g.M())
}

func TestLoad_RejectsSelfLoop(t *testing.T) {
	_, err := graph.LoadReader(strings.NewReader("2 2\n0 0\n"))
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestLoad_RejectsDuplicateEdge(t *testing.T) {
	_, err := graph.LoadReader(strings.NewReader("2 2\n0 1\n0 1\n"))
	assert.ErrorIs(t, err, graph.ErrDuplicateEdge)
}

func TestLoad_RejectsVertexOutOfRange(t *testing.T) {
	_, err := graph.LoadReader(strings.NewReader("2 2\n0 5\n"))
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestLoad_RejectsMalformedHeader(t *testing.T) {
	_, err := graph.LoadReader(strings.NewReader("not-a-header\n"))
	assert.ErrorIs(t, err, graph.ErrMalformedHeader)
}

func TestNewAddEdge_IdempotentAndFinalizeSorts(t *testing.T) {
	g := graph.New(3)
	g.AddEdge(2, 0)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1) // duplicate AddEdge is a no-op, unlike Load
	g.Finalize()
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, 2, g.M())
}
