package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kcliques/cliques"
	"github.com/katalvlaran/kcliques/output"
)

func TestWrite_AggregateMode(t *testing.T) {
	res := &cliques.Result{
		Mode:      cliques.ModeAggregate,
		KEff:      3,
		Aggregate: []uint64{0, 3, 3, 1},
	}
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, res))
	assert.Equal(t, "1\t3\n2\t3\n3\t1\n", buf.String())
}

func TestWrite_RecoversTotalsFromVertexMode(t *testing.T) {
	res := &cliques.Result{
		Mode: cliques.ModeVertex,
		KEff: 2,
		Vertex: [][]uint64{
			nil,
			{1, 1, 1},
			{2, 2, 2},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, res))
	assert.Equal(t, "1\t3\n2\t3\n", buf.String())
}

func TestDetailPath_StripsExtension(t *testing.T) {
	assert.Equal(t, "graph_kcliques_V.txt", output.DetailPath("/tmp/graph.edges", cliques.ModeVertex))
	assert.Equal(t, "graph_kcliques_E.txt", output.DetailPath("graph.txt", cliques.ModeEdge))
}

func TestWriteDetail_VertexFile(t *testing.T) {
	res := &cliques.Result{
		Mode: cliques.ModeVertex,
		KEff: 2,
		Vertex: [][]uint64{
			nil,
			{1, 1},
			{1, 1},
		},
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "out_kcliques_V.txt")
	require.NoError(t, output.WriteDetail(path, res, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1\t0\t1\n")
	assert.Contains(t, string(data), "2\t1\t1\n")
}

func TestWriteDetail_EdgeFileVerboseAddsTotals(t *testing.T) {
	res := &cliques.Result{
		Mode: cliques.ModeEdge,
		KEff: 2,
		Edge: []map[cliques.EdgeID]uint64{
			nil,
			nil,
			{{Lo: 0, Hi: 1}: 1},
		},
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "out_kcliques_E.txt")
	require.NoError(t, output.WriteDetail(path, res, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# k=2 total=1\n")
	assert.Contains(t, string(data), "2\t0-1\t1\n")
}

func TestWriteDetail_RejectsAggregateMode(t *testing.T) {
	res := &cliques.Result{Mode: cliques.ModeAggregate, KEff: 1, Aggregate: []uint64{0, 1}}
	err := output.WriteDetail(filepath.Join(t.TempDir(), "x.txt"), res, false)
	assert.ErrorIs(t, err, output.ErrUnsupportedMode)
}
