package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/kcliques/cliques"
)

// Write prints the mode-A summary to w: one "k\tcount" line per k from 1 to
// res.KEff (spec.md §6's stdout format). It is valid for every mode, not
// just aggregate, since every Result's k range is meaningful even when the
// detail lives in a file: Detail==0/1/2 always get this line first.
func Write(w io.Writer, res *cliques.Result) error {
	bw := bufio.NewWriter(w)
	for k := 1; k <= res.KEff; k++ {
		count, err := totalAt(res, k)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", k, count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// totalAt returns the aggregate count for k regardless of Mode: aggregate
// mode reads it directly, vertex and edge mode recover it from the
// universal invariants of spec.md §8 (Σ_v count[k][v] = k·count[k];
// Σ_edges count[k][(u,v)] = C(k,2)·count[k]).
func totalAt(res *cliques.Result, k int) (uint64, error) {
	switch res.Mode {
	case cliques.ModeAggregate:
		return res.Aggregate[k], nil
	case cliques.ModeVertex:
		var sum uint64
		for _, c := range res.Vertex[k] {
			sum += c
		}
		if k == 0 {
			return sum, nil
		}
		return sum / uint64(k), nil
	case cliques.ModeEdge:
		var sum uint64
		for _, c := range res.Edge[k] {
			sum += c
		}
		denom := uint64(k) * uint64(k-1) / 2
		if denom == 0 {
			return sum, nil
		}
		return sum / denom, nil
	default:
		return 0, ErrUnsupportedMode
	}
}

// DetailPath builds the per-vertex / per-edge output filename from the
// loader's input path, per spec.md §6: "<basename>_kcliques_V.txt" or
// "_E.txt", where basename strips the input's final extension.
func DetailPath(inputPath string, mode cliques.Mode) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	suffix := "V"
	if mode == cliques.ModeEdge {
		suffix = "E"
	}
	return fmt.Sprintf("%s_kcliques_%s.txt", base, suffix)
}

// WriteDetail writes the per-vertex or per-edge file for modes V and E to
// path. verbose enables flag_d=2's superset behavior (SPEC_FULL.md §3): a
// leading "# total" comment line per k, computed from res's own counts, ahead
// of that k's detail lines.
func WriteDetail(path string, res *cliques.Result, verbose bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	switch res.Mode {
	case cliques.ModeVertex:
		for k := 1; k <= res.KEff; k++ {
			if verbose {
				total, _ := totalAt(res, k)
				fmt.Fprintf(bw, "# k=%d total=%d\n", k, total)
			}
			for v, c := range res.Vertex[k] {
				if c == 0 {
					continue
				}
				fmt.Fprintf(bw, "%d\t%d\t%d\n", k, v, c)
			}
		}
	case cliques.ModeEdge:
		for k := 2; k <= res.KEff; k++ {
			if verbose {
				total, _ := totalAt(res, k)
				fmt.Fprintf(bw, "# k=%d total=%d\n", k, total)
			}
			ids := make([]cliques.EdgeID, 0, len(res.Edge[k]))
			for id := range res.Edge[k] {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool {
				if ids[i].Lo != ids[j].Lo {
					return ids[i].Lo < ids[j].Lo
				}
				return ids[i].Hi < ids[j].Hi
			})
			for _, id := range ids {
				fmt.Fprintf(bw, "%d\t%d-%d\t%d\n", k, id.Lo, id.Hi, res.Edge[k][id])
			}
		}
	default:
		return ErrUnsupportedMode
	}
	return bw.Flush()
}
