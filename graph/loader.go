package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load reads an ASCII edge-list file and returns the resulting Graph.
//
// Format (see SPEC_FULL.md §6 / spec.md §6):
//
//	n m
//	u1 v1
//	u2 v2
//	...
//
// n is the vertex count, m is twice the number of undirected edges (the
// format allows, but does not require, both directions of each edge to be
// listed explicitly). Load symmetrizes single-direction input and rejects
// self-loops and any directed pair "u v" that appears twice; "u v" followed
// by "v u" is accepted as the two directions of one edge.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: open %q: %w", path, err)
	}
	defer f.Close()

	return parse(f)
}

// LoadReader behaves like Load but reads from an already-open io.Reader,
// for callers that have the edge list in memory or under test.
func LoadReader(r io.Reader) (*Graph, error) {
	return parse(r)
}

func parse(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	n, _, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	g := New(n)
	seenDirected := make(map[[2]int]bool)
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		u, v, err := parseEdgeLine(line)
		if err != nil {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, err)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, ErrVertexOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, ErrSelfLoop)
		}
		dkey := [2]int{u, v}
		if seenDirected[dkey] {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, ErrDuplicateEdge)
		}
		seenDirected[dkey] = true
		g.AddEdge(u, v) // idempotent: the reverse direction may already have added (u,v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graph: reading input: %w", err)
	}
	g.Finalize()
	return g, nil
}

func readHeader(sc *bufio.Scanner) (n, m int, err error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, 0, fmt.Errorf("graph: reading header: %w", err)
		}
		return 0, 0, ErrMalformedHeader
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 2 {
		return 0, 0, ErrMalformedHeader
	}
	n, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrMalformedHeader
	}
	if n < 0 || m < 0 {
		return 0, 0, ErrNegativeSize
	}
	return n, m, nil
}

func parseEdgeLine(line string) (u, v int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrMalformedEdge
	}
	u, err1 := strconv.Atoi(fields[0])
	v, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrMalformedEdge
	}
	return u, v, nil
}
