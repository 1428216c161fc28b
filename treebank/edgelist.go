package treebank

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/treemetrics/linarr/core"
)

// readEdges scans whitespace-separated vertex-id pairs, any number per
// line, blank lines permitted. It returns the edges and the inferred
// vertex count, max id + 1.
func readEdges(r io.Reader) ([]core.Edge, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var es []core.Edge
	maxID := -1
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields)%2 != 0 {
			return nil, 0, parseErrorf(line, "odd number of vertex ids")
		}
		for i := 0; i < len(fields); i += 2 {
			u, err := parseID(line, fields[i])
			if err != nil {
				return nil, 0, err
			}
			v, err := parseID(line, fields[i+1])
			if err != nil {
				return nil, 0, err
			}
			es = append(es, core.Edge{From: u, To: v})
			if u > maxID {
				maxID = u
			}
			if v > maxID {
				maxID = v
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("treebank: %w", err)
	}
	return es, maxID + 1, nil
}

func parseID(line int, tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, parseErrorf(line, "invalid vertex id %q", tok)
	}
	return v, nil
}

// ReadEdgeListUndirected reads an edge-list file into an undirected
// graph on [0, max id]. Complexity: O(m log m) for normalization.
func ReadEdgeListUndirected(r io.Reader) (*core.Undirected, error) {
	es, n, err := readEdges(r)
	if err != nil {
		return nil, err
	}
	g := core.NewUndirected(n)
	if err := g.SetEdges(es); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadEdgeListDirected reads an edge-list file into a directed graph on
// [0, max id]; each pair is a (tail, head) arc.
func ReadEdgeListDirected(r io.Reader) (*core.Directed, error) {
	es, n, err := readEdges(r)
	if err != nil {
		return nil, err
	}
	g := core.NewDirected(n)
	if err := g.SetEdges(es); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadEdgeListFree reads an edge-list file into a free tree. Fails with
// core.ErrNotATree when the edges close a cycle; a file with fewer than
// n-1 edges yields a tree still under construction.
func ReadEdgeListFree(r io.Reader) (*core.FreeTree, error) {
	es, n, err := readEdges(r)
	if err != nil {
		return nil, err
	}
	t := core.NewFreeTree(n)
	if err := t.SetEdges(es); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadEdgeListRooted reads an edge-list file into a rooted tree with
// the given root; each pair is a parent-to-child arc.
func ReadEdgeListRooted(r io.Reader, root int) (*core.RootedTree, error) {
	es, n, err := readEdges(r)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		n = root + 1
	}
	if root < 0 || root >= n {
		return nil, core.ErrIndexOutOfRange
	}
	t := core.NewRootedTree(n, root)
	if err := t.AddEdges(es); err != nil {
		return nil, err
	}
	t.ValidateOrientation()
	return t, nil
}

// WriteEdgeList writes every edge of g as one "u v" line.
func WriteEdgeList(w io.Writer, g core.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From, e.To); err != nil {
			return err
		}
	}
	return bw.Flush()
}
