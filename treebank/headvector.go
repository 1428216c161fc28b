package treebank

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/treemetrics/linarr/core"
)

// parseHeads tokenizes one head-vector line and validates the details a
// parse error should name: bad tokens, out-of-range ids, a node that is
// its own parent, a missing root, two roots, and parent cycles.
func parseHeads(line int, fields []string) (core.HeadVector, error) {
	n := len(fields)
	h := make(core.HeadVector, n)
	root := -1
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, parseErrorf(line, "invalid head %q for node %d", tok, i+1)
		}
		if v > n {
			return nil, parseErrorf(line, "head %d of node %d out of range [0,%d]", v, i+1, n)
		}
		if v == i+1 {
			return nil, parseErrorf(line, "node %d is its own parent", i+1)
		}
		if v == 0 {
			if root != -1 {
				return nil, parseErrorf(line, "two roots: nodes %d and %d", root+1, i+1)
			}
			root = i
		}
		h[i] = v
	}
	if root == -1 {
		return nil, parseErrorf(line, "no root")
	}
	if err := h.Validate(); err != nil {
		return nil, parseErrorf(line, "parent cycle")
	}
	return h, nil
}

// ParseHeadVector parses one head-vector line: n whitespace-separated
// integers, token i naming the parent of node i+1, 0 marking the root.
// Malformed input fails with a *ParseError. Complexity: O(n).
func ParseHeadVector(s string) (core.HeadVector, error) {
	return parseHeads(1, strings.Fields(s))
}

// ReadHeadVectorRooted reads a whole reader as a single head vector and
// decodes it into a rooted tree. Complexity: O(n log n).
func ReadHeadVectorRooted(r io.Reader) (*core.RootedTree, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("treebank: %w", err)
	}
	h, err := parseHeads(1, fields)
	if err != nil {
		return nil, err
	}
	return h.ToRootedTree()
}

// ReadHeadVectorFree reads a whole reader as a single head vector and
// decodes it into a free tree, forgetting the root.
func ReadHeadVectorFree(r io.Reader) (*core.FreeTree, error) {
	rt, err := ReadHeadVectorRooted(r)
	if err != nil {
		return nil, err
	}
	return rt.ToFreeTree()
}

// WriteHeadVector writes t as one head-vector line. Requires the
// arborescence orientation. Complexity: O(n).
func WriteHeadVector(w io.Writer, t *core.RootedTree) error {
	tw := NewTreeWriter(w)
	if err := tw.Write(t); err != nil {
		return err
	}
	return tw.Flush()
}
