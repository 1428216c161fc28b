package treebank

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/treemetrics/linarr/core"
)

// TreeReader iterates the trees of a head-vector stream, one tree per
// line. Blank lines are reported with ErrEmptyLine and do not stop the
// iteration; the reader keeps the file's line numbering so diagnostics
// can point at the offending sentence.
type TreeReader struct {
	sc       *bufio.Scanner
	line     int
	numTrees int
}

// NewTreeReader creates a reader over r. Complexity: O(1).
func NewTreeReader(r io.Reader) *TreeReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &TreeReader{sc: sc}
}

// Next returns the next tree. It returns io.EOF when the stream is
// exhausted, ErrEmptyLine on a blank line, and a *ParseError on a
// malformed one; after ErrEmptyLine or a *ParseError the reader can
// keep going. Complexity: O(n log n) in the tree size.
func (tr *TreeReader) Next() (*core.RootedTree, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return nil, fmt.Errorf("treebank: %w", err)
		}
		return nil, io.EOF
	}
	tr.line++
	fields := strings.Fields(tr.sc.Text())
	if len(fields) == 0 {
		return nil, ErrEmptyLine
	}
	h, err := parseHeads(tr.line, fields)
	if err != nil {
		return nil, err
	}
	t, err := h.ToRootedTree()
	if err != nil {
		return nil, err
	}
	tr.numTrees++
	return t, nil
}

// Line returns the number of lines consumed so far. Complexity: O(1).
func (tr *TreeReader) Line() int { return tr.line }

// NumTrees returns the number of trees successfully parsed so far.
// Once Next has returned io.EOF this is the tree count of the whole
// stream. Complexity: O(1).
func (tr *TreeReader) NumTrees() int { return tr.numTrees }

// TreeWriter writes trees as head-vector lines, one tree per line.
type TreeWriter struct {
	bw       *bufio.Writer
	numTrees int
}

// NewTreeWriter creates a writer over w. Complexity: O(1).
func NewTreeWriter(w io.Writer) *TreeWriter {
	return &TreeWriter{bw: bufio.NewWriter(w)}
}

// Write appends one tree. Requires the arborescence orientation.
// Complexity: O(n).
func (tw *TreeWriter) Write(t *core.RootedTree) error {
	h, err := core.HeadVectorOf(t)
	if err != nil {
		return err
	}
	for i, v := range h {
		if i > 0 {
			if err := tw.bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := tw.bw.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	if err := tw.bw.WriteByte('\n'); err != nil {
		return err
	}
	tw.numTrees++
	return nil
}

// NumTrees returns the number of trees written so far.
func (tw *TreeWriter) NumTrees() int { return tw.numTrees }

// Flush writes any buffered data to the underlying writer.
func (tw *TreeWriter) Flush() error { return tw.bw.Flush() }
