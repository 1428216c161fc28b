package linarr

import (
	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/numeric"
)

// SumEdgeLengths computes D = sum over edges (u,v) of |pi(u) - pi(v)|.
// The empty arrangement stands for the identity. Complexity: O(m).
func SumEdgeLengths(g core.Graph, arr *core.Arrangement) (uint64, error) {
	pos, err := positions(g, arr)
	if err != nil {
		return 0, err
	}
	var d uint64
	for _, e := range g.Edges() {
		d += uint64(absInt(pos[e.From] - pos[e.To]))
	}
	return d, nil
}

// MeanDependencyDistance computes D/m exactly. Fails with ErrNoEdges
// on edgeless graphs. Complexity: O(m).
func MeanDependencyDistance(g core.Graph, arr *core.Arrangement) (numeric.Rational, error) {
	if g == nil {
		return numeric.Rational{}, ErrGraphNil
	}
	if g.NumEdges() == 0 {
		return numeric.Rational{}, ErrNoEdges
	}
	d, err := SumEdgeLengths(g, arr)
	if err != nil {
		return numeric.Rational{}, err
	}
	return numeric.NewRational(int64(d), int64(g.NumEdges()))
}

// HeadInitial computes the proportion of edges whose head precedes its
// dependent in the arrangement: |{(u,v): pi(u) < pi(v)}| / m over the
// directed edges of a rooted tree. Fails with ErrNoEdges on edgeless
// input. Complexity: O(m).
func HeadInitial(t *core.RootedTree, arr *core.Arrangement) (numeric.Rational, error) {
	if t == nil {
		return numeric.Rational{}, ErrGraphNil
	}
	if t.NumEdges() == 0 {
		return numeric.Rational{}, ErrNoEdges
	}
	pos, err := positions(t, arr)
	if err != nil {
		return numeric.Rational{}, err
	}
	headFirst := 0
	for _, e := range t.Edges() {
		if pos[e.From] < pos[e.To] {
			headFirst++
		}
	}
	return numeric.NewRational(int64(headFirst), int64(t.NumEdges()))
}

// DegreeMoment computes the p-th moment of the degree sequence,
// <k^p> = (1/n) * sum over vertices of degree(u)^p, exactly.
// Complexity: O(n) big-number operations.
func DegreeMoment(g core.Graph, p uint) (numeric.Rational, error) {
	if g == nil {
		return numeric.Rational{}, ErrGraphNil
	}
	n := g.NumVertices()
	if n == 0 {
		return numeric.Rational{}, ErrNoEdges
	}
	sum := numeric.NewInteger(0)
	for u := 0; u < n; u++ {
		deg := int64(len(g.Neighbours(u)))
		if g.IsDirected() {
			if dg, ok := g.(interface{ InNeighbours(int) []int }); ok {
				deg += int64(len(dg.InNeighbours(u)))
			}
		}
		sum = sum.Add(numeric.NewInteger(deg).Pow(p))
	}
	return numeric.RationalFromIntegers(sum, numeric.NewInteger(int64(n)))
}

// positions validates the optional arrangement against g and returns
// the pos array (identity when the arrangement is empty).
func positions(g core.Graph, arr *core.Arrangement) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NumVertices()
	if arr.IsEmpty() {
		return core.Identity(n).Positions(), nil
	}
	if arr.N() != n {
		return nil, ErrSizeMismatch
	}
	return arr.Positions(), nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
