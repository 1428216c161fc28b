package linarr

import "github.com/treemetrics/linarr/core"

// IsPlanar reports whether the arrangement has no edge crossings.
// Complexity: O(m log n).
func IsPlanar(g core.Graph, arr *core.Arrangement) (bool, error) {
	c, err := Crossings(g, arr)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// IsRootCovered reports whether some edge (u,v) covers the root:
// min(pi(u),pi(v)) < pi(root) < max(pi(u),pi(v)). Complexity: O(m).
func IsRootCovered(t *core.RootedTree, arr *core.Arrangement) (bool, error) {
	pos, err := positions(t, arr)
	if err != nil {
		return false, err
	}
	pr := pos[t.Root()]
	for _, e := range t.Edges() {
		l, r := pos[e.From], pos[e.To]
		if l > r {
			l, r = r, l
		}
		if l < pr && pr < r {
			return true, nil
		}
	}
	return false, nil
}

// IsProjective reports whether the arrangement is planar and leaves
// the root uncovered. Complexity: O(m log n).
func IsProjective(t *core.RootedTree, arr *core.Arrangement) (bool, error) {
	planar, err := IsPlanar(t, arr)
	if err != nil || !planar {
		return false, err
	}
	covered, err := IsRootCovered(t, arr)
	if err != nil {
		return false, err
	}
	return !covered, nil
}
