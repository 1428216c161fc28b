package minla

import "github.com/treemetrics/linarr/core"

// Planar computes the minimum of D over arrangements with no edge
// crossings, together with an arrangement realizing it. The optimum is
// a projective embedding rooted at a centroidal vertex: arranging the
// subtrees around a centroid never covers it, so the projective
// optimum from there is also the planar one.
// Complexity: O(n).
func Planar(t *core.FreeTree) (uint64, *core.Arrangement, error) {
	if t == nil {
		return 0, nil, ErrTreeNil
	}
	n := t.NumVertices()
	if n == 0 {
		return 0, core.Identity(0), nil
	}
	if !t.IsTree() {
		return 0, nil, core.ErrNotATree
	}
	if n == 1 {
		return 0, core.Identity(1), nil
	}
	cs, err := t.Centroid()
	if err != nil {
		return 0, nil, err
	}
	rt, err := t.ToRooted(cs[0])
	if err != nil {
		return 0, nil, err
	}
	return Projective(rt)
}
