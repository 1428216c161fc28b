package generate

import (
	"github.com/treemetrics/linarr/core"
	"github.com/treemetrics/linarr/sorting"
)

// A projective arrangement of a rooted tree nests one interval per
// vertex: the interval of v contains v itself and the intervals of its
// children, in some order. Enumerating or sampling the per-vertex
// orders therefore covers the projective arrangements exactly once. A
// planar arrangement is a projective one whose root sits at the
// leftmost position, taken over every choice of root: the leftmost
// vertex of a planar arrangement can never be covered, so the rooting
// is recoverable and no arrangement is produced twice.

// permSet holds the per-vertex orders. perm[u] lists u and its children
// (u pinned first when the set is root-pinned). fixedFirst keeps the
// root leftmost for the planar generators; false pins nothing.
type permSet struct {
	perm       [][]int
	root       int
	fixedFirst bool
}

func newPermSet(t *core.RootedTree, fixedFirst bool) permSet {
	n := t.NumVertices()
	p := permSet{perm: make([][]int, n), root: t.Root(), fixedFirst: fixedFirst}
	for u := 0; u < n; u++ {
		p.perm[u] = p.firstPerm(t, u)
	}
	return p
}

// firstPerm is the lexicographically first order of u's interval.
func (p *permSet) firstPerm(t *core.RootedTree, u int) []int {
	kids := t.Children(u)
	items := make([]int, 0, len(kids)+1)
	items = append(items, u)
	items = append(items, kids...)
	if p.fixedFirst && u == p.root {
		sorting.Ints(items[1:])
		return items
	}
	sorting.Ints(items)
	return items
}

// mutable returns the slice of perm[u] that is free to vary.
func (p *permSet) mutable(u int) []int {
	if p.fixedFirst && u == p.root {
		return p.perm[u][1:]
	}
	return p.perm[u]
}

// advance steps the per-vertex orders like an odometer, vertex n-1
// varying fastest. It reports false once every order has rolled over.
func (p *permSet) advance(t *core.RootedTree) bool {
	for u := len(p.perm) - 1; u >= 0; u-- {
		if nextPermutation(p.mutable(u)) {
			return true
		}
		p.perm[u] = p.firstPerm(t, u)
	}
	return false
}

// shuffle draws a uniform order at every vertex independently.
func (p *permSet) shuffle(r randSource) {
	for u := range p.perm {
		s := p.mutable(u)
		for i := len(s) - 1; i > 0; i-- {
			j := r.Intn(i + 1)
			s[i], s[j] = s[j], s[i]
		}
	}
}

// flatten expands the nested intervals into an arrangement.
func (p *permSet) flatten(n int) (*core.Arrangement, error) {
	inv := make([]int, 0, n)
	var rec func(u int)
	rec = func(u int) {
		for _, x := range p.perm[u] {
			if x == u {
				inv = append(inv, u)
			} else {
				rec(x)
			}
		}
	}
	rec(p.root)
	return core.FromInverse(inv)
}

// nextPermutation rearranges a into its lexicographic successor,
// reporting false when a is already the last permutation.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
	return true
}

func validRooted(t *core.RootedTree) error {
	if t == nil {
		return ErrTreeNil
	}
	if t.NumVertices() > 0 && (!t.IsTree() || (!t.IsArborescence() && !t.ValidateOrientation())) {
		return core.ErrNotATree
	}
	return nil
}

// AllProjective enumerates every projective arrangement of a rooted
// tree: the product over vertices of the orders of their intervals,
// lexicographic, vertex n-1 varying fastest. There are ∏(k_u+1)!
// arrangements, k_u the number of children of u.
type AllProjective struct {
	t     *core.RootedTree
	perms permSet
	past  bool
}

// NewAllProjective creates the enumerator positioned on the first
// arrangement. Fails with core.ErrNotATree unless t is a complete
// arborescence. Complexity: O(n).
func NewAllProjective(t *core.RootedTree) (*AllProjective, error) {
	if err := validRooted(t); err != nil {
		return nil, err
	}
	g := &AllProjective{t: t}
	g.Reset()
	return g, nil
}

// Reset repositions the enumerator on the first arrangement.
func (g *AllProjective) Reset() {
	g.perms = newPermSet(g.t, false)
	g.past = false
}

// End reports whether the enumeration is over. Complexity: O(1).
func (g *AllProjective) End() bool { return g.past }

// Next advances to the next arrangement. Amortized O(1).
func (g *AllProjective) Next() {
	if g.past {
		return
	}
	if !g.perms.advance(g.t) {
		g.past = true
	}
}

// Arrangement materializes the current arrangement. Fails with
// ErrExhausted past the end. Complexity: O(n).
func (g *AllProjective) Arrangement() (*core.Arrangement, error) {
	if g.past {
		return nil, ErrExhausted
	}
	if g.t.NumVertices() == 0 {
		return core.Identity(0), nil
	}
	return g.perms.flatten(g.t.NumVertices())
}

// YieldArrangement returns the current arrangement and advances.
func (g *AllProjective) YieldArrangement() (*core.Arrangement, error) {
	arr, err := g.Arrangement()
	if err != nil {
		return nil, err
	}
	g.Next()
	return arr, nil
}

// AllPlanar enumerates every planar arrangement of a free tree: for
// each root r, every projective arrangement of the tree rooted at r
// with r pinned to the leftmost position. There are n·∏ deg(u)!
// arrangements.
type AllPlanar struct {
	t      *core.FreeTree
	root   int
	rooted *core.RootedTree
	perms  permSet
	past   bool
}

// NewAllPlanar creates the enumerator positioned on the first
// arrangement. Fails with core.ErrNotATree unless t is a complete
// tree. Complexity: O(n).
func NewAllPlanar(t *core.FreeTree) (*AllPlanar, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	if t.NumVertices() > 0 && !t.IsTree() {
		return nil, core.ErrNotATree
	}
	g := &AllPlanar{t: t}
	g.Reset()
	return g, nil
}

// Reset repositions the enumerator on the first arrangement, rooted at
// vertex 0. Complexity: O(n).
func (g *AllPlanar) Reset() {
	g.root = 0
	g.past = false
	if g.t.NumVertices() > 0 {
		g.reroot()
	}
}

func (g *AllPlanar) reroot() {
	rt, err := g.t.ToRooted(g.root)
	if err != nil {
		// guarded at construction time
		g.past = true
		return
	}
	g.rooted = rt
	g.perms = newPermSet(rt, true)
}

// End reports whether the enumeration is over. Complexity: O(1).
func (g *AllPlanar) End() bool { return g.past }

// Next advances to the next arrangement, moving to the next root once
// the current root's orders are exhausted. Amortized O(1) plus the
// re-rooting pass.
func (g *AllPlanar) Next() {
	if g.past {
		return
	}
	if g.perms.advance(g.rooted) {
		return
	}
	g.root++
	if g.root >= g.t.NumVertices() {
		g.past = true
		return
	}
	g.reroot()
}

// Arrangement materializes the current arrangement. Fails with
// ErrExhausted past the end. Complexity: O(n).
func (g *AllPlanar) Arrangement() (*core.Arrangement, error) {
	if g.past {
		return nil, ErrExhausted
	}
	if g.t.NumVertices() == 0 {
		// the empty tree has exactly one (empty) arrangement
		return core.Identity(0), nil
	}
	return g.perms.flatten(g.t.NumVertices())
}

// YieldArrangement returns the current arrangement and advances.
func (g *AllPlanar) YieldArrangement() (*core.Arrangement, error) {
	arr, err := g.Arrangement()
	if err != nil {
		return nil, err
	}
	g.Next()
	return arr, nil
}

// RandProjective samples projective arrangements of a rooted tree
// uniformly at random: a uniform independent order at every vertex.
type RandProjective struct {
	t     *core.RootedTree
	rng   rngState
	perms permSet
}

// NewRandProjective creates the sampler. Seed 0 draws OS entropy; any
// other seed fixes the stream. Complexity: O(n).
func NewRandProjective(t *core.RootedTree, seed uint64) (*RandProjective, error) {
	if err := validRooted(t); err != nil {
		return nil, err
	}
	return &RandProjective{t: t, rng: newRngState(seed), perms: newPermSet(t, false)}, nil
}

// Arrangement draws one uniform projective arrangement.
// Complexity: O(n).
func (g *RandProjective) Arrangement() (*core.Arrangement, error) {
	if g.t.NumVertices() == 0 {
		return core.Identity(0), nil
	}
	g.perms.shuffle(g.rng.r)
	return g.perms.flatten(g.t.NumVertices())
}

// RandPlanar samples planar arrangements of a free tree uniformly at
// random: a uniform root (every root heads the same number of planar
// arrangements) followed by uniform orders with the root pinned left.
type RandPlanar struct {
	t   *core.FreeTree
	rng rngState
}

// NewRandPlanar creates the sampler. Seed 0 draws OS entropy; any
// other seed fixes the stream. Complexity: O(1).
func NewRandPlanar(t *core.FreeTree, seed uint64) (*RandPlanar, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	if t.NumVertices() > 0 && !t.IsTree() {
		return nil, core.ErrNotATree
	}
	return &RandPlanar{t: t, rng: newRngState(seed)}, nil
}

// Arrangement draws one uniform planar arrangement. Complexity: O(n).
func (g *RandPlanar) Arrangement() (*core.Arrangement, error) {
	n := g.t.NumVertices()
	if n == 0 {
		return core.Identity(0), nil
	}
	rt, err := g.t.ToRooted(g.rng.r.Intn(n))
	if err != nil {
		return nil, err
	}
	perms := newPermSet(rt, true)
	perms.shuffle(g.rng.r)
	return perms.flatten(n)
}
