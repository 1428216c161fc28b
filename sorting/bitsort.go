package sorting

import "sort"

// BitSorter sorts sets of distinct integers in [0,n) in linear time by
// marking them in a reusable bitset and sweeping it back out. One
// BitSorter serves any number of Sort calls over slices drawn from the
// same universe, so normalizing a whole graph costs a single allocation.
//
// A BitSorter is not safe for concurrent use.
type BitSorter struct {
	seen []bool
}

// NewBitSorter returns a sorter for integers in [0,n).
// Complexity: O(n).
func NewBitSorter(n int) *BitSorter {
	return &BitSorter{seen: make([]bool, n)}
}

// Sort sorts a ascending in place. The elements must be distinct and
// lie in [0,n) for the n the sorter was created with. Short slices are
// dispatched to cheaper strategies; the bitset sweep is bounded by the
// value range actually present, not by n.
//
// Complexity: O(k + max(a) - min(a)) time with k = len(a).
func (b *BitSorter) Sort(a []int) {
	switch {
	case len(a) <= 1:
		return
	case len(a) <= insertionThreshold:
		Insertion(a)
		return
	case len(a) <= stdSortThreshold:
		sort.Ints(a)
		return
	}

	lo, hi := a[0], a[0]
	for _, v := range a[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, v := range a {
		b.seen[v] = true
	}
	i := 0
	for v := lo; v <= hi; v++ {
		if b.seen[v] {
			a[i] = v
			i++
			b.seen[v] = false
		}
	}
}

// Ints sorts a slice of distinct non-negative integers ascending with a
// throwaway sorter sized to the maximum element. Prefer a shared
// BitSorter when sorting many slices from the same universe.
//
// Complexity: O(k + max(a)).
func Ints(a []int) {
	if len(a) <= stdSortThreshold {
		(&BitSorter{}).Sort(a)
		return
	}
	hi := a[0]
	for _, v := range a[1:] {
		if v > hi {
			hi = v
		}
	}
	NewBitSorter(hi + 1).Sort(a)
}
