// Package sorting provides the small-integer sorting primitives used by
// the graph model and the arrangement algorithms: a stable counting sort
// with a pluggable key extractor, a bitset sort for distinct integers in
// [0,n), and an insertion sort for tiny ranges.
//
// These exist because the library sorts the same two shapes of data over
// and over:
//
//   - adjacency lists: short sequences of distinct vertex ids in [0,n),
//     sorted ascending during normalization (BitSorter, Ints);
//   - child lists keyed by subtree size, sorted by the minimum-arrangement
//     solvers in either direction (Counting).
//
// Both shapes admit linear-time sorts that comfortably beat the generic
// comparison sort for the sizes involved. Ints dispatches between the
// strategies by length: insertion sort up to 14 elements, the standard
// comparison sort up to 30, the bitset sweep beyond that.
//
// A reusable BitSorter does not allocate per Sort call; Counting and
// the one-shot Ints allocate the scratch they need.
package sorting
