// Package linarr computes structural metrics of graphs under linear
// arrangements: the sum of edge lengths D, the number of edge
// crossings C, the mean dependency distance, and the head-initial
// ratio, together with the planarity and projectivity predicates built
// on them.
//
// Every function that depends on an arrangement takes the graph and an
// optional arrangement; the empty (or nil) arrangement stands for the
// identity, following the convention of the core package.
//
// Crossings are computed by one of four interchangeable algorithms,
// selected with WithAlgorithm:
//
//	Brute   O(m^2) time            correctness oracle, tiny graphs
//	DP      O(n^2) time and memory dense graphs, moderate n
//	Ladder  O(n*m) time, O(n) mem  sparse graphs, memory constrained
//	Stack   O(m log n) time        default, best for trees
//
// All four return the same count: the number of unordered pairs of
// independent edges whose endpoints interleave under the arrangement.
// Pairs of edges sharing a vertex are never counted.
//
// The exact metrics (mean dependency distance, head-initial ratio,
// degree moments) are returned as numeric.Rational so no precision is
// lost on large treebanks.
package linarr
