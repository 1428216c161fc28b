// Package linarr is a library for linear arrangements of trees: the
// combinatorics of laying a tree's vertices on a line.
//
// A linear arrangement assigns each vertex a distinct position; the
// classical quantities over it are D, the sum of edge lengths, and C,
// the number of edge crossings. The library computes both, minimizes D
// exactly under three constraint levels (unconstrained, planar,
// projective), and generates the trees and arrangements that feed
// those computations.
//
// The packages, leaves first:
//
//	numeric/   arbitrary-precision Integer and Rational
//	sorting/   counting and bitset sorts for small integer keys
//	core/      graphs, free and rooted trees, arrangements, head vectors
//	traverse/  BFS and DFS with pluggable callbacks
//	linarr/    D, C (four algorithms), MDD, planarity and projectivity
//	minla/     minimum linear arrangements: Shiloach and Chung
//	           unconstrained, Hochberg-Stallmann planar,
//	           Gildea-Temperley projective
//	generate/  exhaustive and uniformly random trees, labelled and
//	           unlabelled, free and rooted, plus projective and planar
//	           arrangement enumerators and samplers
//	treebank/  head-vector and edge-list readers and writers
//	cmd/linarr command-line metrics, MinLA and generation over
//	           treebank files
//
// Trees use integer vertex labels in [0,n). All randomness is seeded;
// seed 0 draws OS entropy. Algorithms are single-threaded; distinct
// values are safe to use from distinct goroutines.
package linarr
