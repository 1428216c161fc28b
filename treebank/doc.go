// Package treebank reads and writes the two plain-text tree formats
// used by dependency treebanks and by this library's tooling.
//
// Edge list: whitespace-separated pairs of non-negative vertex ids,
// any number of pairs per line, blank lines permitted. The vertex set
// is [0, max id].
//
// Head vector: one tree per line, n whitespace-separated integers.
// Nodes are numbered 1..n in token order; token i holds the number of
// node i's parent, 0 marking the root. In-memory trees are 0-based;
// the translation happens only in this package and core.HeadVector.
//
// TreeReader iterates the trees of a head-vector file. Blank lines are
// reported with the ErrEmptyLine signal so callers can keep sentence
// numbering aligned with the source file; malformed lines produce a
// *ParseError carrying the line number and what was wrong with it.
package treebank
