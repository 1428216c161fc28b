// Package numeric provides the exact arithmetic used by the tree
// counters and the exact metrics: Integer, a signed arbitrary-precision
// integer, and Rational, an exact fraction kept in lowest terms with a
// positive denominator.
//
// Both are thin value types over math/big, and the rest of the library
// depends only on the operation set below, not on the backing
// implementation:
//
//	Integer:  Add Sub Mul Div Mod Pow GCD Neg Cmp Sign Float64 String
//	Rational: Add Sub Mul Div Pow Invert Float64 Floor String
//
// Values are immutable: every operation returns a fresh value and
// leaves its operands untouched, so Integers and Rationals can be
// shared freely across goroutines once created. Construction from
// int64, from strings (base 10) and from numerator/denominator pairs
// is provided; Rational canonicalizes on every construction.
package numeric
