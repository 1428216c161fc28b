package linarr

import "errors"

// Sentinel errors for metric computations.
var (
	// ErrSizeMismatch is returned when the arrangement does not cover
	// exactly the graph's vertex set.
	ErrSizeMismatch = errors.New("linarr: arrangement size does not match graph")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("linarr: graph is nil")

	// ErrNoEdges is returned by ratio metrics on graphs without edges.
	ErrNoEdges = errors.New("linarr: graph has no edges")
)

// Algorithm selects the crossing-count implementation.
type Algorithm int

const (
	// Stack is the O(m log n) sweep over a Fenwick tree of open edges.
	// Default.
	Stack Algorithm = iota
	// Brute examines every pair of independent edges, O(m^2).
	Brute
	// DP tabulates suffix neighbour counts per position, O(n^2) time
	// and memory.
	DP
	// Ladder recomputes one suffix row per position, O(n*m) time but
	// O(n) memory.
	Ladder
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Stack:
		return "stack"
	case Brute:
		return "brute"
	case DP:
		return "dp"
	case Ladder:
		return "ladder"
	default:
		return "unknown"
	}
}

// Option configures crossing computations.
type Option func(*options)

type options struct {
	alg Algorithm
}

func buildOptions(opts []Option) options {
	o := options{alg: Stack}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAlgorithm selects the crossings algorithm. Default Stack.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.alg = a }
}
