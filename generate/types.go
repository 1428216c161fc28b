package generate

import "errors"

// Sentinel errors for the generate package. Branch with errors.Is.
var (
	// ErrInvalidSize indicates a negative number of vertices.
	ErrInvalidSize = errors.New("generate: invalid number of vertices")

	// ErrExhausted indicates Tree or Arrangement was called on a
	// generator whose End method already reports true.
	ErrExhausted = errors.New("generate: generator exhausted")

	// ErrTreeNil indicates a nil tree was handed to an arrangement
	// generator.
	ErrTreeNil = errors.New("generate: tree is nil")
)
