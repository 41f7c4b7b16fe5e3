package analysis

import "errors"

var (
	// ErrNilLattice indicates a nil lattice.
	ErrNilLattice = errors.New("analysis: lattice is nil")
	// ErrNilNeighborFunc indicates a nil neighbor function.
	ErrNilNeighborFunc = errors.New("analysis: neighbor function is nil")
	// ErrInvalidBoundary indicates a boundary site outside the lattice.
	ErrInvalidBoundary = errors.New("analysis: boundary site outside lattice")
)
