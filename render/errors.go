package render

import "errors"

var (
	// ErrNilLattice indicates a nil lattice.
	ErrNilLattice = errors.New("render: lattice is nil")
	// ErrCellSize indicates fewer than one pixel per site.
	ErrCellSize = errors.New("render: cell size must be at least 1 pixel")
)
