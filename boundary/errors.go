// SPDX-License-Identifier: MIT

package boundary

import "errors"

var (
	// ErrInvalidLattice indicates an empty, ragged or partially assigned grid.
	ErrInvalidLattice = errors.New("boundary: lattice must be rectangular and fully assigned")
	// ErrNilNeighborFunc indicates a nil neighbor function.
	ErrNilNeighborFunc = errors.New("boundary: neighbor function is nil")
)
