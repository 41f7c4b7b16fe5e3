// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"

	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

const methodMask = "Mask"

// Mask returns a rows×cols grid holding 1 at every listed coordinate and 0
// elsewhere. Returns ErrInvalidLattice for non-positive dimensions or a
// coordinate outside the grid.
func Mask(rows, cols int, coords []lattice.Coord) ([][]int, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodMask, rows, cols, ErrInvalidLattice)
	}
	out := make([][]int, rows)
	for r := range out {
		out[r] = make([]int, cols)
	}
	for _, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("%s: %v outside %dx%d: %w", methodMask, c, rows, cols, ErrInvalidLattice)
		}
		out[c.Row][c.Col] = 1
	}

	return out, nil
}
