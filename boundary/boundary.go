// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

const (
	methodFind        = "Find"
	methodFindLattice = "FindLattice"
)

// Find returns every cell of cells that has at least one differently labeled
// neighbor, in row-major order without duplicates.
//
// For each cell, nf supplies candidate neighbors; each candidate's Row is
// clamped into [0, rows-1] and Col into [0, cols-1], duplicates are dropped,
// and the first differing label ends the check for that cell.
// The grid is read only; repeated calls return equal results.
//
// Errors: ErrInvalidLattice (empty, ragged, or holding lattice.Unassigned),
// ErrNilNeighborFunc.
// Complexity: O(rows·cols·k) time, O(k) extra memory.
func Find(cells [][]int, nf NeighborFunc) ([]lattice.Coord, error) {
	if nf == nil {
		return nil, fmt.Errorf("%s: %w", methodFind, ErrNilNeighborFunc)
	}
	rows, cols, err := validate(methodFind, cells)
	if err != nil {
		return nil, err
	}

	var (
		out  []lattice.Coord
		seen = make([]lattice.Coord, 0, 8)
	)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			here := lattice.Coord{Row: r, Col: c}
			id := cells[r][c]
			seen = seen[:0]
			for _, n := range nf(here) {
				n = lattice.Coord{Row: clamp(n.Row, 0, rows-1), Col: clamp(n.Col, 0, cols-1)}
				if contains(seen, n) {
					continue
				}
				seen = append(seen, n)
				if cells[n.Row][n.Col] != id {
					out = append(out, here)
					break
				}
			}
		}
	}

	return out, nil
}

// FindLattice runs Find over a generated lattice.
func FindLattice(l *lattice.Lattice, nf NeighborFunc) ([]lattice.Coord, error) {
	if l == nil {
		return nil, fmt.Errorf("%s: nil lattice: %w", methodFindLattice, ErrInvalidLattice)
	}

	return Find(l.Rows(), nf)
}

// validate checks that cells is non-empty, rectangular and fully assigned.
func validate(method string, cells [][]int) (rows, cols int, err error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return 0, 0, fmt.Errorf("%s: empty grid: %w", method, ErrInvalidLattice)
	}
	rows, cols = len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%s: row %d has %d cells, want %d: %w", method, r, len(row), cols, ErrInvalidLattice)
		}
		for c, id := range row {
			if id == lattice.Unassigned {
				return 0, 0, fmt.Errorf("%s: cell (%d,%d) unassigned: %w", method, r, c, ErrInvalidLattice)
			}
		}
	}

	return rows, cols, nil
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func contains(cs []lattice.Coord, c lattice.Coord) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
