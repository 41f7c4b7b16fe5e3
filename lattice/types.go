// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Unassigned marks a cell that has not been given a grain-id yet.
const Unassigned = -1

// Coord is a lattice coordinate. Row-major order compares Row first, then Col.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Lattice is a Size×Size grid of grain-ids. It is immutable once built:
// every accessor returns a copy of internal state.
type Lattice struct {
	Size    int
	cells   []int // row-major, len = Size*Size
	origins []Coord
	basis   *mat.Dense
}

// newLattice allocates a Size×Size lattice with every cell Unassigned.
func newLattice(size int, basis mat.Matrix) *Lattice {
	cells := make([]int, size*size)
	for i := range cells {
		cells[i] = Unassigned
	}
	l := &Lattice{Size: size, cells: cells}
	if basis != nil {
		l.basis = mat.DenseCopyOf(basis)
	}

	return l
}

// FromRows wraps an externally labeled square grid. The input is deep-copied.
// Cells may hold any integer, including Unassigned; the lattice carries no
// origins and an identity basis.
// Returns ErrInvalidSize if rows is empty, ragged, or not square.
// Complexity: O(S²).
func FromRows(rows [][]int) (*Lattice, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: empty grid: %w", ErrInvalidSize)
	}
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", r, len(row), n, ErrInvalidSize)
		}
	}
	l := newLattice(n, SquareBasis())
	for r, row := range rows {
		copy(l.cells[r*n:(r+1)*n], row)
	}

	return l, nil
}

// InBounds reports whether c lies within the grid.
func (l *Lattice) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < l.Size && c.Col >= 0 && c.Col < l.Size
}

// Index maps c to its row-major index: Row*Size + Col.
func (l *Lattice) Index(c Coord) int {
	return c.Row*l.Size + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (l *Lattice) Coordinate(idx int) Coord {
	return Coord{Row: idx / l.Size, Col: idx % l.Size}
}

// At returns the grain-id stored at c, or Unassigned when c is out of bounds.
func (l *Lattice) At(c Coord) int {
	if !l.InBounds(c) {
		return Unassigned
	}

	return l.cells[l.Index(c)]
}

// Rows returns a deep copy of the grid as Size rows of Size cells.
func (l *Lattice) Rows() [][]int {
	out := make([][]int, l.Size)
	for r := range out {
		out[r] = make([]int, l.Size)
		copy(out[r], l.cells[r*l.Size:(r+1)*l.Size])
	}

	return out
}

// Origins returns the origin sites in acceptance order; origin k seeded grain k.
// Lattices built with FromRows have no origins.
func (l *Lattice) Origins() []Coord {
	out := make([]Coord, len(l.origins))
	copy(out, l.origins)

	return out
}

// Grains returns the number of grain-ids in use: len(Origins()) for generated
// lattices, otherwise one more than the largest id found.
func (l *Lattice) Grains() int {
	if len(l.origins) > 0 {
		return len(l.origins)
	}
	maxID := Unassigned
	for _, id := range l.cells {
		if id > maxID {
			maxID = id
		}
	}

	return maxID + 1
}

// Basis returns a copy of the basis the lattice was generated with.
func (l *Lattice) Basis() mat.Matrix {
	if l.basis == nil {
		return nil
	}

	return mat.DenseCopyOf(l.basis)
}

// Complete reports whether no cell is Unassigned.
func (l *Lattice) Complete() bool {
	for _, id := range l.cells {
		if id == Unassigned {
			return false
		}
	}

	return true
}
