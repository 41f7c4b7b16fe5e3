// SPDX-License-Identifier: MIT

package boundary

import "github.com/Henry-P-Ding/grain-growth-simulation/lattice"

// NeighborFunc returns the candidate neighbors of c. Results need not lie
// inside the grid; Find clamps them.
type NeighborFunc func(c lattice.Coord) []lattice.Coord

// Offsets builds a NeighborFunc from fixed (dRow, dCol) displacements.
// The offsets are copied, so later changes to the argument have no effect.
func Offsets(offsets ...[2]int) NeighborFunc {
	deltas := make([][2]int, len(offsets))
	copy(deltas, offsets)

	return func(c lattice.Coord) []lattice.Coord {
		out := make([]lattice.Coord, len(deltas))
		for i, d := range deltas {
			out[i] = lattice.Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		}
		return out
	}
}

var (
	vonNeumann = Offsets([2]int{-1, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{0, -1})
	moore      = Offsets([2]int{-1, 0}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 1},
		[2]int{1, 0}, [2]int{1, -1}, [2]int{0, -1}, [2]int{-1, -1})
	// Matches lattice.HexagonalBasis: all six lie at unit transformed distance.
	hexagonal = Offsets([2]int{-1, 0}, [2]int{-1, 1}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, -1}, [2]int{0, -1})
)

// VonNeumann returns the four axis-aligned neighbors: up, right, down, left.
func VonNeumann(c lattice.Coord) []lattice.Coord {
	return vonNeumann(c)
}

// Moore returns the eight surrounding cells, clockwise from up.
func Moore(c lattice.Coord) []lattice.Coord {
	return moore(c)
}

// Hexagonal returns the six neighbors of c on the axial grid spanned by
// lattice.HexagonalBasis.
func Hexagonal(c lattice.Coord) []lattice.Coord {
	return hexagonal(c)
}
