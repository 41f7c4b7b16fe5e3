package boundary_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Henry-P-Ding/grain-growth-simulation/boundary"
	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

type coords = []lattice.Coord

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestFind_Errors verifies malformed grids and nil neighbor functions are rejected.
func TestFind_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
		nf    boundary.NeighborFunc
		err   error
	}{
		{"NilNeighborFunc", [][]int{{0}}, nil, boundary.ErrNilNeighborFunc},
		{"NoRows", [][]int{}, boundary.VonNeumann, boundary.ErrInvalidLattice},
		{"NoCols", [][]int{{}}, boundary.VonNeumann, boundary.ErrInvalidLattice},
		{"Ragged", [][]int{{0, 1}, {1}}, boundary.VonNeumann, boundary.ErrInvalidLattice},
		{"Unassigned", [][]int{{0, 1}, {lattice.Unassigned, 1}}, boundary.VonNeumann, boundary.ErrInvalidLattice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := boundary.Find(tc.cells, tc.nf)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, got)
		})
	}

	_, err := boundary.FindLattice(nil, boundary.VonNeumann)
	require.ErrorIs(t, err, boundary.ErrInvalidLattice)

	partial, err := lattice.FromRows([][]int{{0, lattice.Unassigned}, {0, 0}})
	require.NoError(t, err)
	_, err = boundary.FindLattice(partial, boundary.VonNeumann)
	require.ErrorIs(t, err, boundary.ErrInvalidLattice)
}

//----------------------------------------------------------------------------//
// Fixed grids
//----------------------------------------------------------------------------//

// TestFind_Neighborhoods compares stencils on a single-corner grain:
//
//	0 0 0
//	0 0 0
//	0 0 1
//
// Only Moore sees the diagonal contact at (1,1).
func TestFind_Neighborhoods(t *testing.T) {
	grid := [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 1},
	}
	cases := []struct {
		name string
		nf   boundary.NeighborFunc
		want coords
	}{
		{"VonNeumann", boundary.VonNeumann, coords{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}},
		{"Moore", boundary.Moore, coords{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}},
		{"Hexagonal", boundary.Hexagonal, coords{{Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := boundary.Find(grid, tc.nf)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Find mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFind_UniformIsEmpty: a single-grain grid has no boundary.
func TestFind_UniformIsEmpty(t *testing.T) {
	grid := [][]int{{4, 4, 4}, {4, 4, 4}}
	for _, nf := range []boundary.NeighborFunc{boundary.VonNeumann, boundary.Moore, boundary.Hexagonal} {
		got, err := boundary.Find(grid, nf)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

// TestFind_ClampsInsteadOfWrapping: on a 1×3 strip the left end would see the
// right end under wraparound; clamping keeps it interior.
func TestFind_ClampsInsteadOfWrapping(t *testing.T) {
	got, err := boundary.Find([][]int{{0, 0, 1}}, boundary.VonNeumann)
	require.NoError(t, err)
	require.Equal(t, coords{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, got)
}

// TestFind_FarOffsetsClampToEdge: an offset five rows up lands on row 0.
func TestFind_FarOffsetsClampToEdge(t *testing.T) {
	grid := [][]int{{1}, {0}, {0}}
	got, err := boundary.Find(grid, boundary.Offsets([2]int{-5, 0}))
	require.NoError(t, err)
	require.Equal(t, coords{{Row: 1, Col: 0}, {Row: 2, Col: 0}}, got)
}

// TestFind_Rectangular accepts non-square grids.
func TestFind_Rectangular(t *testing.T) {
	grid := [][]int{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	}
	got, err := boundary.Find(grid, boundary.VonNeumann)
	require.NoError(t, err)
	require.Equal(t, coords{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, got)
}

// TestFind_DuplicateCandidates tolerates neighbor functions that repeat themselves.
func TestFind_DuplicateCandidates(t *testing.T) {
	nf := boundary.Offsets([2]int{0, 1}, [2]int{0, 1}, [2]int{0, 0}, [2]int{0, 1})
	got, err := boundary.Find([][]int{{0, 1, 1}}, nf)
	require.NoError(t, err)
	require.Equal(t, coords{{Row: 0, Col: 0}}, got)
}

// TestFind_ReadOnly leaves the input grid untouched.
func TestFind_ReadOnly(t *testing.T) {
	grid := [][]int{{0, 1}, {2, 3}}
	before := [][]int{{0, 1}, {2, 3}}
	_, err := boundary.Find(grid, boundary.Moore)
	require.NoError(t, err)
	require.Equal(t, before, grid)
}

// TestOffsets_CopiesInput guards against aliasing the caller's slice.
func TestOffsets_CopiesInput(t *testing.T) {
	offs := [][2]int{{0, 1}}
	nf := boundary.Offsets(offs...)
	offs[0] = [2]int{1, 0}
	require.Equal(t, coords{{Row: 3, Col: 4}}, nf(lattice.Coord{Row: 3, Col: 3}))
}

//----------------------------------------------------------------------------//
// Generated lattices
//----------------------------------------------------------------------------//

// bruteForce marks a cell when any in-bounds neighbor differs. For stencils
// contained in the 3×3 window this equals clamping, since a clamped candidate
// is either the cell itself or another in-bounds window member.
func bruteForce(cells [][]int, offsets [][2]int) coords {
	var out coords
	for r := range cells {
		for c := range cells[r] {
			for _, d := range offsets {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= len(cells) || nc < 0 || nc >= len(cells[r]) {
					continue
				}
				if cells[nr][nc] != cells[r][c] {
					out = append(out, lattice.Coord{Row: r, Col: c})
					break
				}
			}
		}
	}
	return out
}

var (
	vonNeumannOffsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	mooreOffsets      = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// TestFind_MatchesBruteForce cross-checks generated lattices, including the
// every-site-an-origin extreme.
func TestFind_MatchesBruteForce(t *testing.T) {
	params := []struct{ size, grains int }{{4, 2}, {10, 5}, {16, 30}, {6, 36}}
	for _, p := range params {
		for seed := int64(1); seed <= 3; seed++ {
			l, err := lattice.Generate(p.size, p.grains, lattice.SquareBasis(), lattice.WithSeed(seed))
			require.NoError(t, err)
			cells := l.Rows()

			got, err := boundary.FindLattice(l, boundary.VonNeumann)
			require.NoError(t, err)
			if diff := cmp.Diff(bruteForce(cells, vonNeumannOffsets), got); diff != "" {
				t.Errorf("size=%d grains=%d seed=%d von Neumann (-want +got):\n%s", p.size, p.grains, seed, diff)
			}
			require.LessOrEqual(t, len(got), p.size*p.size)

			got, err = boundary.FindLattice(l, boundary.Moore)
			require.NoError(t, err)
			if diff := cmp.Diff(bruteForce(cells, mooreOffsets), got); diff != "" {
				t.Errorf("size=%d grains=%d seed=%d Moore (-want +got):\n%s", p.size, p.grains, seed, diff)
			}
		}
	}
}

// TestFind_TwoCornerOrigins checks the 4×4 scenario with seeds at (0,0) and (3,3):
// every reported cell touches the other grain and every such cell is reported.
func TestFind_TwoCornerOrigins(t *testing.T) {
	l, err := lattice.GenerateFromOrigins(4, coords{{Row: 0, Col: 0}, {Row: 3, Col: 3}}, lattice.SquareBasis(), lattice.WithSeed(9))
	require.NoError(t, err)

	got, err := boundary.FindLattice(l, boundary.VonNeumann)
	require.NoError(t, err)
	require.Equal(t, bruteForce(l.Rows(), vonNeumannOffsets), got)
	require.NotEmpty(t, got)
	require.NotContains(t, got, lattice.Coord{Row: 0, Col: 0})
	require.NotContains(t, got, lattice.Coord{Row: 3, Col: 3})
}

// TestFind_Idempotent: two scans of the same lattice agree exactly.
func TestFind_Idempotent(t *testing.T) {
	l, err := lattice.Generate(20, 12, lattice.HexagonalBasis(), lattice.WithSeed(77))
	require.NoError(t, err)

	a, err := boundary.FindLattice(l, boundary.Hexagonal)
	require.NoError(t, err)
	b, err := boundary.FindLattice(l, boundary.Hexagonal)
	require.NoError(t, err)
	require.Equal(t, a, b)

	seen := make(map[lattice.Coord]bool, len(a))
	for i, c := range a {
		require.False(t, seen[c], "duplicate %v", c)
		seen[c] = true
		if i > 0 {
			prev := a[i-1]
			require.True(t, prev.Row < c.Row || (prev.Row == c.Row && prev.Col < c.Col), "order %v then %v", prev, c)
		}
	}
}

//----------------------------------------------------------------------------//
// Mask
//----------------------------------------------------------------------------//

// TestMask marks listed cells and validates bounds.
func TestMask(t *testing.T) {
	m, err := boundary.Mask(2, 3, coords{{Row: 0, Col: 2}, {Row: 1, Col: 0}})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0, 1}, {1, 0, 0}}, m)

	m, err = boundary.Mask(2, 2, nil)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, m)

	_, err = boundary.Mask(0, 2, nil)
	require.ErrorIs(t, err, boundary.ErrInvalidLattice)

	_, err = boundary.Mask(2, 2, coords{{Row: 2, Col: 0}})
	require.ErrorIs(t, err, boundary.ErrInvalidLattice)
}
