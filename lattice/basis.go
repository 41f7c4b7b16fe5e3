// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SquareBasis returns the 2×2 identity: plain Euclidean distance on the index grid.
func SquareBasis() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})
}

// HexagonalBasis maps axial (row, col) displacements onto a triangular lattice
// with unit spacing, so the six sites at distance 1 are the hexagonal neighbors
// (±1,0), (0,±1), (1,-1) and (-1,1).
func HexagonalBasis() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0.5,
		0, math.Sqrt(3) / 2,
	})
}

// IsSingular reports whether basis collapses some non-zero displacement to zero.
func IsSingular(basis mat.Matrix) bool {
	return mat.Det(basis) == 0
}

// validateBasis enforces a non-nil, finite 2×2 basis.
func validateBasis(method string, basis mat.Matrix) error {
	if basis == nil {
		return fmt.Errorf("%s: nil basis: %w", method, ErrInvalidBasis)
	}
	r, c := basis.Dims()
	if r != 2 || c != 2 {
		return fmt.Errorf("%s: basis is %dx%d: %w", method, r, c, ErrInvalidBasis)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := basis.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: basis[%d][%d]=%v: %w", method, i, j, v, ErrInvalidBasis)
			}
		}
	}

	return nil
}

// metric computes squared transformed distances with reusable scratch vectors.
// Not safe for concurrent use.
type metric struct {
	basis mat.Matrix
	disp  *mat.VecDense
	phys  *mat.VecDense
}

func newMetric(basis mat.Matrix) *metric {
	return &metric{
		basis: basis,
		disp:  mat.NewVecDense(2, nil),
		phys:  mat.NewVecDense(2, nil),
	}
}

// squared returns ‖basis·(to − from)‖².
func (m *metric) squared(from, to Coord) float64 {
	m.disp.SetVec(0, float64(to.Row-from.Row))
	m.disp.SetVec(1, float64(to.Col-from.Col))
	m.phys.MulVec(m.basis, m.disp)

	return mat.Dot(m.phys, m.phys)
}

// SquaredDistance returns the squared Euclidean norm of basis·(b − a), the metric
// Generate uses to pick the nearest origin.
func SquaredDistance(basis mat.Matrix, a, b Coord) float64 {
	return newMetric(basis).squared(a, b)
}
