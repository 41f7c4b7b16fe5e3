// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const (
	methodGenerate            = "Generate"
	methodGenerateFromOrigins = "GenerateFromOrigins"
)

// Generate builds a size×size Voronoi lattice with nGrains grains.
//
// Origins are drawn without replacement from all size² sites (partial
// Fisher–Yates), so the draw always terminates and every subset is equally
// likely. Origin k labels its own cell k. Every other cell takes the id of the
// origin minimizing ‖basis·(origin − cell)‖²; exact ties are broken uniformly at
// random among the tied ids.
//
// Errors: ErrInvalidSize, ErrInvalidGrainCount, ErrInvalidBasis, ErrNeedRandSource.
// Complexity: O(size²·nGrains) time, O(size²) memory.
func Generate(size, nGrains int, basis mat.Matrix, opts ...Option) (*Lattice, error) {
	cfg := newGenConfig(opts...)
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", methodGenerate, size, ErrInvalidSize)
	}
	if nGrains <= 0 || nGrains > size*size {
		return nil, fmt.Errorf("%s: nGrains=%d, want 1..%d: %w",
			methodGenerate, nGrains, size*size, ErrInvalidGrainCount)
	}
	if err := validateBasis(methodGenerate, basis); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	l := newLattice(size, basis)
	for k, idx := range sampleDistinct(cfg.rng, size*size, nGrains) {
		o := l.Coordinate(idx)
		l.origins = append(l.origins, o)
		l.cells[idx] = k
	}
	fill(l, cfg.rng)

	return l, nil
}

// GenerateFromOrigins runs the nearest-origin fill over caller-chosen origins.
// Origin k seeds grain k. The random source is still required for tie-breaks.
//
// Errors: ErrInvalidSize, ErrInvalidGrainCount (empty or more than size²),
// ErrInvalidOrigin (out of range or repeated), ErrInvalidBasis, ErrNeedRandSource.
// Complexity: O(size²·len(origins)) time, O(size²) memory.
func GenerateFromOrigins(size int, origins []Coord, basis mat.Matrix, opts ...Option) (*Lattice, error) {
	cfg := newGenConfig(opts...)
	if size <= 0 {
		return nil, fmt.Errorf("%s: size=%d: %w", methodGenerateFromOrigins, size, ErrInvalidSize)
	}
	if len(origins) == 0 || len(origins) > size*size {
		return nil, fmt.Errorf("%s: %d origins, want 1..%d: %w",
			methodGenerateFromOrigins, len(origins), size*size, ErrInvalidGrainCount)
	}
	if err := validateBasis(methodGenerateFromOrigins, basis); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerateFromOrigins, ErrNeedRandSource)
	}

	l := newLattice(size, basis)
	for k, o := range origins {
		if !l.InBounds(o) {
			return nil, fmt.Errorf("%s: origin %d at %v outside %dx%d: %w",
				methodGenerateFromOrigins, k, o, size, size, ErrInvalidOrigin)
		}
		idx := l.Index(o)
		if l.cells[idx] != Unassigned {
			return nil, fmt.Errorf("%s: origin %d at %v repeats origin %d: %w",
				methodGenerateFromOrigins, k, o, l.cells[idx], ErrInvalidOrigin)
		}
		l.cells[idx] = k
		l.origins = append(l.origins, o)
	}
	fill(l, cfg.rng)

	return l, nil
}

// sampleDistinct returns k distinct indices from [0, n) in draw order.
// Requires 0 < k ≤ n.
func sampleDistinct(rng *rand.Rand, n, k int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k]
}

// fill assigns every Unassigned cell to its nearest origin, scanning row-major.
func fill(l *Lattice, rng *rand.Rand) {
	m := newMetric(l.basis)
	ties := make([]int, 0, len(l.origins))

	for idx, id := range l.cells {
		if id != Unassigned {
			continue
		}
		cell := l.Coordinate(idx)

		ties = ties[:0]
		best := 0.0
		for k, o := range l.origins {
			d := m.squared(cell, o)
			switch {
			case len(ties) == 0 || d < best:
				best = d
				ties = append(ties[:0], k)
			case d == best:
				ties = append(ties, k)
			}
		}

		if len(ties) == 1 {
			l.cells[idx] = ties[0]
		} else {
			l.cells[idx] = ties[rng.Intn(len(ties))]
		}
	}
}
