// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrInvalidSize indicates a non-positive grid extent or a grid that is not square.
	ErrInvalidSize = errors.New("lattice: size must be positive and the grid square")
	// ErrInvalidGrainCount indicates nGrains outside (0, size²].
	ErrInvalidGrainCount = errors.New("lattice: grain count out of range")
	// ErrInvalidBasis indicates a basis that is nil, not 2×2, or not finite.
	ErrInvalidBasis = errors.New("lattice: basis must be a finite 2x2 matrix")
	// ErrInvalidOrigin indicates an origin outside the grid or a duplicated origin.
	ErrInvalidOrigin = errors.New("lattice: invalid origin")
	// ErrNeedRandSource indicates a stochastic operation was called without a *rand.Rand.
	ErrNeedRandSource = errors.New("lattice: rng is required")
)
