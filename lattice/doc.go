// SPDX-License-Identifier: MIT

// Package lattice builds random Voronoi grain lattices on a square index grid.
//
// What:
//
//   - Lattice is a Size×Size grid of grain-ids stored row-major.
//   - Generate picks nGrains distinct origin sites uniformly at random and assigns
//     every other site to its nearest origin.
//   - Distance is Euclidean after a 2×2 basis transform, so non-square geometries
//     (hexagonal, sheared) are modeled on the same index grid.
//   - Equidistant origins are resolved uniformly at random, not first-match.
//
// Why:
//
//   - Initial condition for Q-state Potts grain-growth simulations.
//   - Synthetic polycrystal textures for boundary and grain-size studies.
//
// Complexity:
//
//   - Generate:            O(S²·N) time, O(S² + N) memory  (S = size, N = grains).
//   - GenerateFromOrigins: O(S²·N) time, O(S²) memory.
//
// Randomness:
//
//   - No package-level RNG. Callers pass a *rand.Rand through WithRand or WithSeed;
//     stochastic entry points return ErrNeedRandSource otherwise.
//
// Errors:
//
//   - ErrInvalidSize: size ≤ 0, or a non-square/ragged grid in FromRows.
//   - ErrInvalidGrainCount: nGrains ≤ 0 or nGrains > size².
//   - ErrInvalidBasis: nil basis, shape other than 2×2, or a NaN/Inf entry.
//   - ErrInvalidOrigin: an origin outside the grid or a repeated origin.
//   - ErrNeedRandSource: no random source supplied.
//
// A singular basis is accepted. Distances then collapse along its null space and
// the tie-break decides between the collapsed origins.
package lattice
