// Package analysis measures the microstructure held in a lattice.
//
// What:
//
//   - Grains splits the lattice into connected regions of equal grain-id
//     (“fragments”) under a caller-chosen neighborhood.
//   - Summarize reports grain and fragment counts, grain areas and the
//     fraction of sites on a boundary.
//
// Why:
//
//   - Sanity-check an initial condition before a growth run: under a skewed
//     basis one Voronoi cell can break into several lattice fragments.
//   - Track mean grain area, the usual order parameter of grain coarsening.
//
// Complexity:
//
//   - Grains:    O(S²·k), Memory: O(S²)   (k = neighbor fan-out).
//   - Summarize: O(S²·k + B), Memory: O(S² + G) (B = boundary sites, G = grains).
//
// Errors:
//
//   - ErrNilLattice: a nil *lattice.Lattice was passed.
//   - ErrNilNeighborFunc: a nil neighbor function was passed.
//   - ErrInvalidBoundary: Summarize got a boundary site outside the lattice.
package analysis
