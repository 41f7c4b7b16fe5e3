// SPDX-License-Identifier: MIT

// Package boundary finds grain-boundary sites in a labeled lattice.
//
// What:
//
//   - Find scans a rectangular [][]int grid row-major and reports every cell
//     with at least one differently labeled neighbor.
//   - Neighbors come from an injected NeighborFunc, so the same scan serves
//     square (VonNeumann, Moore), hexagonal (Hexagonal) or custom (Offsets)
//     topologies.
//   - Candidate neighbors are clamped into the grid per axis, never wrapped:
//     an edge cell simply "neighbors" itself on the outside.
//   - Mask turns a boundary list into a 0/1 grid for visualization.
//
// Complexity:
//
//   - Find: O(W·H·k) time, O(k) extra memory (k = neighbor fan-out).
//   - Mask: O(W·H + B) time and memory (B = boundary sites).
//
// Errors:
//
//   - ErrInvalidLattice: empty or ragged grid, a cell still holding
//     lattice.Unassigned, or a mask coordinate outside the grid.
//   - ErrNilNeighborFunc: Find was given a nil NeighborFunc.
package boundary
