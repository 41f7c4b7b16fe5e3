// Package grains generates 2D polycrystalline microstructures on a discrete
// lattice, the initial condition of a Q-state Potts grain-growth simulation.
//
// What is in here?
//
//	lattice/   - random Voronoi tessellation of a square index grid under any
//	             2×2 basis (square, hexagonal, sheared), uniform tie-breaks
//	boundary/  - grain-boundary sites via an injected neighbor function with
//	             edge clamping; von Neumann, Moore, hexagonal and custom stencils
//	analysis/  - grain fragments (connected components) and area statistics
//	render/    - categorical heatmaps (gonum/plot) and pixel rasters (gg)
//	config/    - JSON run configuration
//	cmd/voronoi - command-line front end
//
// Pipeline:
//
//	lattice.Generate ──► boundary.FindLattice ──► analysis.Summarize
//	        │                     │
//	        └──────────► render ◄─┘
//
// Randomness never comes from a global: pass lattice.WithSeed or
// lattice.WithRand, and the same seed reproduces the same lattice.
//
//	go get github.com/Henry-P-Ding/grain-growth-simulation
package grains
