// Package render draws lattices and boundary sets as images.
//
// Two backends:
//
//   - LatticePlot / BoundaryPlot build gonum/plot heatmaps with axes, saved
//     as PNG, SVG or PDF by Save (format follows the file extension).
//   - Raster paints one square per site with fogleman/gg and overdraws the
//     boundary sites, for quick previews and frame dumps.
//
// Grain-ids map to hues spaced by the golden angle, so adjacent ids get
// well-separated colors regardless of how many grains there are.
package render
