package render

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Henry-P-Ding/grain-growth-simulation/boundary"
	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

// intGrid adapts a [][]int to plotter.GridXYZ. Column c is X, row r is Y.
type intGrid [][]int

func (g intGrid) Dims() (c, r int)   { return len(g[0]), len(g) }
func (g intGrid) Z(c, r int) float64 { return float64(g[r][c]) }
func (g intGrid) X(c int) float64    { return float64(c) }
func (g intGrid) Y(r int) float64    { return float64(r) }

// LatticePlot renders l as a categorical heatmap, one color per grain-id.
func LatticePlot(l *lattice.Lattice) (*plot.Plot, error) {
	if l == nil {
		return nil, fmt.Errorf("LatticePlot: %w", ErrNilLattice)
	}
	n := l.Grains()
	pal := grainPalette(n)

	h := plotter.NewHeatMap(intGrid(l.Rows()), pal)
	h.Min, h.Max = 0, float64(len(pal)-1)
	h.Underflow = color.Black // Unassigned or negative ids from FromRows

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d×%d lattice, %d grains", l.Size, l.Size, n)
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.Add(h)

	return p, nil
}

// BoundaryPlot renders the boundary sites of a rows×cols grid as a two-color mask.
func BoundaryPlot(rows, cols int, sites []lattice.Coord) (*plot.Plot, error) {
	mask, err := boundary.Mask(rows, cols, sites)
	if err != nil {
		return nil, fmt.Errorf("BoundaryPlot: %w", err)
	}

	h := plotter.NewHeatMap(intGrid(mask), maskPalette)
	h.Min, h.Max = 0, 1

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d boundary sites", len(sites))
	p.X.Label.Text = "col"
	p.Y.Label.Text = "row"
	p.Add(h)

	return p, nil
}

// Save writes p to path; the extension (.png, .svg, .pdf, ...) picks the format.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if err := p.Save(width, height, filepath.Clean(path)); err != nil {
		return fmt.Errorf("failed to save plot %s: %w", path, err)
	}
	return nil
}
