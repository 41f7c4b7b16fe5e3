package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

// RasterOptions controls Raster output.
type RasterOptions struct {
	CellPixels    int         // side of one site in pixels, ≥ 1
	BoundaryColor color.Color // nil means black
	Caption       string      // drawn bottom-left when non-empty
}

// DefaultRasterOptions returns 8-pixel cells, black boundaries, no caption.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{CellPixels: 8, BoundaryColor: color.Black}
}

// Raster paints l one square per site and overdraws boundaries. The image is
// Size·CellPixels pixels square with row 0 at the top.
func Raster(l *lattice.Lattice, boundaries []lattice.Coord, opts RasterOptions) (image.Image, error) {
	if l == nil {
		return nil, fmt.Errorf("Raster: %w", ErrNilLattice)
	}
	if opts.CellPixels < 1 {
		return nil, fmt.Errorf("Raster: cell=%d: %w", opts.CellPixels, ErrCellSize)
	}
	if opts.BoundaryColor == nil {
		opts.BoundaryColor = color.Black
	}

	cell := float64(opts.CellPixels)
	side := l.Size * opts.CellPixels
	ctx := gg.NewContext(side, side)
	pal := grainPalette(l.Grains())

	for r, row := range l.Rows() {
		for c, id := range row {
			ctx.SetColor(grainColor(pal, id))
			ctx.DrawRectangle(float64(c)*cell, float64(r)*cell, cell, cell)
			ctx.Fill()
		}
	}

	ctx.SetColor(opts.BoundaryColor)
	for _, b := range boundaries {
		if !l.InBounds(b) {
			continue
		}
		ctx.DrawRectangle(float64(b.Col)*cell, float64(b.Row)*cell, cell, cell)
	}
	ctx.Fill()

	if opts.Caption != "" {
		ctx.SetFontFace(basicfont.Face7x13)
		ctx.SetColor(color.White)
		ctx.DrawString(opts.Caption, 4, float64(side)-4)
	}

	return ctx.Image(), nil
}

// SavePNG writes img to path as PNG.
func SavePNG(img image.Image, path string) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save png %s: %w", path, err)
	}
	return nil
}
