// Command voronoi generates a random Voronoi grain lattice, finds its grain
// boundaries, logs microstructure statistics and optionally renders images.
//
//	voronoi -size 100 -grains 50 -basis hexagonal -neighborhood hexagonal -raster out.png
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot/vg"

	"github.com/Henry-P-Ding/grain-growth-simulation/analysis"
	"github.com/Henry-P-Ding/grain-growth-simulation/boundary"
	"github.com/Henry-P-Ding/grain-growth-simulation/config"
	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
	"github.com/Henry-P-Ding/grain-growth-simulation/render"
)

var (
	configPath   = flag.String("config", "", "Path to a JSON config file (optional)")
	size         = flag.Int("size", 0, "Lattice side length")
	grains       = flag.Int("grains", 0, "Number of grains")
	seed         = flag.Int64("seed", 0, "Random seed")
	basis        = flag.String("basis", "", "Basis: square, hexagonal or custom")
	neighborhood = flag.String("neighborhood", "", "Neighborhood: von-neumann, moore or hexagonal")
	heatmapPath  = flag.String("heatmap", "", "Write the lattice heatmap to this file (.png, .svg, .pdf)")
	boundaryPath = flag.String("boundary", "", "Write the boundary mask heatmap to this file")
	rasterPath   = flag.String("raster", "", "Write a pixel raster PNG to this file")
	cellPixels   = flag.Int("cell", 0, "Raster pixels per site")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	applyFlags(cfg)

	if err := run(cfg); err != nil {
		log.Fatalf("voronoi: %v", err)
	}
}

// applyFlags overrides cfg with every flag given on the command line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "grains":
			cfg.Grains = *grains
		case "seed":
			cfg.Seed = *seed
		case "basis":
			cfg.Basis = *basis
		case "neighborhood":
			cfg.Neighborhood = *neighborhood
		case "heatmap":
			cfg.HeatmapPath = *heatmapPath
		case "boundary":
			cfg.BoundaryPath = *boundaryPath
		case "raster":
			cfg.RasterPath = *rasterPath
		case "cell":
			cfg.CellPixels = *cellPixels
		}
	})
}

// run executes one generate → detect → summarize → render pass.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	b, err := cfg.BasisMatrix()
	if err != nil {
		return err
	}
	nf, err := cfg.Neighbors()
	if err != nil {
		return err
	}

	l, err := lattice.Generate(cfg.Size, cfg.Grains, b, lattice.WithSeed(cfg.Seed))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if lattice.IsSingular(b) {
		log.Printf("warning: basis %q is singular, distances are degenerate", cfg.Basis)
	}
	log.Printf("generated %dx%d lattice with %d grains (basis=%s seed=%d)",
		cfg.Size, cfg.Size, cfg.Grains, cfg.Basis, cfg.Seed)

	sites, err := boundary.FindLattice(l, nf)
	if err != nil {
		return fmt.Errorf("find boundaries: %w", err)
	}

	s, err := analysis.Summarize(l, sites, nf)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	log.Printf("boundary sites=%d (%.1f%%) fragments=%d mean area=%.1f±%.1f [%.0f, %.0f]",
		s.BoundarySites, 100*s.BoundaryFraction, s.Fragments, s.MeanArea, s.StdArea, s.MinArea, s.MaxArea)

	if cfg.HeatmapPath != "" {
		p, err := render.LatticePlot(l)
		if err != nil {
			return err
		}
		if err := render.Save(p, cfg.HeatmapPath, 6*vg.Inch, 6*vg.Inch); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.HeatmapPath)
	}
	if cfg.BoundaryPath != "" {
		p, err := render.BoundaryPlot(l.Size, l.Size, sites)
		if err != nil {
			return err
		}
		if err := render.Save(p, cfg.BoundaryPath, 6*vg.Inch, 6*vg.Inch); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.BoundaryPath)
	}
	if cfg.RasterPath != "" {
		opts := render.DefaultRasterOptions()
		opts.CellPixels = cfg.CellPixels
		opts.Caption = fmt.Sprintf("%d grains, seed %d", cfg.Grains, cfg.Seed)
		img, err := render.Raster(l, sites, opts)
		if err != nil {
			return err
		}
		if err := render.SavePNG(img, cfg.RasterPath); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.RasterPath)
	}

	return nil
}
