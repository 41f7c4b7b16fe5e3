// Package config loads the run parameters of a lattice generation: grid
// size, grain count, basis and neighborhood, seed and output paths.
//
// Values come from a JSON file decoded over Default(), so a partial file only
// overrides the fields it names.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/Henry-P-Ding/grain-growth-simulation/boundary"
	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

// ErrInvalidConfig indicates a value outside its allowed range or set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Basis names.
const (
	BasisSquare    = "square"
	BasisHexagonal = "hexagonal"
	BasisCustom    = "custom"
)

// Neighborhood names.
const (
	NeighborhoodVonNeumann = "von-neumann"
	NeighborhoodMoore      = "moore"
	NeighborhoodHexagonal  = "hexagonal"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config is the root configuration.
type Config struct {
	Size         int         `json:"size"`
	Grains       int         `json:"grains"`
	Basis        string      `json:"basis"`
	Matrix       *[4]float64 `json:"matrix,omitempty"` // row-major, required for "custom"
	Neighborhood string      `json:"neighborhood"`
	Seed         int64       `json:"seed"`

	// Outputs; empty paths are skipped.
	HeatmapPath  string `json:"heatmap_path,omitempty"`
	BoundaryPath string `json:"boundary_path,omitempty"`
	RasterPath   string `json:"raster_path,omitempty"`
	CellPixels   int    `json:"cell_pixels"`
}

// Default returns the reference scenario: 50 grains on a 100×100 square
// lattice with von Neumann boundaries.
func Default() *Config {
	return &Config{
		Size:         100,
		Grains:       50,
		Basis:        BasisSquare,
		Neighborhood: NeighborhoodVonNeumann,
		Seed:         1,
		CellPixels:   4,
	}
}

// Load reads a JSON config from path over Default(). The path must have a
// .json extension and the file must not exceed 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and names.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size=%d must be positive: %w", c.Size, ErrInvalidConfig)
	}
	if c.Grains <= 0 || c.Grains > c.Size*c.Size {
		return fmt.Errorf("grains=%d must be in 1..%d: %w", c.Grains, c.Size*c.Size, ErrInvalidConfig)
	}
	if _, err := c.BasisMatrix(); err != nil {
		return err
	}
	if _, err := c.Neighbors(); err != nil {
		return err
	}
	if c.CellPixels < 1 {
		return fmt.Errorf("cell_pixels=%d must be ≥ 1: %w", c.CellPixels, ErrInvalidConfig)
	}
	return nil
}

// BasisMatrix resolves Basis (and Matrix for "custom") into a 2×2 matrix.
func (c *Config) BasisMatrix() (*mat.Dense, error) {
	switch c.Basis {
	case BasisSquare:
		return lattice.SquareBasis(), nil
	case BasisHexagonal:
		return lattice.HexagonalBasis(), nil
	case BasisCustom:
		if c.Matrix == nil {
			return nil, fmt.Errorf("basis %q needs matrix: %w", c.Basis, ErrInvalidConfig)
		}
		m := *c.Matrix
		return mat.NewDense(2, 2, m[:]), nil
	default:
		return nil, fmt.Errorf("unknown basis %q: %w", c.Basis, ErrInvalidConfig)
	}
}

// Neighbors resolves Neighborhood into a neighbor function.
func (c *Config) Neighbors() (boundary.NeighborFunc, error) {
	switch c.Neighborhood {
	case NeighborhoodVonNeumann:
		return boundary.VonNeumann, nil
	case NeighborhoodMoore:
		return boundary.Moore, nil
	case NeighborhoodHexagonal:
		return boundary.Hexagonal, nil
	default:
		return nil, fmt.Errorf("unknown neighborhood %q: %w", c.Neighborhood, ErrInvalidConfig)
	}
}
