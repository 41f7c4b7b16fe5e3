package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Henry-P-Ding/grain-growth-simulation/boundary"
	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

// Summary describes a lattice's microstructure.
type Summary struct {
	Sites     int         // Size²
	Grains    int         // distinct grain-ids present
	Fragments int         // connected regions; ≥ Grains
	Areas     map[int]int // sites per grain-id

	// Area statistics over grain-ids. StdArea is the sample standard
	// deviation, 0 for a single grain.
	MeanArea, StdArea, MinArea, MaxArea float64

	BoundarySites    int
	BoundaryFraction float64 // BoundarySites / Sites
}

// Summarize computes a Summary for l. boundaries is the output of
// boundary.Find for the same lattice; nf defines fragment connectivity.
func Summarize(l *lattice.Lattice, boundaries []lattice.Coord, nf boundary.NeighborFunc) (Summary, error) {
	frags, err := Grains(l, nf)
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	for _, c := range boundaries {
		if !l.InBounds(c) {
			return Summary{}, fmt.Errorf("Summarize: %v outside %dx%d: %w", c, l.Size, l.Size, ErrInvalidBoundary)
		}
	}

	s := Summary{
		Sites:         l.Size * l.Size,
		Fragments:     len(frags),
		Areas:         make(map[int]int),
		BoundarySites: len(boundaries),
	}
	for _, g := range frags {
		s.Areas[g.ID] += len(g.Sites)
	}
	s.Grains = len(s.Areas)
	s.BoundaryFraction = float64(s.BoundarySites) / float64(s.Sites)

	ids := make([]int, 0, len(s.Areas))
	for id := range s.Areas {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	areas := make([]float64, len(ids))
	for i, id := range ids {
		areas[i] = float64(s.Areas[id])
	}

	s.MinArea = floats.Min(areas)
	s.MaxArea = floats.Max(areas)
	if len(areas) == 1 {
		s.MeanArea = areas[0]
	} else {
		s.MeanArea, s.StdArea = stat.MeanStdDev(areas, nil)
	}

	return s, nil
}
