package analysis

import (
	"fmt"

	"github.com/Henry-P-Ding/grain-growth-simulation/boundary"
	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

// Grain is one connected fragment of a grain-id.
type Grain struct {
	ID    int
	Sites []lattice.Coord // BFS order from the first site in row-major scan
}

// Grains finds all connected regions of equal grain-id, according to nf.
// Neighbors outside the lattice are skipped, not clamped.
// Fragments are returned in the row-major order of their first site; every
// site belongs to exactly one fragment.
//
// Time:   O(S²·k), where k = len(nf(c)).
// Memory: O(S²) for visited flags and output.
func Grains(l *lattice.Lattice, nf boundary.NeighborFunc) ([]Grain, error) {
	if l == nil {
		return nil, fmt.Errorf("Grains: %w", ErrNilLattice)
	}
	if nf == nil {
		return nil, fmt.Errorf("Grains: %w", ErrNilNeighborFunc)
	}

	total := l.Size * l.Size
	seen := make([]bool, total)
	var grains []Grain

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		start := l.Coordinate(i0)
		id := l.At(start)

		// BFS to collect the fragment
		queue := []int{i0}
		seen[i0] = true
		g := Grain{ID: id}

		for qi := 0; qi < len(queue); qi++ {
			u := l.Coordinate(queue[qi])
			g.Sites = append(g.Sites, u)
			for _, v := range nf(u) {
				if !l.InBounds(v) || l.At(v) != id {
					continue
				}
				vi := l.Index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		grains = append(grains, g)
	}

	return grains, nil
}
