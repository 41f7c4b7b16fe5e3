package lattice_test

import (
	"testing"

	"github.com/Henry-P-Ding/grain-growth-simulation/lattice"
)

// BenchmarkGenerate measures a 60×60 hexagonal lattice with 40 grains.
// Complexity: O(S²·N)
func BenchmarkGenerate(b *testing.B) {
	basis := lattice.HexagonalBasis()
	for i := 0; i < b.N; i++ {
		if _, err := lattice.Generate(60, 40, basis, lattice.WithSeed(int64(i))); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}
