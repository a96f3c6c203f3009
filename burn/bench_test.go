package burn_test

import (
	"testing"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/voxel"
)

// BenchmarkProbe measures one axis probe on a 100³ grid with roughly 40%
// porosity, close to the percolation threshold where components are large.
// Complexity: O(V).
func BenchmarkProbe(b *testing.B) {
	g := randomGrid(b, 7, 100, 100, 100, 0, 0, 1, 1, 1)
	grp := single(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := burn.Probe(g, voxel.X, grp); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkProbeAxes measures the three-axis sweep on the same grid.
func BenchmarkProbeAxes(b *testing.B) {
	g := randomGrid(b, 7, 100, 100, 100, 0, 0, 1, 1, 1)
	grp := single(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := burn.ProbeAxes(g, grp); err != nil {
			b.Fatal(err)
		}
	}
}
