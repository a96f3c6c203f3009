// File: burn/example_test.go
package burn_test

import (
	"fmt"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// ExampleProbe burns the pore space of a small grid with one straight pore
// channel along x and one dead-end pocket on the x=0 face.
//
//	channel: y=1, z=1, x=0..3  (spans the grid along x)
//	pocket:  y=3, z=3, x=0..1  (stops halfway)
//
// Everything else is C3S.
func ExampleProbe() {
	g, _ := voxel.New(voxel.Dims{X: 4, Y: 4, Z: 4})
	g.Fill(phase.C3S)
	for x := 0; x < 4; x++ {
		g.Set(x, 1, 1, phase.Porosity)
	}
	g.Set(0, 3, 3, phase.Porosity)
	g.Set(1, 3, 3, phase.EmptyPorosity)

	pores := phase.DefaultTable().Resolve(phase.Porosity)
	r, _ := burn.Probe(g, voxel.X, pores)
	fmt.Printf("total=%d connected=%d percolated=%d components=%d\n",
		r.TotalVoxels, r.ConnectedVoxels, r.PercolatedVoxels, r.Components)

	// Output:
	// total=6 connected=6 percolated=4 components=2
}
