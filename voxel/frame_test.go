package voxel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/voxel"
)

// TestFrame_Bijection walks every canonical coordinate of every axis frame and
// checks the forward and inverse maps agree with each other and with Index.
func TestFrame_Bijection(t *testing.T) {
	d := voxel.Dims{X: 2, Y: 3, Z: 5}
	g, err := voxel.New(d)
	require.NoError(t, err)

	for _, a := range voxel.Axes() {
		f := voxel.NewFrame(d, a)
		require.Equal(t, a, f.Axis())
		depth, l1, l2 := f.Sizes()
		require.Equal(t, d.Volume(), depth*l1*l2)
		require.Equal(t, d.Size(a), depth)

		seen := make(map[int]bool, d.Volume())
		for dd := 0; dd < depth; dd++ {
			for aa := 0; aa < l1; aa++ {
				for bb := 0; bb < l2; bb++ {
					x, y, z := f.ToGrid(dd, aa, bb)
					require.True(t, g.InBounds(x, y, z), "axis %s (%d,%d,%d)", a, dd, aa, bb)
					i := g.Index(x, y, z)
					require.Equal(t, i, f.Index(dd, aa, bb))
					require.False(t, seen[i], "axis %s maps two points to %d", a, i)
					seen[i] = true

					d2, a2, b2 := f.FromGrid(x, y, z)
					require.Equal(t, [3]int{dd, aa, bb}, [3]int{d2, a2, b2})
				}
			}
		}
		require.Len(t, seen, d.Volume())
	}
}
