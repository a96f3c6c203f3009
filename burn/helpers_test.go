package burn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// newGrid allocates a zeroed grid or fails the test.
func newGrid(t testing.TB, x, y, z int) *voxel.Grid {
	t.Helper()
	g, err := voxel.New(voxel.Dims{X: x, Y: y, Z: z})
	require.NoError(t, err)

	return g
}

// checkerboard sets id on every voxel with even x+y+z.
func checkerboard(t testing.TB, n int, id phase.ID) *voxel.Grid {
	t.Helper()
	g := newGrid(t, n, n, n)
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				if (x+y+z)%2 == 0 {
					g.Set(x, y, z, id)
				}
			}
		}
	}

	return g
}

// randomGrid draws each voxel from ids with a fixed seed.
func randomGrid(t testing.TB, seed int64, x, y, z int, ids ...phase.ID) *voxel.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := newGrid(t, x, y, z)
	for i := 0; i < g.Len(); i++ {
		cx, cy, cz := g.Coord(i)
		g.Set(cx, cy, cz, ids[rng.Intn(len(ids))])
	}

	return g
}

func single(id phase.ID) phase.Group {
	return phase.Group{ID: id}
}
