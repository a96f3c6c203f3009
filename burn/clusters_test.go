package burn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
)

func TestFindClusters(t *testing.T) {
	g := newGrid(t, 5, 5, 5)
	// an L-shaped cluster of 4
	g.Set(0, 0, 0, 3)
	g.Set(1, 0, 0, 3)
	g.Set(2, 0, 0, 3)
	g.Set(2, 1, 0, 3)
	// a vertical pair
	g.Set(4, 4, 3, 3)
	g.Set(4, 4, 4, 3)
	// x=4 does not wrap to x=0
	g.Set(4, 0, 0, 3)

	c, err := burn.FindClusters(g, single(3))
	require.NoError(t, err)
	assert.Equal(t, 7, c.Voxels)
	assert.Equal(t, []int{4, 2, 1}, c.Sizes)
	assert.Equal(t, 3, c.Count())
	assert.Equal(t, 4, c.Largest())
}

func TestFindClusters_CheckerboardAndEmpty(t *testing.T) {
	c, err := burn.FindClusters(checkerboard(t, 4, 1), single(1))
	require.NoError(t, err)
	assert.Equal(t, 32, c.Count())
	assert.Equal(t, 1, c.Largest())

	none, err := burn.FindClusters(newGrid(t, 2, 2, 2), single(9))
	require.NoError(t, err)
	assert.Zero(t, none.Count())
	assert.Zero(t, none.Largest())

	_, err = burn.FindClusters(nil, single(1))
	require.ErrorIs(t, err, burn.ErrGridNil)
}

// TestFindClusters_Aliases: alias voxels are counted and the sizes add up.
func TestFindClusters_Aliases(t *testing.T) {
	g := randomGrid(t, 7, 12, 12, 12, 0, 1, 55)
	por := phase.DefaultTable().Resolve(phase.Porosity)

	c, err := burn.FindClusters(g, por)
	require.NoError(t, err)
	assert.Equal(t, g.Count(por.Mask()), c.Voxels)
	sum := 0
	for _, s := range c.Sizes {
		sum += s
	}
	assert.Equal(t, c.Voxels, sum)
}
