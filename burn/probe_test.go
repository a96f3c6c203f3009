package burn_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// ProbeSuite covers the percolation scenarios on small hand-built grids.
type ProbeSuite struct {
	suite.Suite
}

// TestFullCube: a 4×4×4 grid of phase 1 is one component that percolates
// along every axis.
func (s *ProbeSuite) TestFullCube() {
	g := newGrid(s.T(), 4, 4, 4)
	g.Fill(1)

	res, err := burn.ProbeAxes(g, single(1))
	require.NoError(s.T(), err)
	for _, a := range voxel.Axes() {
		r := res[a]
		require.Equal(s.T(), a, r.Axis)
		require.Equal(s.T(), 64, r.TotalVoxels, "axis %s", a)
		require.Equal(s.T(), 64, r.ConnectedVoxels, "axis %s", a)
		require.Equal(s.T(), 64, r.PercolatedVoxels, "axis %s", a)
		require.Equal(s.T(), 1, r.Components)
		require.Equal(s.T(), 1, r.PercolatingComponents)
	}
}

// TestCheckerboard: no two members are face neighbours, so every face voxel
// is a singleton component and nothing percolates.
func (s *ProbeSuite) TestCheckerboard() {
	g := checkerboard(s.T(), 4, 1)

	res, err := burn.ProbeAxes(g, single(1))
	require.NoError(s.T(), err)
	for _, a := range voxel.Axes() {
		r := res[a]
		require.Equal(s.T(), 32, r.TotalVoxels, "axis %s", a)
		require.Equal(s.T(), 8, r.ConnectedVoxels, "axis %s: half of the 16 face voxels", a)
		require.Equal(s.T(), 8, r.Components, "axis %s: all singletons", a)
		require.Equal(s.T(), 0, r.PercolatedVoxels, "axis %s", a)
	}
}

// TestEmptyPhase reports zeros when the group is absent.
func (s *ProbeSuite) TestEmptyPhase() {
	g := newGrid(s.T(), 3, 3, 3)

	res, err := burn.ProbeAxes(g, single(7))
	require.NoError(s.T(), err)
	for _, a := range voxel.Axes() {
		require.Equal(s.T(), burn.Result{Axis: a}, res[a])
	}
}

// TestSlab: a one-voxel-thick plane y=0 spans the X and Z depth ranges but
// not the Y range.
func (s *ProbeSuite) TestSlab() {
	g := newGrid(s.T(), 4, 5, 6)
	for z := 0; z < 6; z++ {
		for x := 0; x < 4; x++ {
			g.Set(x, 0, z, 2)
		}
	}
	const area = 4 * 6

	res, err := burn.ProbeAxes(g, single(2))
	require.NoError(s.T(), err)
	for _, a := range []voxel.Axis{voxel.X, voxel.Z} {
		require.Equal(s.T(), area, res[a].TotalVoxels)
		require.Equal(s.T(), area, res[a].ConnectedVoxels)
		require.Equal(s.T(), area, res[a].PercolatedVoxels, "axis %s", a)
	}
	require.Equal(s.T(), area, res[voxel.Y].TotalVoxels)
	require.Equal(s.T(), area, res[voxel.Y].ConnectedVoxels, "the slab is the y=0 face")
	require.Equal(s.T(), 0, res[voxel.Y].PercolatedVoxels)
}

// TestRod: a straight line along z percolates only along z.
func (s *ProbeSuite) TestRod() {
	g := newGrid(s.T(), 4, 4, 6)
	for z := 0; z < 6; z++ {
		g.Set(1, 2, z, 3)
	}

	res, err := burn.ProbeAxes(g, single(3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), burn.Result{Axis: voxel.Z, TotalVoxels: 6, ConnectedVoxels: 6, PercolatedVoxels: 6,
		Components: 1, PercolatingComponents: 1}, res[voxel.Z])
	require.Equal(s.T(), 0, res[voxel.X].ConnectedVoxels)
	require.Equal(s.T(), 0, res[voxel.Y].ConnectedVoxels)
}

// TestLateralWrap: the path only connects through the periodic y boundary.
func (s *ProbeSuite) TestLateralWrap() {
	g := newGrid(s.T(), 4, 4, 4)
	for _, c := range [][3]int{{0, 0, 0}, {1, 0, 0}, {1, 3, 0}, {2, 3, 0}, {3, 3, 0}} {
		g.Set(c[0], c[1], c[2], 5)
	}

	r, err := burn.Probe(g, voxel.X, single(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, r.TotalVoxels)
	require.Equal(s.T(), 5, r.ConnectedVoxels)
	require.Equal(s.T(), 5, r.PercolatedVoxels)
}

// TestStaircase: the component leaves the face through column y=0 and
// reaches the far face through column y=1. Reaching depth-max anywhere
// counts; no same-column pairing is required.
func (s *ProbeSuite) TestStaircase() {
	g := newGrid(s.T(), 3, 3, 3)
	for _, c := range [][3]int{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}} {
		g.Set(c[0], c[1], c[2], 5)
	}
	require.NotEqual(s.T(), phase.ID(5), g.At(2, 0, 0), "entry column is empty at the far face")

	r, err := burn.Probe(g, voxel.X, single(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), burn.Result{Axis: voxel.X, TotalVoxels: 4, ConnectedVoxels: 4, PercolatedVoxels: 4,
		Components: 1, PercolatingComponents: 1}, r)

	// along Y the same voxels span only y=0..1 of three layers
	r, err = burn.Probe(g, voxel.Y, single(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, r.ConnectedVoxels)
	require.Equal(s.T(), 0, r.PercolatedVoxels)
}

// TestDepthDoesNotWrap: voxels on opposite x faces are not neighbours along x.
func (s *ProbeSuite) TestDepthDoesNotWrap() {
	g := newGrid(s.T(), 4, 4, 4)
	g.Set(0, 1, 1, 5)
	g.Set(3, 1, 1, 5)

	r, err := burn.Probe(g, voxel.X, single(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, r.TotalVoxels)
	require.Equal(s.T(), 1, r.ConnectedVoxels)
	require.Equal(s.T(), 0, r.PercolatedVoxels)
}

// TestAliases: alternating raw ids 14 and 20 form one C-S-H line.
func (s *ProbeSuite) TestAliases() {
	g := newGrid(s.T(), 4, 2, 2)
	for x := 0; x < 4; x++ {
		id := phase.CSH
		if x%2 == 1 {
			id = phase.PozzCSH
		}
		g.Set(x, 0, 0, id)
	}
	csh := phase.DefaultTable().Resolve(phase.CSH)

	r, err := burn.Probe(g, voxel.X, csh)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, r.TotalVoxels, "count(14) + count(20)")
	require.Equal(s.T(), 4, r.PercolatedVoxels)

	r, err = burn.Probe(g, voxel.X, single(phase.CSH))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, r.TotalVoxels)
	require.Equal(s.T(), 1, r.ConnectedVoxels)
	require.Equal(s.T(), 0, r.PercolatedVoxels)
}

// TestThinDepth: with a single layer along the probe axis every face
// component also touches the far face.
func (s *ProbeSuite) TestThinDepth() {
	g := newGrid(s.T(), 1, 3, 3)
	g.Set(0, 0, 0, 1)
	g.Set(0, 2, 2, 1)

	r, err := burn.Probe(g, voxel.X, single(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, r.PercolatedVoxels)
	// (0,0) and (2,2) differ in both lateral coordinates, so wrap alone
	// does not join them.
	require.Equal(s.T(), 2, r.Components)
}

func TestProbeSuite(t *testing.T) {
	suite.Run(t, new(ProbeSuite))
}

// TestProbe_Errors verifies invalid input and the frontier cap.
func TestProbe_Errors(t *testing.T) {
	_, err := burn.Probe(nil, voxel.X, single(1))
	assert.True(t, errors.Is(err, burn.ErrGridNil))

	g := newGrid(t, 4, 4, 4)
	g.Fill(1)
	_, err = burn.Probe(g, voxel.Axis(9), single(1))
	assert.True(t, errors.Is(err, voxel.ErrUnknownAxis))

	_, err = burn.Probe(g, voxel.X, single(1), burn.WithFrontierLimit(-1))
	assert.True(t, errors.Is(err, burn.ErrOptionViolation))

	res, err := burn.Probe(g, voxel.X, single(1), burn.WithFrontierLimit(1))
	assert.True(t, errors.Is(err, burn.ErrFloodAllocation))
	assert.Equal(t, burn.Result{}, res, "no partial result")

	res, err = burn.Probe(g, voxel.X, single(1), burn.WithFrontierLimit(64))
	require.NoError(t, err)
	assert.Equal(t, 64, res.PercolatedVoxels)
}

// TestProbe_Invariants checks P ≤ C ≤ T, idempotence and lateral shift
// invariance on pseudo-random two-phase grids.
func TestProbe_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g := randomGrid(t, seed, 7, 6, 5, 0, 0, 1)
		grp := single(0)

		res, err := burn.ProbeAxes(g, grp)
		require.NoError(t, err)
		again, err := burn.ProbeAxes(g.Clone(), grp)
		require.NoError(t, err)
		require.Equal(t, res, again, "seed %d: identical grids must agree", seed)

		for _, a := range voxel.Axes() {
			r := res[a]
			require.LessOrEqual(t, r.PercolatedVoxels, r.ConnectedVoxels, "seed %d axis %s", seed, a)
			require.LessOrEqual(t, r.ConnectedVoxels, r.TotalVoxels, "seed %d axis %s", seed, a)
			require.LessOrEqual(t, r.PercolatingComponents, r.Components)

			for _, lat := range voxel.Axes() {
				if lat == a {
					continue
				}
				shifted, err := burn.Probe(g.Roll(lat, int(seed)), a, grp)
				require.NoError(t, err)
				require.Equal(t, r, shifted, "seed %d: probe %s after rolling %s", seed, a, lat)
			}
		}
	}
}

// TestProbe_SharedGrid runs probes concurrently over one grid; the grid is
// read only so they must match the sequential results.
func TestProbe_SharedGrid(t *testing.T) {
	g := randomGrid(t, 42, 10, 10, 10, 0, 1)
	want, err := burn.ProbeAxes(g, single(1))
	require.NoError(t, err)
	before := append([]phase.ID(nil), g.Cells()...)

	var wg sync.WaitGroup
	got := make([]burn.Result, 3)
	errs := make([]error, 3)
	for _, a := range voxel.Axes() {
		wg.Add(1)
		go func(a voxel.Axis) {
			defer wg.Done()
			got[a], errs[a] = burn.Probe(g, a, single(1))
		}(a)
	}
	wg.Wait()

	for _, a := range voxel.Axes() {
		require.NoError(t, errs[a])
		require.Equal(t, want[a], got[a])
	}
	require.Equal(t, before, g.Cells(), "probes must not modify the grid")
}

// TestProbe_OnComponent sees every component exactly once.
func TestProbe_OnComponent(t *testing.T) {
	g := checkerboard(t, 4, 1)
	var comps []burn.Component
	r, err := burn.Probe(g, voxel.Z, single(1), burn.WithOnComponent(func(c burn.Component) {
		comps = append(comps, c)
	}))
	require.NoError(t, err)
	require.Len(t, comps, r.Components)
	for _, c := range comps {
		assert.Equal(t, 0, c.SeedZ, "seeds lie on the z=0 face")
		assert.Equal(t, 1, c.Size)
		assert.False(t, c.Percolates)
	}
}
