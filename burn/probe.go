package burn

import (
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// Probe burns every component of group that touches the depth-0 face of
// axis and reports how much of the group is connected to that face and how
// much percolates to the opposite face.
//
// Behavior:
//  1. TotalVoxels counts every grid voxel whose id is in group.
//  2. The depth-0 face is scanned lateral1-major; each unvisited member
//     voxel seeds a Fill whose size is added to ConnectedVoxels.
//  3. A component that reaches depth = size-1 adds its size to
//     PercolatedVoxels. Lateral wrap means reaching the far face requires
//     spanning the full depth range.
//
// The grid is read only. Returns ErrGridNil, voxel.ErrUnknownAxis,
// ErrOptionViolation, or ErrFloodAllocation; on error the Result is zero.
// Complexity: O(V) time and memory.
func Probe(g *voxel.Grid, axis voxel.Axis, group phase.Group, opts ...Option) (Result, error) {
	f, err := NewFiller(g, axis, group, opts...)
	if err != nil {
		return Result{}, err
	}

	res := Result{Axis: axis, TotalVoxels: g.Count(f.member)}
	if res.TotalVoxels == 0 {
		return res, nil
	}
	for a := 0; a < f.lat1; a++ {
		for b := 0; b < f.lat2; b++ {
			comp, err := f.Fill(a, b)
			if err != nil {
				return Result{}, err
			}
			if comp.Size == 0 {
				continue
			}
			res.Components++
			res.ConnectedVoxels += comp.Size
			if comp.Percolates {
				res.PercolatingComponents++
				res.PercolatedVoxels += comp.Size
			}
		}
	}

	return res, nil
}

// ProbeAxes runs Probe along X, Y and Z in turn.
func ProbeAxes(g *voxel.Grid, group phase.Group, opts ...Option) ([3]Result, error) {
	var out [3]Result
	for _, a := range voxel.Axes() {
		r, err := Probe(g, a, group, opts...)
		if err != nil {
			return [3]Result{}, err
		}
		out[a] = r
	}

	return out, nil
}
