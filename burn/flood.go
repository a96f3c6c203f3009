package burn

import (
	"fmt"

	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// Filler grows components of one phase group inside one axis frame.
// It reads the grid and writes only its own visited array; a Filler is not
// safe for concurrent use, but any number of Fillers may share a grid.
type Filler struct {
	grid   *voxel.Grid
	frame  voxel.Frame
	member *phase.Mask
	opts   Options

	depth, lat1, lat2 int

	visited []bool
	stack   *frontier
}

// NewFiller prepares a Filler for group along axis.
// Returns ErrGridNil, voxel.ErrUnknownAxis or ErrOptionViolation.
// Complexity: O(V) for the visited array.
func NewFiller(g *voxel.Grid, axis voxel.Axis, group phase.Group, opts ...Option) (*Filler, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !axis.Valid() {
		return nil, fmt.Errorf("burn: %w: %d", voxel.ErrUnknownAxis, int(axis))
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	f := &Filler{
		grid:    g,
		frame:   voxel.NewFrame(g.Dims(), axis),
		member:  group.Mask(),
		opts:    o,
		visited: make([]bool, g.Len()),
		stack:   newFrontier(g.Len(), o.FrontierLimit),
	}
	f.depth, f.lat1, f.lat2 = f.frame.Sizes()

	return f, nil
}

// Frame returns the axis frame the Filler works in.
func (f *Filler) Frame() voxel.Frame { return f.frame }

// Visited reports whether grid voxel (x,y,z) belongs to a component grown so far.
func (f *Filler) Visited(x, y, z int) bool {
	return f.visited[f.grid.Index(x, y, z)]
}

// Fill grows the component containing the depth-0 voxel at lateral
// coordinates (a, b). If that voxel is not a group member or was already
// visited, Fill returns a zero Component and changes nothing.
//
// Neighbours are the six face-adjacent voxels. Lateral steps wrap modulo the
// lateral sizes; depth steps outside [0, depth) are dropped.
// Returns ErrFloodAllocation when the frontier limit is hit; the visited
// array is then partially marked and the Filler must be discarded.
// Complexity: O(component size).
func (f *Filler) Fill(a, b int) (Component, error) {
	seed := f.frame.Index(0, a, b)
	if f.visited[seed] || !f.member[f.grid.AtIndex(seed)] {
		return Component{}, nil
	}
	x, y, z := f.frame.ToGrid(0, a, b)
	comp := Component{SeedX: x, SeedY: y, SeedZ: z}

	f.stack.reset()
	f.visited[seed] = true
	if err := f.stack.push(cell{0, int32(a), int32(b)}); err != nil {
		return comp, err
	}

	last := int32(f.depth - 1)
	for !f.stack.empty() {
		c := f.stack.pop()
		comp.Size++
		if c.d == last {
			comp.Percolates = true
		}
		if c.d > 0 {
			if err := f.visit(c.d-1, c.a, c.b); err != nil {
				return comp, err
			}
		}
		if c.d < last {
			if err := f.visit(c.d+1, c.a, c.b); err != nil {
				return comp, err
			}
		}
		if err := f.visit(c.d, wrap(c.a-1, f.lat1), c.b); err != nil {
			return comp, err
		}
		if err := f.visit(c.d, wrap(c.a+1, f.lat1), c.b); err != nil {
			return comp, err
		}
		if err := f.visit(c.d, c.a, wrap(c.b-1, f.lat2)); err != nil {
			return comp, err
		}
		if err := f.visit(c.d, c.a, wrap(c.b+1, f.lat2)); err != nil {
			return comp, err
		}
	}
	f.opts.OnComponent(comp)

	return comp, nil
}

// visit marks and enqueues (d,a,b) if it is an unvisited member.
func (f *Filler) visit(d, a, b int32) error {
	i := f.frame.Index(int(d), int(a), int(b))
	if f.visited[i] || !f.member[f.grid.AtIndex(i)] {
		return nil
	}
	f.visited[i] = true

	return f.stack.push(cell{d, a, b})
}

// wrap folds v into [0, n) for v in [-1, n].
func wrap(v int32, n int) int32 {
	switch {
	case v < 0:
		return int32(n) - 1
	case int(v) >= n:
		return 0
	default:
		return v
	}
}
