// Package pattern generates deterministic synthetic microstructures for
// testing and calibrating the percolation probe.
//
// Patterns (foreground = Phase, everything else = Background):
//
//	fill          every voxel is foreground; percolates along every axis.
//	checkerboard  voxels with even x+y+z; never percolates.
//	slab          the mid plane normal to Axis; percolates along the two
//	              in-plane axes only.
//	rod           the line parallel to Axis through the centre of the
//	              cross-section; percolates along Axis only.
//	layered       alternating foreground/background layers of Period
//	              planes stacked along Axis; percolates across the layers'
//	              in-plane axes, and along Axis only when a single layer
//	              spans the whole grid.
//
// Options:
//
//	WithPhase(id)       foreground id (default 0).
//	WithBackground(id)  background id (default 1).
//	WithAxis(a)         orientation axis (default Z).
//	WithPeriod(n)       layer thickness, n >= 1 (default 1).
//
// Errors: ErrUnknownPattern, ErrOptionViolation, plus voxel.ErrGridAllocation
// for invalid dimensions.
package pattern
