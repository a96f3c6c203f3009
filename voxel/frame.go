package voxel

// Frame re-expresses grid coordinates for one probe axis as
// (depth, lateral1, lateral2), with depth running along the probe axis.
//
// The permutations are cyclic:
//
//	X: (d, a, b) = (x, y, z)
//	Y: (d, a, b) = (y, z, x)
//	Z: (d, a, b) = (z, x, y)
//
// A Frame is a small value type; its methods are pure.
type Frame struct {
	axis              Axis
	depth, lat1, lat2 int
	// flat-index strides of the canonical axes
	sd, s1, s2 int
}

// NewFrame builds the frame of d for probe axis a.
// Complexity: O(1).
func NewFrame(d Dims, a Axis) Frame {
	plane := d.X * d.Y
	switch a {
	case Y:
		return Frame{axis: Y, depth: d.Y, lat1: d.Z, lat2: d.X, sd: d.X, s1: plane, s2: 1}
	case Z:
		return Frame{axis: Z, depth: d.Z, lat1: d.X, lat2: d.Y, sd: plane, s1: 1, s2: d.X}
	default:
		return Frame{axis: X, depth: d.X, lat1: d.Y, lat2: d.Z, sd: 1, s1: d.X, s2: plane}
	}
}

// Axis returns the probe axis.
func (f Frame) Axis() Axis { return f.axis }

// Sizes returns the reordered size triple (depth, lateral1, lateral2).
func (f Frame) Sizes() (depth, lat1, lat2 int) {
	return f.depth, f.lat1, f.lat2
}

// ToGrid maps canonical coordinates to grid (x,y,z).
func (f Frame) ToGrid(d, a, b int) (x, y, z int) {
	switch f.axis {
	case Y:
		return b, d, a
	case Z:
		return a, b, d
	default:
		return d, a, b
	}
}

// FromGrid maps grid (x,y,z) to canonical coordinates.
func (f Frame) FromGrid(x, y, z int) (d, a, b int) {
	switch f.axis {
	case Y:
		return y, z, x
	case Z:
		return z, x, y
	default:
		return x, y, z
	}
}

// Index returns the grid's flat index of canonical (d,a,b).
// Equal to Grid.Index(f.ToGrid(d,a,b)).
func (f Frame) Index(d, a, b int) int {
	return d*f.sd + a*f.s1 + b*f.s2
}
