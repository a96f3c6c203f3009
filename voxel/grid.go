package voxel

import (
	"fmt"

	"github.com/katalvlaran/voxlath/phase"
)

// Grid is a dense X×Y×Z image of raw phase ids.
// A Grid is not safe for concurrent mutation; concurrent reads are fine.
type Grid struct {
	dims  Dims
	cells []phase.ID

	// Version and Resolution carry the file header through a read/write cycle.
	Version    float64
	Resolution float64
}

// New allocates a grid of the given dims with every voxel set to 0.
// Returns ErrGridAllocation for non-positive dims or a volume above MaxVoxels.
// Complexity: O(V).
func New(d Dims) (*Grid, error) {
	if d.X <= 0 || d.Y <= 0 || d.Z <= 0 {
		return nil, fmt.Errorf("%w: dims %s must be positive", ErrGridAllocation, d)
	}
	// check before multiplying so the product cannot overflow
	if d.X > MaxVoxels || d.Y > MaxVoxels/d.X || d.Z > MaxVoxels/(d.X*d.Y) {
		return nil, fmt.Errorf("%w: dims %s exceed %d voxels", ErrGridAllocation, d, MaxVoxels)
	}

	return &Grid{
		dims:       d,
		cells:      make([]phase.ID, d.Volume()),
		Version:    CurrentVersion,
		Resolution: DefaultResolution,
	}, nil
}

// FromCells builds a grid from a flat slice in file order (x fastest).
// The slice is copied.
func FromCells(d Dims, cells []phase.ID) (*Grid, error) {
	g, err := New(d)
	if err != nil {
		return nil, err
	}
	if len(cells) != len(g.cells) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(cells), len(g.cells))
	}
	copy(g.cells, cells)

	return g, nil
}

// Dims returns the grid dimensions.
func (g *Grid) Dims() Dims { return g.dims }

// Len returns the number of voxels.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y,z) lies inside the grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.dims.X && y >= 0 && y < g.dims.Y && z >= 0 && z < g.dims.Z
}

// Index maps (x,y,z) to the flat index x + X·(y + Y·z).
func (g *Grid) Index(x, y, z int) int {
	return x + g.dims.X*(y+g.dims.Y*z)
}

// Coord converts a flat index back to (x,y,z).
func (g *Grid) Coord(i int) (x, y, z int) {
	x = i % g.dims.X
	i /= g.dims.X

	return x, i % g.dims.Y, i / g.dims.Y
}

// At returns the phase at (x,y,z). Coordinates must be in bounds.
func (g *Grid) At(x, y, z int) phase.ID {
	return g.cells[g.Index(x, y, z)]
}

// Set stores id at (x,y,z). Coordinates must be in bounds.
func (g *Grid) Set(x, y, z int, id phase.ID) {
	g.cells[g.Index(x, y, z)] = id
}

// AtIndex returns the phase at a flat index.
func (g *Grid) AtIndex(i int) phase.ID { return g.cells[i] }

// Cells exposes the flat storage in file order. Callers must not modify it.
func (g *Grid) Cells() []phase.ID { return g.cells }

// Fill sets every voxel to id.
func (g *Grid) Fill(id phase.ID) {
	for i := range g.cells {
		g.cells[i] = id
	}
}

// Clone returns an independent deep copy.
// Complexity: O(V).
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]phase.ID, len(g.cells))
	copy(c.cells, g.cells)

	return &c
}

// Count returns how many voxels belong to m.
// Complexity: O(V).
func (g *Grid) Count(m *phase.Mask) int {
	n := 0
	for _, id := range g.cells {
		if m[id] {
			n++
		}
	}

	return n
}

// Histogram returns the population of every raw id.
func (g *Grid) Histogram() [256]int {
	var h [256]int
	for _, id := range g.cells {
		h[id]++
	}

	return h
}

// Roll returns a copy circularly shifted by n voxels along a.
// Voxel (x,y,z) moves to the coordinate n steps further along a, modulo the size.
func (g *Grid) Roll(a Axis, n int) *Grid {
	out := g.Clone()
	size := g.dims.Size(a)
	n = ((n % size) + size) % size
	if n == 0 {
		return out
	}
	for z := 0; z < g.dims.Z; z++ {
		for y := 0; y < g.dims.Y; y++ {
			for x := 0; x < g.dims.X; x++ {
				nx, ny, nz := x, y, z
				switch a {
				case X:
					nx = (x + n) % size
				case Y:
					ny = (y + n) % size
				case Z:
					nz = (z + n) % size
				}
				out.cells[out.Index(nx, ny, nz)] = g.cells[g.Index(x, y, z)]
			}
		}
	}

	return out
}
