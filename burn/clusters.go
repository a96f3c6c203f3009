package burn

import (
	"sort"

	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// Clusters describes every 6-connected component of a group in the whole
// grid, with no periodic wrap and no face seeding.
type Clusters struct {
	// Voxels is the number of member voxels.
	Voxels int
	// Sizes lists component sizes, largest first.
	Sizes []int
}

// Count returns the number of components.
func (c Clusters) Count() int { return len(c.Sizes) }

// Largest returns the size of the biggest component, 0 when there is none.
func (c Clusters) Largest() int {
	if len(c.Sizes) == 0 {
		return 0
	}

	return c.Sizes[0]
}

// FindClusters labels all components of group in g with a breadth-first
// sweep in file order.
//
// Time:   O(V).
// Memory: O(V) for visited flags and the queue.
func FindClusters(g *voxel.Grid, group phase.Group) (Clusters, error) {
	if g == nil {
		return Clusters{}, ErrGridNil
	}
	d := g.Dims()
	member := group.Mask()
	cells := g.Cells()
	seen := make([]bool, len(cells))
	strides := [3]int{1, d.X, d.X * d.Y}
	sizes := [3]int{d.X, d.Y, d.Z}

	var out Clusters
	var queue []int
	for i0, id := range cells {
		if seen[i0] || !member.Has(id) {
			continue
		}
		seen[i0] = true
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy, uz := g.Coord(u)
			coord := [3]int{ux, uy, uz}
			for a := 0; a < 3; a++ {
				if coord[a] > 0 {
					if v := u - strides[a]; !seen[v] && member.Has(cells[v]) {
						seen[v] = true
						queue = append(queue, v)
					}
				}
				if coord[a] < sizes[a]-1 {
					if v := u + strides[a]; !seen[v] && member.Has(cells[v]) {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		out.Voxels += len(queue)
		out.Sizes = append(out.Sizes, len(queue))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out.Sizes)))

	return out, nil
}
