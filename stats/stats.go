package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// ErrGridNil indicates Compute was given a nil grid.
var ErrGridNil = errors.New("stats: grid is nil")

// SliceStats describes the member fraction of the planes normal to one axis.
type SliceStats struct {
	Axis   voxel.Axis `json:"-"`
	Mean   float64    `json:"mean"`
	StdDev float64    `json:"stddev"`
	Min    float64    `json:"min"`
	Max    float64    `json:"max"`
}

// PhaseStats is the composition summary of one raw id or alias group.
type PhaseStats struct {
	ID       phase.ID      `json:"id"`
	Name     string        `json:"name"`
	Members  []phase.ID    `json:"members"`
	Count    int           `json:"count"`
	Fraction float64       `json:"fraction"`
	Slices   [3]SliceStats `json:"slices"`

	// Clusters and LargestCluster describe the 6-connected components of
	// the whole grid.
	Clusters       int `json:"clusters"`
	LargestCluster int `json:"largest_cluster"`
}

// Summary is the result of Compute.
type Summary struct {
	Dims   voxel.Dims   `json:"-"`
	Total  int          `json:"total"`
	Raw    []PhaseStats `json:"raw"`
	Groups []PhaseStats `json:"groups"`
}

// sliceCounts[a][i] is the number of voxels in plane i normal to axis a.
type sliceCounts [3][]int

// Compute summarizes g. Raw entries are sorted by id; group entries follow
// t.Groups order and skip groups with no member present.
func Compute(g *voxel.Grid, t *phase.Table) (*Summary, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if t == nil {
		t = phase.DefaultTable()
	}

	d := g.Dims()
	hist := g.Histogram()
	var per [256]*sliceCounts
	for id, n := range hist {
		if n > 0 {
			per[id] = newSliceCounts(d)
		}
	}

	cells := g.Cells()
	i := 0
	for z := 0; z < d.Z; z++ {
		for y := 0; y < d.Y; y++ {
			for x := 0; x < d.X; x++ {
				sc := per[cells[i]]
				sc[voxel.X][x]++
				sc[voxel.Y][y]++
				sc[voxel.Z][z]++
				i++
			}
		}
	}

	s := &Summary{Dims: d, Total: g.Len()}
	for id, n := range hist {
		if n == 0 {
			continue
		}
		pid := phase.ID(id)
		ps := summarize(d, pid, t.RawName(pid), []phase.ID{pid}, n, per[id])
		if err := addClusters(g, &ps); err != nil {
			return nil, err
		}
		s.Raw = append(s.Raw, ps)
	}
	for _, grp := range t.Groups() {
		acc := newSliceCounts(d)
		count := 0
		for _, m := range grp.Members() {
			if per[m] == nil {
				continue
			}
			count += hist[m]
			acc.add(per[m])
		}
		if count == 0 {
			continue
		}
		ps := summarize(d, grp.ID, grp.Label(), grp.Members(), count, acc)
		if err := addClusters(g, &ps); err != nil {
			return nil, err
		}
		s.Groups = append(s.Groups, ps)
	}

	return s, nil
}

func addClusters(g *voxel.Grid, ps *PhaseStats) error {
	c, err := burn.FindClusters(g, phase.Group{ID: ps.Members[0], Aliases: ps.Members[1:]})
	if err != nil {
		return err
	}
	ps.Clusters, ps.LargestCluster = c.Count(), c.Largest()

	return nil
}

func newSliceCounts(d voxel.Dims) *sliceCounts {
	var sc sliceCounts
	for _, a := range voxel.Axes() {
		sc[a] = make([]int, d.Size(a))
	}

	return &sc
}

func (sc *sliceCounts) add(o *sliceCounts) {
	for a := range sc {
		for i, n := range o[a] {
			sc[a][i] += n
		}
	}
}

func summarize(d voxel.Dims, id phase.ID, name string, members []phase.ID, count int, sc *sliceCounts) PhaseStats {
	ps := PhaseStats{
		ID:       id,
		Name:     name,
		Members:  members,
		Count:    count,
		Fraction: float64(count) / float64(d.Volume()),
	}
	for _, a := range voxel.Axes() {
		area := float64(d.Volume() / d.Size(a))
		fr := make([]float64, len(sc[a]))
		for i, n := range sc[a] {
			fr[i] = float64(n) / area
		}
		ps.Slices[a] = describe(a, fr)
	}

	return ps
}

// describe reduces per-slice fractions; a single slice has zero spread.
func describe(a voxel.Axis, fr []float64) SliceStats {
	ss := SliceStats{Axis: a, Min: floats.Min(fr), Max: floats.Max(fr)}
	if len(fr) < 2 {
		ss.Mean = fr[0]
		return ss
	}
	ss.Mean, ss.StdDev = stat.MeanStdDev(fr, nil)

	return ss
}

// Lookup returns the raw entry for id.
func (s *Summary) Lookup(id phase.ID) (PhaseStats, bool) {
	for _, ps := range s.Raw {
		if ps.ID == id {
			return ps, true
		}
	}

	return PhaseStats{}, false
}

// Group returns the group entry whose primary id is id.
func (s *Summary) Group(id phase.ID) (PhaseStats, bool) {
	for _, ps := range s.Groups {
		if ps.ID == id {
			return ps, true
		}
	}

	return PhaseStats{}, false
}
