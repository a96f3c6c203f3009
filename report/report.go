package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

// Meta identifies the run that produced a report.
type Meta struct {
	RunID      string
	Source     string
	Dims       voxel.Dims
	Resolution float64
	CreatedAt  time.Time
}

// Record is the connectivity of one phase group along one axis.
type Record struct {
	Phase   phase.ID
	Name    string
	Members []phase.ID
	Axis    voxel.Axis

	TotalVoxels      int
	ConnectedVoxels  int
	PercolatedVoxels int

	Components            int
	PercolatingComponents int
}

// Ratio returns PercolatedVoxels/TotalVoxels. ok is false when the phase is
// absent and the ratio is not applicable.
func (r Record) Ratio() (ratio float64, ok bool) {
	return fraction(r.PercolatedVoxels, r.TotalVoxels)
}

// ConnectedFraction returns ConnectedVoxels/TotalVoxels with the same
// not-applicable rule as Ratio.
func (r Record) ConnectedFraction() (float64, bool) {
	return fraction(r.ConnectedVoxels, r.TotalVoxels)
}

func fraction(n, total int) (float64, bool) {
	if total <= 0 {
		return 0, false
	}

	return float64(n) / float64(total), true
}

// Report is an immutable set of records. Build one with a Builder or New.
type Report struct {
	Meta
	records []Record
}

// New freezes records into a Report, sorted by phase then axis.
func New(meta Meta, records []Record) *Report {
	rs := make([]Record, len(records))
	copy(rs, records)
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Phase != rs[j].Phase {
			return rs[i].Phase < rs[j].Phase
		}
		return rs[i].Axis < rs[j].Axis
	})

	return &Report{Meta: meta, records: rs}
}

// Records returns a copy of the rows in report order.
func (r *Report) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)

	return out
}

// Len returns the number of records.
func (r *Report) Len() int { return len(r.records) }

// Lookup returns the record of phase p along axis a.
func (r *Report) Lookup(p phase.ID, a voxel.Axis) (Record, bool) {
	for _, rec := range r.records {
		if rec.Phase == p && rec.Axis == a {
			return rec, true
		}
	}

	return Record{}, false
}

// Phases returns the distinct phase ids in report order.
func (r *Report) Phases() []phase.ID {
	var out []phase.ID
	for i, rec := range r.records {
		if i == 0 || rec.Phase != r.records[i-1].Phase {
			out = append(out, rec.Phase)
		}
	}

	return out
}

// Builder accumulates probe results. It is not safe for concurrent use.
type Builder struct {
	meta    Meta
	records []Record
}

// NewBuilder starts a report. An empty RunID gets a fresh UUID and a zero
// CreatedAt becomes the current time.
func NewBuilder(meta Meta) *Builder {
	if meta.RunID == "" {
		meta.RunID = uuid.NewString()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}

	return &Builder{meta: meta}
}

// Meta returns the run metadata the report will carry.
func (b *Builder) Meta() Meta { return b.meta }

// Add records the result of probing group along res.Axis.
func (b *Builder) Add(group phase.Group, res burn.Result) {
	b.records = append(b.records, Record{
		Phase:                 group.ID,
		Name:                  group.Label(),
		Members:               group.Members(),
		Axis:                  res.Axis,
		TotalVoxels:           res.TotalVoxels,
		ConnectedVoxels:       res.ConnectedVoxels,
		PercolatedVoxels:      res.PercolatedVoxels,
		Components:            res.Components,
		PercolatingComponents: res.PercolatingComponents,
	})
}

// Build freezes the collected records.
func (b *Builder) Build() *Report {
	return New(b.meta, b.records)
}
