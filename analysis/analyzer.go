package analysis

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/report"
	"github.com/katalvlaran/voxlath/voxel"
)

// Analyzer runs phase × axis percolation sweeps. It is safe to call Run from
// several goroutines.
type Analyzer struct {
	opts Options
}

// task is one (phase, axis) probe.
type task struct {
	group phase.Group
	axis  voxel.Axis
}

// New builds an Analyzer.
func New(opts ...Option) (*Analyzer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Analyzer{opts: o}, nil
}

// Options returns a copy of the analyzer's configuration.
func (an *Analyzer) Options() Options { return an.opts }

// Run probes every phase in phases along every configured axis and returns
// the frozen report. Duplicate phase ids are probed once. On any error no
// report is returned.
//
// Complexity: O(P·A·V) time for P phases, A axes and V voxels;
// O(W·V) extra memory for W workers.
func (an *Analyzer) Run(ctx context.Context, g *voxel.Grid, phases []phase.ID) (*report.Report, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if len(phases) == 0 {
		return nil, ErrNoPhases
	}

	tasks := an.plan(phases)
	b := report.NewBuilder(report.Meta{
		Source:     an.opts.Source,
		Dims:       g.Dims(),
		Resolution: g.Resolution,
	})
	log := an.opts.Logger.With("run_id", b.Meta().RunID, "dims", g.Dims().String())
	log.Info("analysis started", "phases", len(tasks)/len(an.opts.Axes), "axes", len(an.opts.Axes), "workers", an.opts.Workers)

	start := time.Now()
	results := make([]burn.Result, len(tasks))
	var err error
	if an.opts.Workers == 1 {
		err = an.runSequential(ctx, g, tasks, results)
	} else {
		err = an.runParallel(ctx, g, tasks, results)
	}
	if err != nil {
		log.Error("analysis failed", "error", err)
		return nil, err
	}

	for i, t := range tasks {
		b.Add(t.group, results[i])
	}
	rep := b.Build()
	log.Info("analysis complete", "probes", len(tasks), "elapsed", time.Since(start))

	return rep, nil
}

// plan expands phases into tasks, phase-major, dropping repeated ids.
func (an *Analyzer) plan(phases []phase.ID) []task {
	var seen [256]bool
	tasks := make([]task, 0, len(phases)*len(an.opts.Axes))
	for _, id := range phases {
		if seen[id] {
			continue
		}
		seen[id] = true
		group := an.opts.Table.Resolve(id)
		for _, a := range an.opts.Axes {
			tasks = append(tasks, task{group: group, axis: a})
		}
	}

	return tasks
}

func (an *Analyzer) runSequential(ctx context.Context, g *voxel.Grid, tasks []task, results []burn.Result) error {
	for i, t := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := an.probe(g, t)
		if err != nil {
			return err
		}
		results[i] = res
	}

	return nil
}

func (an *Analyzer) runParallel(ctx context.Context, g *voxel.Grid, tasks []task, results []burn.Result) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(an.opts.Workers)
	for i, t := range tasks {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := an.probe(g, t)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	return eg.Wait()
}

// probe runs one task; each worker writes a distinct results slot.
func (an *Analyzer) probe(g *voxel.Grid, t task) (burn.Result, error) {
	log := an.opts.Logger.With("phase", t.group.ID.String(), "axis", t.axis.String())
	log.Debug("probe started", "members", len(t.group.Members()))

	start := time.Now()
	res, err := burn.Probe(g, t.axis, t.group, burn.WithFrontierLimit(an.opts.FrontierLimit))
	elapsed := time.Since(start)
	if err != nil {
		return burn.Result{}, fmt.Errorf("phase %s axis %s: %w", t.group.Label(), t.axis, err)
	}
	an.opts.Observer.ObserveProbe(t.group, res, elapsed)
	log.Debug("probe finished",
		"total", res.TotalVoxels,
		"connected", res.ConnectedVoxels,
		"percolated", res.PercolatedVoxels,
		"components", res.Components,
		"elapsed", elapsed)

	return res, nil
}
