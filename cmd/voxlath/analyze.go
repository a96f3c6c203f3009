package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/voxlath/analysis"
	"github.com/katalvlaran/voxlath/metrics"
	"github.com/katalvlaran/voxlath/report"
	"github.com/katalvlaran/voxlath/store"
	"github.com/katalvlaran/voxlath/voxel"
)

type analyzeFlags struct {
	phases        []string
	axes          []string
	workers       int
	frontierLimit int
	format        string
	out           string
	db            string
	metricsFile   string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Measure connectivity and percolation of phases along each axis",
		Long: `Reads a voxel image and, for each phase and axis, counts the voxels of the
phase, the voxels connected to the entry face and the voxels of components
that reach the opposite face. Use "-" to read the image from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.StringArrayVarP(&f.phases, "phase", "p", nil, "phase id or name to analyze (repeatable)")
	fl.StringArrayVarP(&f.axes, "axis", "a", nil, "axis to probe: x, y or z (repeatable)")
	fl.IntVarP(&f.workers, "workers", "w", 1, "concurrent probes")
	fl.IntVar(&f.frontierLimit, "frontier-limit", 0, "max pending voxels per flood, 0 for no limit")
	fl.StringVarP(&f.format, "format", "f", report.FormatText, "output format: text or json")
	fl.StringVarP(&f.out, "out", "o", "", "write the report to this file instead of stdout")
	fl.StringVar(&f.db, "db", "", "SQLite database to store the run in")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	return cmd
}

// apply copies explicitly set flags over the loaded configuration.
func (f analyzeFlags) apply(cmd *cobra.Command, a *app) {
	fl := cmd.Flags()
	if fl.Changed("phase") {
		a.cfg.Analysis.Phases = f.phases
	}
	if fl.Changed("axis") {
		a.cfg.Analysis.Axes = f.axes
	}
	if fl.Changed("workers") {
		a.cfg.Analysis.Workers = f.workers
	}
	if fl.Changed("frontier-limit") {
		a.cfg.Analysis.FrontierLimit = f.frontierLimit
	}
	if fl.Changed("format") {
		a.cfg.Output.Format = f.format
	}
	if fl.Changed("db") {
		a.cfg.Output.DB = f.db
	}
	if fl.Changed("metrics-file") {
		a.cfg.Output.MetricsFile = f.metricsFile
	}
}

func (a *app) runAnalyze(cmd *cobra.Command, path string, f analyzeFlags) error {
	f.apply(cmd, a)
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	phases, err := a.cfg.PhaseIDs(a.table)
	if err != nil {
		return err
	}
	axes, err := a.cfg.AxisList()
	if err != nil {
		return err
	}

	g, err := a.loadGrid(path)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	an, err := analysis.New(
		analysis.WithWorkers(a.cfg.Analysis.Workers),
		analysis.WithAxes(axes...),
		analysis.WithTable(a.table),
		analysis.WithFrontierLimit(a.cfg.Analysis.FrontierLimit),
		analysis.WithSource(path),
		analysis.WithLogger(a.log.Slog()),
		analysis.WithObserver(collector),
	)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var st *store.Store
	if db := a.cfg.Output.DB; db != "" {
		if st, err = store.Open(ctx, db); err != nil {
			return err
		}
		defer st.Close()
	}

	rep, err := an.Run(ctx, g, phases)
	if err != nil {
		return err
	}

	// the report is emitted only after every sink has succeeded
	if st != nil {
		if err := st.Save(ctx, rep); err != nil {
			return err
		}
		a.log.Info("run stored", "run_id", rep.RunID, "db", a.cfg.Output.DB)
	}
	if mf := a.cfg.Output.MetricsFile; mf != "" {
		if err := collector.WriteTextfile(mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Info("metrics written", "path", mf)
	}

	return a.output(f.out, func(w io.Writer) error {
		return report.Write(w, rep, a.cfg.Output.Format)
	})
}

// loadGrid reads a voxel image from path, or from stdin for "-".
func (a *app) loadGrid(path string) (*voxel.Grid, error) {
	var (
		g   *voxel.Grid
		err error
	)
	if path == "-" {
		g, err = voxel.Read(os.Stdin)
	} else {
		g, err = voxel.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	a.log.Debug("grid loaded", "path", path, "dims", g.Dims().String(), "version", g.Version)

	return g, nil
}
