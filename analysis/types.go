package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/voxlath/burn"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

var (
	// ErrNoPhases indicates Run was given no phases to analyze.
	ErrNoPhases = errors.New("analysis: no phases requested")

	// ErrGridNil indicates Run was given a nil grid.
	ErrGridNil = errors.New("analysis: grid is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("analysis: option violation")
)

// Observer receives every completed probe. Implementations must be safe for
// concurrent use when the analyzer runs with more than one worker.
type Observer interface {
	ObserveProbe(group phase.Group, res burn.Result, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveProbe(phase.Group, burn.Result, time.Duration) {}

// Option configures an Analyzer.
type Option func(*Options)

// Options holds Analyzer configuration.
type Options struct {
	Workers       int
	Axes          []voxel.Axis
	Table         *phase.Table
	FrontierLimit int
	Source        string
	Logger        *slog.Logger
	Observer      Observer

	err error
}

// DefaultOptions returns a sequential sweep over X, Y and Z using the
// default phase table, with logging discarded.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Axes:     voxel.Axes(),
		Table:    phase.DefaultTable(),
		Logger:   slog.New(slog.DiscardHandler),
		Observer: nopObserver{},
	}
}

// WithWorkers sets the number of concurrent probes. n must be >= 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithAxes restricts the sweep to the given axes, deduplicated in X, Y, Z
// order.
func WithAxes(axes ...voxel.Axis) Option {
	return func(o *Options) {
		if len(axes) == 0 {
			o.err = fmt.Errorf("%w: at least one axis is required", ErrOptionViolation)
			return
		}
		var seen [3]bool
		for _, a := range axes {
			if !a.Valid() {
				o.err = fmt.Errorf("%w: %w: %d", ErrOptionViolation, voxel.ErrUnknownAxis, int(a))
				return
			}
			seen[a] = true
		}
		o.Axes = o.Axes[:0:0]
		for _, a := range voxel.Axes() {
			if seen[a] {
				o.Axes = append(o.Axes, a)
			}
		}
	}
}

// WithTable replaces the phase table used to resolve aliases and names.
func WithTable(t *phase.Table) Option {
	return func(o *Options) {
		if t == nil {
			o.err = fmt.Errorf("%w: nil phase table", ErrOptionViolation)
			return
		}
		o.Table = t
	}
}

// WithFrontierLimit caps each flood's frontier; 0 means unbounded.
func WithFrontierLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: frontier limit must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.FrontierLimit = n
	}
}

// WithSource records the grid's origin (usually a file name) in the report.
func WithSource(name string) Option {
	return func(o *Options) { o.Source = name }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.Logger = l
	}
}

// WithObserver registers a probe observer, typically a metrics collector.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = nopObserver{}
		}
		o.Observer = obs
	}
}
