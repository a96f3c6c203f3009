package burn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxlath/voxel"
)

// Sentinel errors for flood and probe execution.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("burn: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("burn: invalid option supplied")

	// ErrFloodAllocation is returned when the flood frontier cannot grow.
	// The batch that hit it must be abandoned.
	ErrFloodAllocation = errors.New("burn: flood frontier cannot grow")
)

// Option configures a Filler or Probe via functional arguments.
type Option func(*Options)

// Options holds the tunables of a flood.
type Options struct {
	// FrontierLimit caps the number of pending voxels; 0 means no cap.
	FrontierLimit int

	// OnComponent, if set, is called after each component is fully grown.
	OnComponent func(Component)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no frontier cap and no hook.
func DefaultOptions() Options {
	return Options{
		FrontierLimit: 0,
		OnComponent:   func(Component) {},
	}
}

// WithFrontierLimit caps the frontier length.
//
//	n > 0:  at most n pending voxels
//	n == 0: explicit "no cap"
//	n < 0:  invalid option → ErrOptionViolation
func WithFrontierLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: FrontierLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.FrontierLimit = n
	}
}

// WithOnComponent registers a hook run once per finished component.
func WithOnComponent(fn func(Component)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComponent = fn
		}
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Component describes one grown component.
type Component struct {
	// SeedX, SeedY, SeedZ locate the depth-0 voxel the component grew from.
	SeedX, SeedY, SeedZ int
	// Size is the number of voxels in the component.
	Size int
	// Percolates is true when the component reached the far face.
	Percolates bool
}

// Result is the outcome of probing one phase group along one axis.
// PercolatedVoxels ≤ ConnectedVoxels ≤ TotalVoxels always holds.
type Result struct {
	Axis voxel.Axis

	TotalVoxels      int
	ConnectedVoxels  int
	PercolatedVoxels int

	Components            int
	PercolatingComponents int
}
