package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

var (
	// ErrUnknownPattern indicates a pattern name Generate does not know.
	ErrUnknownPattern = errors.New("pattern: unknown pattern")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("pattern: option violation")
)

// Option configures Generate.
type Option func(*Options)

// Options holds the pattern parameters.
type Options struct {
	Phase      phase.ID
	Background phase.ID
	Axis       voxel.Axis
	Period     int

	err error
}

// DefaultOptions returns porosity (0) on a C3S (1) background, oriented
// along Z with unit period.
func DefaultOptions() Options {
	return Options{
		Phase:      phase.Porosity,
		Background: phase.C3S,
		Axis:       voxel.Z,
		Period:     1,
	}
}

// WithPhase sets the foreground id.
func WithPhase(id phase.ID) Option {
	return func(o *Options) { o.Phase = id }
}

// WithBackground sets the background id.
func WithBackground(id phase.ID) Option {
	return func(o *Options) { o.Background = id }
}

// WithAxis sets the orientation of slab, rod and layered patterns.
func WithAxis(a voxel.Axis) Option {
	return func(o *Options) {
		if !a.Valid() {
			o.err = fmt.Errorf("%w: %w: %d", ErrOptionViolation, voxel.ErrUnknownAxis, int(a))
			return
		}
		o.Axis = a
	}
}

// WithPeriod sets the layer thickness of the layered pattern.
func WithPeriod(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: period must be >= 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Period = n
	}
}

// painter reports whether (x, y, z) is foreground.
type painter func(o Options, d voxel.Dims, x, y, z int) bool

var painters = map[string]painter{
	"fill": func(Options, voxel.Dims, int, int, int) bool {
		return true
	},
	"checkerboard": func(_ Options, _ voxel.Dims, x, y, z int) bool {
		return (x+y+z)%2 == 0
	},
	"slab": func(o Options, d voxel.Dims, x, y, z int) bool {
		return along(o.Axis, x, y, z) == d.Size(o.Axis)/2
	},
	"rod": func(o Options, d voxel.Dims, x, y, z int) bool {
		f := voxel.NewFrame(d, o.Axis)
		_, a, b := f.FromGrid(x, y, z)
		_, n1, n2 := f.Sizes()
		return a == n1/2 && b == n2/2
	},
	"layered": func(o Options, _ voxel.Dims, x, y, z int) bool {
		return (along(o.Axis, x, y, z)/o.Period)%2 == 0
	},
}

func along(a voxel.Axis, x, y, z int) int {
	switch a {
	case voxel.X:
		return x
	case voxel.Y:
		return y
	default:
		return z
	}
}

// Names returns the known pattern names, sorted.
func Names() []string {
	out := make([]string, 0, len(painters))
	for n := range painters {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Generate builds the named pattern on a grid of dims d.
//
// Complexity: O(X·Y·Z).
func Generate(name string, d voxel.Dims, opts ...Option) (*voxel.Grid, error) {
	paint, ok := painters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPattern, name, strings.Join(Names(), ", "))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := voxel.New(d)
	if err != nil {
		return nil, err
	}
	cells := g.Cells()
	i := 0
	for z := 0; z < d.Z; z++ {
		for y := 0; y < d.Y; y++ {
			for x := 0; x < d.X; x++ {
				if paint(o, d, x, y, z) {
					cells[i] = o.Phase
				} else {
					cells[i] = o.Background
				}
				i++
			}
		}
	}

	return g, nil
}
