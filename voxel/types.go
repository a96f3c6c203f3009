package voxel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrGridAllocation indicates the voxel array cannot be allocated.
	ErrGridAllocation = errors.New("voxel: cannot allocate grid")

	// ErrMalformedInput indicates a truncated or non-numeric voxel file.
	ErrMalformedInput = errors.New("voxel: malformed input")

	// ErrSizeMismatch indicates a cell slice whose length differs from X·Y·Z.
	ErrSizeMismatch = errors.New("voxel: cell count does not match dimensions")

	// ErrUnknownAxis indicates an axis name other than x, y or z.
	ErrUnknownAxis = errors.New("voxel: unknown axis")
)

// MaxVoxels caps the grid volume accepted by New.
const MaxVoxels = 1 << 30

// Header defaults.
const (
	// CurrentVersion is written to new files.
	CurrentVersion = 3.0
	// LegacyVersion is assumed for files without a header.
	LegacyVersion = 2.0
	// LegacySize is the edge length assumed for files without a header.
	LegacySize = 100
	// DefaultResolution is the voxel edge in micrometres when none is given.
	DefaultResolution = 1.0
)

// ParseError describes where a voxel file stopped making sense.
type ParseError struct {
	Line   int    // 1-based line of the offending token, 0 at EOF
	Token  string // offending token, empty at EOF
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("voxel: malformed input at line %d: %s", e.Line, e.Reason)
	}

	return fmt.Sprintf("voxel: malformed input at line %d near %q: %s", e.Line, e.Token, e.Reason)
}

// Unwrap lets errors.Is match ErrMalformedInput.
func (e *ParseError) Unwrap() error { return ErrMalformedInput }

// Dims are the grid edge lengths in voxels.
type Dims struct {
	X, Y, Z int
}

// Volume returns X·Y·Z.
func (d Dims) Volume() int {
	return d.X * d.Y * d.Z
}

// Size returns the edge length along a.
func (d Dims) Size(a Axis) int {
	switch a {
	case Y:
		return d.Y
	case Z:
		return d.Z
	default:
		return d.X
	}
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.X, d.Y, d.Z)
}

// Axis names one of the three grid directions.
type Axis int

const (
	// X is the fastest-varying file axis.
	X Axis = iota
	// Y is the middle axis.
	Y
	// Z is the slowest-varying file axis.
	Z
)

// Axes returns X, Y, Z in order.
func Axes() []Axis {
	return []Axis{X, Y, Z}
}

// Valid reports whether a is one of X, Y, Z.
func (a Axis) Valid() bool {
	return a >= X && a <= Z
}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis accepts "x", "y" or "z" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}
