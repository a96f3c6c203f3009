package phase

import (
	"errors"
	"sort"
	"strconv"
)

// MaxAliases bounds the alias set of a Group, so a Group spans 1..4 raw ids.
const MaxAliases = 3

// Sentinel errors for phase table operations.
var (
	// ErrUnknownPhase indicates a name or id that matches no phase.
	ErrUnknownPhase = errors.New("phase: unknown phase")

	// ErrTooManyAliases indicates a Group with more than MaxAliases aliases.
	ErrTooManyAliases = errors.New("phase: too many aliases")

	// ErrAliasConflict indicates a raw id claimed by more than one group.
	ErrAliasConflict = errors.New("phase: raw id claimed by two groups")
)

// ID is a raw phase identifier stored in a voxel.
type ID uint8

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// MarshalJSON encodes the id as a number so that []ID is a JSON array
// rather than base64 bytes.
func (id ID) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(id), 10), nil
}

// Mask is a membership set over all possible raw ids.
type Mask [256]bool

// Has reports whether raw is a member.
func (m *Mask) Has(raw ID) bool {
	return m[raw]
}

// Group is one logical phase and the raw ids considered equivalent to it.
// ID is the primary id; Aliases never contains ID itself.
type Group struct {
	ID      ID
	Name    string
	Aliases []ID
}

// Members returns the primary id followed by the aliases in ascending order.
func (g Group) Members() []ID {
	out := make([]ID, 0, 1+len(g.Aliases))
	out = append(out, g.ID)
	rest := append([]ID(nil), g.Aliases...)
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, a := range rest {
		if a != g.ID {
			out = append(out, a)
		}
	}

	return out
}

// Contains reports whether raw belongs to the group.
func (g Group) Contains(raw ID) bool {
	if raw == g.ID {
		return true
	}
	for _, a := range g.Aliases {
		if a == raw {
			return true
		}
	}

	return false
}

// Mask returns the membership array used on hot paths.
func (g Group) Mask() *Mask {
	var m Mask
	for _, id := range g.Members() {
		m[id] = true
	}

	return &m
}

// Label returns Name, or the decimal id when the group is unnamed.
func (g Group) Label() string {
	if g.Name != "" {
		return g.Name
	}

	return "phase " + g.ID.String()
}
