package phase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Raw phase ids of a hydrating cement paste image.
const (
	Porosity       ID = 0
	C3S            ID = 1
	C2S            ID = 2
	C3A            ID = 3
	C4AF           ID = 4
	Gypsum         ID = 5
	Hemihydrate    ID = 6
	Anhydrite      ID = 7
	Pozzolan       ID = 8
	Inert          ID = 9
	Slag           ID = 10
	ASG            ID = 11
	CAS2           ID = 12
	CH             ID = 13
	CSH            ID = 14
	C3AH6          ID = 15
	Ettringite     ID = 16
	EttringiteC4AF ID = 17
	AFm            ID = 18
	FH3            ID = 19
	PozzCSH        ID = 20
	SlagCSH        ID = 21
	CaCl2          ID = 22
	Friedel        ID = 23
	Stratlingite   ID = 24
	GypsumS        ID = 25
	CaCO3          ID = 26
	AFmC           ID = 27
	InertAgg       ID = 28
	AbsGypsum      ID = 29
	EmptyPorosity  ID = 55
	CrackPorosity  ID = 56
)

var defaultNames = map[ID]string{
	Porosity:       "Porosity",
	C3S:            "C3S",
	C2S:            "C2S",
	C3A:            "C3A",
	C4AF:           "C4AF",
	Gypsum:         "Gypsum",
	Hemihydrate:    "Hemihydrate",
	Anhydrite:      "Anhydrite",
	Pozzolan:       "Pozzolan",
	Inert:          "Inert",
	Slag:           "Slag",
	ASG:            "ASG",
	CAS2:           "CAS2",
	CH:             "CH",
	CSH:            "C-S-H",
	C3AH6:          "C3AH6",
	Ettringite:     "Ettringite",
	EttringiteC4AF: "Iron-rich ettringite",
	AFm:            "AFm",
	FH3:            "FH3",
	PozzCSH:        "Pozzolanic C-S-H",
	SlagCSH:        "Slag C-S-H",
	CaCl2:          "CaCl2",
	Friedel:        "Friedel's salt",
	Stratlingite:   "Stratlingite",
	GypsumS:        "Secondary gypsum",
	CaCO3:          "CaCO3",
	AFmC:           "Carboaluminate",
	InertAgg:       "Inert aggregate",
	AbsGypsum:      "Absorbed gypsum",
	EmptyPorosity:  "Empty porosity",
	CrackPorosity:  "Crack porosity",
}

var defaultGroups = []Group{
	{ID: Porosity, Name: "Total porosity", Aliases: []ID{EmptyPorosity, CrackPorosity}},
	{ID: CSH, Name: "Total C-S-H", Aliases: []ID{PozzCSH, SlagCSH}},
	{ID: Ettringite, Name: "Total ettringite", Aliases: []ID{EttringiteC4AF}},
	{ID: Gypsum, Name: "Total gypsum", Aliases: []ID{GypsumS, AbsGypsum}},
}

// Table resolves logical phase ids to their alias groups.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	groups map[ID]Group
	owner  map[ID]ID
	names  map[ID]string
}

// DefaultTable returns the cement-paste table: raw names for every known id
// and the aggregate groups for porosity, C-S-H, ettringite and gypsum.
func DefaultTable() *Table {
	t, err := build(defaultNames, defaultGroups)
	if err != nil {
		panic(err) // static data
	}

	return t
}

// NewTable builds a table from groups alone. Raw ids keep no display names
// beyond the group names.
// Returns ErrTooManyAliases or ErrAliasConflict for inconsistent groups.
func NewTable(groups ...Group) (*Table, error) {
	return build(nil, groups)
}

func build(names map[ID]string, groups []Group) (*Table, error) {
	t := &Table{
		groups: make(map[ID]Group, len(groups)),
		owner:  make(map[ID]ID),
		names:  make(map[ID]string, len(names)),
	}
	for id, n := range names {
		t.names[id] = n
	}
	for _, g := range groups {
		if len(g.Aliases) > MaxAliases {
			return nil, fmt.Errorf("%w: phase %d has %d (max %d)", ErrTooManyAliases, g.ID, len(g.Aliases), MaxAliases)
		}
		g.Aliases = append([]ID(nil), g.Aliases...)
		for _, raw := range g.Members() {
			if prev, ok := t.owner[raw]; ok {
				return nil, fmt.Errorf("%w: id %d in phases %d and %d", ErrAliasConflict, raw, prev, g.ID)
			}
			t.owner[raw] = g.ID
		}
		t.groups[g.ID] = g
	}

	return t, nil
}

// Resolve returns the group for a logical phase id. An id without an entry
// resolves to a singleton group of itself.
// Complexity: O(1).
func (t *Table) Resolve(id ID) Group {
	if g, ok := t.groups[id]; ok {
		return g
	}

	return Group{ID: id, Name: t.names[id]}
}

// Name returns the display name of a logical phase, falling back to the raw
// name and then to "phase <id>".
func (t *Table) Name(id ID) string {
	return t.Resolve(id).Label()
}

// RawName returns the name of a raw id ignoring any group it belongs to,
// falling back to "phase <id>".
func (t *Table) RawName(id ID) string {
	return Group{ID: id, Name: t.names[id]}.Label()
}

// Groups returns the aliased groups sorted by primary id.
func (t *Table) Groups() []Group {
	out := make([]Group, 0, len(t.groups))
	for _, g := range t.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Lookup parses a phase reference: a decimal id in 0..255 or a
// case-insensitive group or raw name.
// Returns ErrUnknownPhase when nothing matches.
func (t *Table) Lookup(ref string) (ID, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: id %d out of range", ErrUnknownPhase, n)
		}
		return ID(n), nil
	}
	for id, g := range t.groups {
		if g.Name != "" && strings.EqualFold(g.Name, ref) {
			return id, nil
		}
	}
	for id, n := range t.names {
		if strings.EqualFold(n, ref) {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPhase, ref)
}

// With returns a copy of t in which each override replaces the group with the
// same primary id, or is added when none exists. Raw names are kept.
func (t *Table) With(overrides ...Group) (*Table, error) {
	merged := make(map[ID]Group, len(t.groups)+len(overrides))
	for id, g := range t.groups {
		merged[id] = g
	}
	for _, o := range overrides {
		if o.Name == "" {
			o.Name = merged[o.ID].Name
		}
		merged[o.ID] = o
	}
	groups := make([]Group, 0, len(merged))
	for _, g := range merged {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })

	return build(t.names, groups)
}
