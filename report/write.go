package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/voxlath/phase"
)

// NotApplicable is the text rendering of an undefined ratio.
const NotApplicable = "n/a"

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Write renders r in the named format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatText, "":
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText renders r as a human-readable table, one block per phase.
func WriteText(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "run %s  source=%s  dims=%s  resolution=%.2f\n",
		r.RunID, orDash(r.Source), r.Dims, r.Resolution); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	var last phase.ID
	for i, rec := range r.records {
		if i == 0 || rec.Phase != last {
			fmt.Fprintf(tw, "\nphase %d  %s  members=%s\n", rec.Phase, rec.Name, joinIDs(rec.Members))
			fmt.Fprintln(tw, "axis\ttotal\tconnected\tpercolated\tcomponents\tpercolating\tratio\t")
			last = rec.Phase
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%s\t\n",
			rec.Axis, rec.TotalVoxels, rec.ConnectedVoxels, rec.PercolatedVoxels,
			rec.Components, rec.PercolatingComponents, formatRatio(rec))
	}

	return tw.Flush()
}

func formatRatio(rec Record) string {
	v, ok := rec.Ratio()
	if !ok {
		return NotApplicable
	}

	return strconv.FormatFloat(v, 'f', 4, 64)
}

func joinIDs(ids []phase.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}

	return strings.Join(parts, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}

// Document is the JSON shape of a report.
type Document struct {
	RunID      string        `json:"run_id"`
	Source     string        `json:"source,omitempty"`
	Dims       [3]int        `json:"dims"`
	Resolution float64       `json:"resolution"`
	CreatedAt  time.Time     `json:"created_at"`
	Records    []DocumentRow `json:"records"`
}

// DocumentRow is the JSON shape of a record. Ratio is null when not applicable.
type DocumentRow struct {
	Phase                 int      `json:"phase"`
	Name                  string   `json:"name"`
	Members               []int    `json:"members"`
	Axis                  string   `json:"axis"`
	TotalVoxels           int      `json:"total_voxels"`
	ConnectedVoxels       int      `json:"connected_voxels"`
	PercolatedVoxels      int      `json:"percolated_voxels"`
	Components            int      `json:"components"`
	PercolatingComponents int      `json:"percolating_components"`
	Ratio                 *float64 `json:"ratio"`
}

// ToDocument converts r to its JSON shape.
func ToDocument(r *Report) Document {
	doc := Document{
		RunID:      r.RunID,
		Source:     r.Source,
		Dims:       [3]int{r.Dims.X, r.Dims.Y, r.Dims.Z},
		Resolution: r.Resolution,
		CreatedAt:  r.CreatedAt,
		Records:    make([]DocumentRow, 0, len(r.records)),
	}
	for _, rec := range r.records {
		members := make([]int, len(rec.Members))
		for i, m := range rec.Members {
			members[i] = int(m)
		}
		row := DocumentRow{
			Phase:                 int(rec.Phase),
			Name:                  rec.Name,
			Members:               members,
			Axis:                  rec.Axis.String(),
			TotalVoxels:           rec.TotalVoxels,
			ConnectedVoxels:       rec.ConnectedVoxels,
			PercolatedVoxels:      rec.PercolatedVoxels,
			Components:            rec.Components,
			PercolatingComponents: rec.PercolatingComponents,
		}
		if v, ok := rec.Ratio(); ok {
			row.Ratio = &v
		}
		doc.Records = append(doc.Records, row)
	}

	return doc
}

// WriteJSON writes r as an indented JSON document.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(ToDocument(r))
}
