package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText renders s as two tables: raw ids, then alias groups.
func WriteText(w io.Writer, s *Summary) error {
	if _, err := fmt.Fprintf(w, "dims=%s  voxels=%d\n", s.Dims, s.Total); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	section := func(title string, rows []PhaseStats) {
		if len(rows) == 0 {
			return
		}
		fmt.Fprintf(tw, "\n%s\n", title)
		fmt.Fprintln(tw, "id\tname\tcount\tfraction\tclusters\tlargest\tx mean±sd\ty mean±sd\tz mean±sd\t")
		for _, ps := range rows {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%.4f\t%d\t%d\t", ps.ID, ps.Name, ps.Count, ps.Fraction, ps.Clusters, ps.LargestCluster)
			for _, sl := range ps.Slices {
				fmt.Fprintf(tw, "%.4f±%.4f\t", sl.Mean, sl.StdDev)
			}
			fmt.Fprintln(tw)
		}
	}
	section("raw phases", s.Raw)
	section("groups", s.Groups)

	return tw.Flush()
}

// WriteJSON writes s as an indented JSON document; slice statistics are
// listed in x, y, z order.
func WriteJSON(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Dims [3]int `json:"dims"`
		*Summary
	}{Dims: [3]int{s.Dims.X, s.Dims.Y, s.Dims.Z}, Summary: s})
}
