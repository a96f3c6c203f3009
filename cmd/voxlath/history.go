package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/voxlath/report"
	"github.com/katalvlaran/voxlath/store"
)

var errNoDB = errors.New("no database: pass --db or set output.db")

// openStore opens the database named by the flag or the configuration.
func (a *app) openStore(cmd *cobra.Command, flagDB string) (*store.Store, error) {
	db := a.cfg.Output.DB
	if cmd.Flags().Changed("db") {
		db = flagDB
	}
	if db == "" {
		return nil, errNoDB
	}

	return store.Open(cmd.Context(), db)
}

func newHistoryCmd(a *app) *cobra.Command {
	var (
		db    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore(cmd, db)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "run id\tcreated\tsource\tdims\trecords\t")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Source, r.Dims, r.Records)
			}

			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite database")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to list, 0 for all")

	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var db, format, out string
	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print a stored report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			st, err := a.openStore(cmd, db)
			if err != nil {
				return err
			}
			defer st.Close()

			rep, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.output(out, func(w io.Writer) error {
				return report.Write(w, rep, format)
			})
		},
	}
	cmd.Flags().StringVar(&db, "db", "", "SQLite database")
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "output format: text or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")

	return cmd
}
