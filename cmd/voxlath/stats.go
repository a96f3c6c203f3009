package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/voxlath/report"
	"github.com/katalvlaran/voxlath/stats"
)

func newStatsCmd(a *app) *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize phase counts, volume fractions and per-slice spread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			s, err := stats.Compute(g, a.table)
			if err != nil {
				return err
			}

			return a.output(out, func(w io.Writer) error {
				if format == report.FormatJSON {
					return stats.WriteJSON(w, s)
				}
				return stats.WriteText(w, s)
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "output format: text or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")

	return cmd
}
