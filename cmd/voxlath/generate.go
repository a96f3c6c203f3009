package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/voxlath/pattern"
	"github.com/katalvlaran/voxlath/voxel"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		size, fg, bg, axis, out string
		period                  int
	)
	cmd := &cobra.Command{
		Use:   "generate <pattern>",
		Short: "Write a synthetic voxel image: " + strings.Join(pattern.Names(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDims(size)
			if err != nil {
				return err
			}
			fgID, err := a.table.Lookup(fg)
			if err != nil {
				return err
			}
			bgID, err := a.table.Lookup(bg)
			if err != nil {
				return err
			}
			ax, err := voxel.ParseAxis(axis)
			if err != nil {
				return err
			}

			g, err := pattern.Generate(args[0], d,
				pattern.WithPhase(fgID),
				pattern.WithBackground(bgID),
				pattern.WithAxis(ax),
				pattern.WithPeriod(period),
			)
			if err != nil {
				return err
			}
			if err := voxel.WriteFile(out, g); err != nil {
				return err
			}
			a.log.Info("pattern written", "pattern", args[0], "dims", d.String(), "path", out)

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&size, "size", "", "grid size as X,Y,Z")
	fl.StringVar(&fg, "phase", "0", "foreground phase id or name")
	fl.StringVar(&bg, "background", "1", "background phase id or name")
	fl.StringVar(&axis, "axis", "z", "orientation axis of slab, rod and layered")
	fl.IntVar(&period, "period", 1, "layer thickness of the layered pattern")
	fl.StringVarP(&out, "out", "o", "", "output file")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// parseDims parses "X,Y,Z".
func parseDims(s string) (voxel.Dims, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return voxel.Dims{}, fmt.Errorf("size %q: want X,Y,Z", s)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v <= 0 {
			return voxel.Dims{}, fmt.Errorf("size %q: %q is not a positive integer", s, p)
		}
		n[i] = v
	}

	return voxel.Dims{X: n[0], Y: n[1], Z: n[2]}, nil
}
