package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/voxlath/config"
	"github.com/katalvlaran/voxlath/logging"
	"github.com/katalvlaran/voxlath/phase"
)

// app is the state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgPath  string
	logLevel string
	logJSON  bool

	cfg   config.Config
	table *phase.Table
	log   *logging.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "voxlath",
		Short:         "Phase connectivity and percolation analysis of 3D voxel images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.log == nil {
				return nil
			}
			return a.log.Close()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		newAnalyzeCmd(a),
		newStatsCmd(a),
		newGenerateCmd(a),
		newHistoryCmd(a),
		newShowCmd(a),
	)

	return root
}

// setup loads the configuration, applies global flag overrides and builds
// the logger and phase table.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	table, err := cfg.PhaseTable()
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{
		Level:   cfg.LogLevel(),
		JSON:    cfg.Log.JSON,
		Output:  a.stderr,
		Service: "voxlath",
		LogDir:  cfg.Log.Dir,
	})
	if err != nil {
		return err
	}

	a.cfg, a.table, a.log = cfg, table, log
	a.log.Debug("configuration loaded", "config", a.cfgPath, "command", cmd.Name())

	return nil
}

// output runs fn against path, or stdout when path is empty or "-".
func (a *app) output(path string, fn func(io.Writer) error) error {
	if path == "" || path == "-" {
		return fn(a.stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
