// Package config loads voxlath settings from a YAML file layered over
// built-in defaults. Command-line flags override the loaded values.
//
// Example file:
//
//	log:
//	  level: debug
//	  json: true
//	analysis:
//	  phases: ["0", "C-S-H"]
//	  axes: [x, z]
//	  workers: 4
//	  frontier_limit: 0
//	output:
//	  format: json
//	  db: runs.db
//	  metrics_file: voxlath.prom
//	phases:
//	  - id: 0
//	    name: Connected porosity
//	    aliases: [55]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/voxlath/logging"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/report"
	"github.com/katalvlaran/voxlath/voxel"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full settings tree.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Phases   []PhaseConfig  `yaml:"phases,omitempty"`
}

// LogConfig selects the console logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	Dir   string `yaml:"dir,omitempty"`
}

// AnalysisConfig drives the sweep. Phases are ids or names accepted by
// phase.Table.Lookup.
type AnalysisConfig struct {
	Phases        []string `yaml:"phases"`
	Axes          []string `yaml:"axes"`
	Workers       int      `yaml:"workers"`
	FrontierLimit int      `yaml:"frontier_limit"`
}

// OutputConfig selects where results go. Empty DB and MetricsFile disable
// persistence and metrics export.
type OutputConfig struct {
	Format      string `yaml:"format"`
	DB          string `yaml:"db,omitempty"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// PhaseConfig overrides or adds one alias group of the phase table.
type PhaseConfig struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name,omitempty"`
	Aliases []int  `yaml:"aliases,omitempty"`
}

// Default returns the settings used when no file is given: porosity along
// all three axes, sequentially, text output.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Analysis: AnalysisConfig{
			Phases:  []string{"0"},
			Axes:    []string{"x", "y", "z"},
			Workers: 1,
		},
		Output: OutputConfig{Format: report.FormatText},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field and the resulting phase table.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	if _, err := c.AxisList(); err != nil {
		return err
	}
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("%w: analysis.workers must be >= 1, got %d", ErrInvalidConfig, c.Analysis.Workers)
	}
	if c.Analysis.FrontierLimit < 0 {
		return fmt.Errorf("%w: analysis.frontier_limit must be >= 0, got %d", ErrInvalidConfig, c.Analysis.FrontierLimit)
	}
	switch c.Output.Format {
	case report.FormatText, report.FormatJSON:
	default:
		return fmt.Errorf("%w: output.format %q (want text or json)", ErrInvalidConfig, c.Output.Format)
	}
	t, err := c.PhaseTable()
	if err != nil {
		return err
	}
	if _, err := c.PhaseIDs(t); err != nil {
		return err
	}

	return nil
}

// LogLevel returns the parsed log level, info when unset.
func (c Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Log.Level)
	return l
}

// AxisList parses analysis.axes; an empty list means all three.
func (c Config) AxisList() ([]voxel.Axis, error) {
	if len(c.Analysis.Axes) == 0 {
		return voxel.Axes(), nil
	}
	out := make([]voxel.Axis, 0, len(c.Analysis.Axes))
	for _, s := range c.Analysis.Axes {
		a, err := voxel.ParseAxis(s)
		if err != nil {
			return nil, fmt.Errorf("%w: analysis.axes: %w", ErrInvalidConfig, err)
		}
		out = append(out, a)
	}

	return out, nil
}

// PhaseTable applies the phases section to phase.DefaultTable.
func (c Config) PhaseTable() (*phase.Table, error) {
	groups := make([]phase.Group, 0, len(c.Phases))
	for i, pc := range c.Phases {
		id, err := toID(pc.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: phases[%d].id: %w", ErrInvalidConfig, i, err)
		}
		g := phase.Group{ID: id, Name: pc.Name}
		for _, a := range pc.Aliases {
			aid, err := toID(a)
			if err != nil {
				return nil, fmt.Errorf("%w: phases[%d].aliases: %w", ErrInvalidConfig, i, err)
			}
			g.Aliases = append(g.Aliases, aid)
		}
		groups = append(groups, g)
	}

	t, err := phase.DefaultTable().With(groups...)
	if err != nil {
		return nil, fmt.Errorf("%w: phases: %w", ErrInvalidConfig, err)
	}

	return t, nil
}

// PhaseIDs resolves analysis.phases against t.
func (c Config) PhaseIDs(t *phase.Table) ([]phase.ID, error) {
	ids := make([]phase.ID, 0, len(c.Analysis.Phases))
	for _, ref := range c.Analysis.Phases {
		id, err := t.Lookup(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: analysis.phases: %w", ErrInvalidConfig, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func toID(n int) (phase.ID, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("id %d outside 0..255", n)
	}

	return phase.ID(n), nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
