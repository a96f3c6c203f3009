package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/config"
	"github.com/katalvlaran/voxlath/logging"
	"github.com/katalvlaran/voxlath/phase"
	"github.com/katalvlaran/voxlath/voxel"
)

const sample = `
log:
  level: debug
  json: true
analysis:
  phases: ["0", "C-S-H", "ettringite"]
  axes: [z, x]
  workers: 4
  frontier_limit: 1000
output:
  format: json
  db: runs.db
  metrics_file: voxlath.prom
phases:
  - id: 0
    name: Connected porosity
    aliases: [55]
  - id: 40
    aliases: [41, 42]
`

func TestDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, logging.LevelInfo, cfg.LogLevel())
	assert.Equal(t, 1, cfg.Analysis.Workers)
	axes, err := cfg.AxisList()
	require.NoError(t, err)
	assert.Equal(t, voxel.Axes(), axes)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxlath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, logging.LevelDebug, cfg.LogLevel())
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, 1000, cfg.Analysis.FrontierLimit)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "runs.db", cfg.Output.DB)
	assert.Equal(t, "voxlath.prom", cfg.Output.MetricsFile)

	axes, err := cfg.AxisList()
	require.NoError(t, err)
	assert.Equal(t, []voxel.Axis{voxel.Z, voxel.X}, axes)

	tbl, err := cfg.PhaseTable()
	require.NoError(t, err)
	por := tbl.Resolve(phase.Porosity)
	assert.Equal(t, "Connected porosity", por.Name)
	assert.Equal(t, []phase.ID{0, 55}, por.Members())
	assert.Equal(t, []phase.ID{40, 41, 42}, tbl.Resolve(40).Members())

	ids, err := cfg.PhaseIDs(tbl)
	require.NoError(t, err)
	assert.Equal(t, []phase.ID{phase.Porosity, phase.CSH, phase.Ettringite}, ids)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("analysis:\n  workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Analysis.Workers)
	assert.Equal(t, []string{"0"}, cfg.Analysis.Phases)
	assert.Equal(t, "text", cfg.Output.Format)

	empty, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), empty)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "analysis:\n  threads: 2\n",
		"bad level":      "log:\n  level: loud\n",
		"bad axis":       "analysis:\n  axes: [w]\n",
		"zero workers":   "analysis:\n  workers: 0\n",
		"neg frontier":   "analysis:\n  frontier_limit: -1\n",
		"bad format":     "output:\n  format: xml\n",
		"id range":       "phases:\n  - id: 300\n",
		"alias conflict": "phases:\n  - id: 40\n    aliases: [55]\n",
		"too many":       "phases:\n  - id: 40\n    aliases: [41, 42, 43, 44]\n",
		"unknown phase":  "analysis:\n  phases: [unobtainium]\n",
		"not yaml":       "analysis: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Output.DB = "x.db"
	data, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
