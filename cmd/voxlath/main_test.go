package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxlath/report"
	"github.com/katalvlaran/voxlath/store"
	"github.com/katalvlaran/voxlath/voxel"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGenerateAnalyze_JSON(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "slab.img")

	_, _, err := run(t, "generate", "slab", "--size", "4,5,6", "--axis", "y", "--phase", "CH", "--out", img)
	require.NoError(t, err)
	g, err := voxel.ReadFile(img)
	require.NoError(t, err)
	assert.Equal(t, voxel.Dims{X: 4, Y: 5, Z: 6}, g.Dims())

	out, _, err := run(t, "analyze", img, "--phase", "13", "--phase", "0", "--format", "json", "--workers", "2")
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, img, doc.Source)
	require.Len(t, doc.Records, 6)

	// Records are ordered by phase: porosity (absent) first, then CH.
	for _, row := range doc.Records[:3] {
		assert.Equal(t, 0, row.Phase)
		assert.Nil(t, row.Ratio, "porosity is absent")
	}
	ratios := map[string]float64{}
	for _, row := range doc.Records[3:] {
		require.NotNil(t, row.Ratio)
		ratios[row.Axis] = *row.Ratio
	}
	assert.Equal(t, map[string]float64{"x": 1, "y": 0, "z": 1}, ratios)
}

func TestAnalyze_StoreHistoryShow(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "fill.img")
	db := filepath.Join(dir, "runs.db")
	prom := filepath.Join(dir, "voxlath.prom")

	_, _, err := run(t, "generate", "fill", "--size", "3,3,3", "--out", img)
	require.NoError(t, err)

	text, _, err := run(t, "analyze", img, "--axis", "x", "--db", db, "--metrics-file", prom)
	require.NoError(t, err)
	assert.Contains(t, text, "Total porosity")
	assert.Contains(t, text, "1.0000")

	body, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(body), `voxlath_percolation_ratio{axis="x",phase="0"} 1`)

	st, err := store.Open(t.Context(), db)
	require.NoError(t, err)
	runs, err := st.List(t.Context(), 0)
	require.NoError(t, err)
	require.NoError(t, st.Close())
	require.Len(t, runs, 1)
	id := runs[0].ID

	hist, _, err := run(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, hist, id)
	assert.Contains(t, hist, "3x3x3")

	shown, _, err := run(t, "show", id, "--db", db, "--format", "json")
	require.NoError(t, err)
	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(shown), &doc))
	assert.Equal(t, id, doc.RunID)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, 27, doc.Records[0].PercolatedVoxels)

	_, _, err = run(t, "show", "nope", "--db", db)
	require.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "layers.img")
	_, _, err := run(t, "generate", "layered", "--size", "2,2,4", "--out", img)
	require.NoError(t, err)

	out, _, err := run(t, "stats", img)
	require.NoError(t, err)
	assert.Contains(t, out, "dims=2x2x4  voxels=16")
	assert.Contains(t, out, "C3S")
}

func TestConfigFileAndLogging(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "rod.img")
	cfgPath := filepath.Join(dir, "voxlath.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("analysis:\n  axes: [z]\noutput:\n  format: json\n"), 0o644))

	_, _, err := run(t, "generate", "rod", "--size", "3,3,5", "--out", img)
	require.NoError(t, err)

	out, logs, err := run(t, "--config", cfgPath, "--log-level", "debug", "--log-json", "analyze", img)
	require.NoError(t, err)
	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Records, 1)
	assert.Equal(t, "z", doc.Records[0].Axis)
	assert.Equal(t, 5, doc.Records[0].PercolatedVoxels)

	assert.Contains(t, logs, `"msg":"probe finished"`)
	for _, line := range strings.Split(strings.TrimSpace(logs), "\n") {
		assert.True(t, json.Valid([]byte(line)), "log line %q", line)
	}
}

func TestErrors(t *testing.T) {
	_, _, err := run(t, "analyze", filepath.Join(t.TempDir(), "missing.img"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "generate", "spiral", "--size", "2,2,2", "--out", filepath.Join(t.TempDir(), "x.img"))
	require.Error(t, err)

	_, _, err = run(t, "generate", "fill", "--size", "2,2", "--out", filepath.Join(t.TempDir(), "x.img"))
	require.Error(t, err)

	_, _, err = run(t, "history")
	require.ErrorIs(t, err, errNoDB)

	_, _, err = run(t, "--log-level", "loud", "history")
	require.Error(t, err)
}

// TestAnalyze_NoReportWhenSinkFails checks that a failing --db or
// --metrics-file leaves stdout empty.
func TestAnalyze_NoReportWhenSinkFails(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "fill.img")
	_, _, err := run(t, "generate", "fill", "--size", "2,2,2", "--out", img)
	require.NoError(t, err)

	// a directory cannot be opened as a database
	out, _, err := run(t, "analyze", img, "--db", dir)
	require.Error(t, err)
	assert.Empty(t, out)

	out, _, err = run(t, "analyze", img, "--metrics-file", filepath.Join(dir, "missing", "voxlath.prom"))
	require.Error(t, err)
	assert.Empty(t, out)

	reportPath := filepath.Join(dir, "report.txt")
	_, _, err = run(t, "analyze", img, "--db", dir, "--out", reportPath)
	require.Error(t, err)
	_, statErr := os.Stat(reportPath)
	assert.True(t, os.IsNotExist(statErr), "report file must not be created")
}

func TestExecute_ExitStatus(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "fill.img")

	var stdout, stderr bytes.Buffer
	code := execute(t.Context(), []string{"generate", "fill", "--size", "2,2,2", "--out", img}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())

	stdout.Reset()
	code = execute(t.Context(), []string{"analyze", img}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Total porosity")

	stdout.Reset()
	stderr.Reset()
	code = execute(t.Context(), []string{"analyze", filepath.Join(dir, "missing.img")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "voxlath: "), "stderr %q", stderr.String())

	stderr.Reset()
	code = execute(t.Context(), []string{"analyze", img, "--db", dir}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "voxlath: ")
}
