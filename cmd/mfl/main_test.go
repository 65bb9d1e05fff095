package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTaxesCommand(t *testing.T) {
	out, err := execute(t, "taxes", "--salary", "75,000", "--state", "Texas")
	require.NoError(t, err)
	assert.Contains(t, out, "$8,341.00")
	assert.Contains(t, out, "$60,921.50")
	assert.Contains(t, out, "18.77%")
}

func TestTaxesCommand_JSON(t *testing.T) {
	out, err := execute(t, "taxes", "--salary", "75000", "--state", "Texas", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"federal_tax": "8341"`)
}

func TestTaxesCommand_BadSalary(t *testing.T) {
	_, err := execute(t, "taxes", "--salary", "75k")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "digits only")
}

func TestGrowthCommand(t *testing.T) {
	out, err := execute(t, "growth", "--annual", "1", "--years", "2", "--return", "0.5", "--age", "30")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "YEAR")
	assert.Contains(t, lines[3], "32")
	assert.Contains(t, lines[3], "$4")
}

func TestGrowthCommand_BadReturn(t *testing.T) {
	_, err := execute(t, "growth", "--annual", "1", "--return", "-1")
	assert.Error(t, err)
}

func TestGrowthCommand_YearsOutOfRange(t *testing.T) {
	for _, years := range []string{"-1", "121", "9223372036854775807"} {
		t.Run(years, func(t *testing.T) {
			out, err := execute(t, "growth", "--annual", "1000", "--years", years)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "--years")
			assert.NotContains(t, out, "YEAR")
		})
	}

	_, err := execute(t, "growth", "--annual", "1000", "--years", "120", "--json")
	assert.NoError(t, err)
}

func TestMilestonesCommand(t *testing.T) {
	out, err := execute(t, "milestones", "--annual", "10000", "--return", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "$100,000")
	assert.Contains(t, out, "10 years (age 35)")
	assert.Contains(t, out, "50 years (age 75)")
	assert.NotContains(t, out, "$1,000,000")

	out, err = execute(t, "milestones", "--annual", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "No milestone reached")
}

func TestStatesCommand(t *testing.T) {
	out, err := execute(t, "states")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 50)
	assert.True(t, strings.HasPrefix(lines[0], "Alabama"))
}

func TestPlanCommand_Console(t *testing.T) {
	out, err := execute(t, "plan", "--salary", "75,000", "--state", "Texas", "--percent", "15", "--age", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "MONEY FOR LIFE")
	assert.Contains(t, out, "PLAN 1: Baseline")
	assert.Contains(t, out, "$502,602")
}

func TestPlanCommand_WritesReport(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "plan", "--salary", "75000", "--state", "Texas", "--format", "pdf", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	matches, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestPlanCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "plan", "--salary", "75000", "--state", "Texas", "--format", "xml", "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestExampleAndRunCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")

	out, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = execute(t, "example", path)
	require.Error(t, err, "refuses to overwrite")
	_, err = execute(t, "example", "--force", path)
	require.NoError(t, err)

	out, err = execute(t, "run", "--config", path, "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "INVESTMENT PLAN SUMMARY")
	assert.Contains(t, out, "Current Plan:")
	assert.Contains(t, out, "Start at 35:")

	dir := t.TempDir()
	_, err = execute(t, "run", "--config", path, "--format", "all", "--out", dir)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRunCommand_MissingConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
