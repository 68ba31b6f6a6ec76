package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firesim/retirement-simulator/internal/calculation"
	"github.com/firesim/retirement-simulator/internal/config"
	"github.com/firesim/retirement-simulator/internal/output"
)

// TestOutputGeneration drives the same pipeline as the CLI: generate the
// example configuration, save it, reload it, run every scenario and render
// reports in each format.
func TestOutputGeneration(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })

	output.SetNowFunc(func() time.Time { return time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC) })
	t.Cleanup(func() { output.SetNowFunc(time.Now) })

	parser := config.NewInputParser()
	example := parser.CreateExampleConfiguration()
	require.NoError(t, output.SaveConfiguration(example, "example_config.yaml"))

	cfg, err := parser.LoadFromFile("example_config.yaml")
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, len(example.Scenarios))

	engine := calculation.NewCalculationEngine()
	results, err := engine.RunScenarios(cfg)
	require.NoError(t, err)

	assert.NoError(t, output.GenerateReport(results, "console"))
	assert.NoError(t, output.GenerateReport(results, "json"))
	assert.NoError(t, output.GenerateReport(results, "csv"))
	assert.NoError(t, output.GenerateReport(results, "html"))

	for _, name := range []string{
		"retirement_report_20250607_080910.txt",
		"retirement_report_20250607_080910.json",
		"retirement_report_20250607_080910.csv",
		"retirement_report_20250607_080910.html",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected report file %s", name)
		assert.Positive(t, info.Size())
	}
}
