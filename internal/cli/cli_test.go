package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netresil/analysis"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readCSV(t *testing.T, out string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestStructuralConnectivityCSV(t *testing.T) {
	out, stderr, err := run(t, "structural", "-n", "ER", "-N", "60", "-p", "0.08",
		"--num-points", "4", "--sim-seed", "3", "--workers", "2")
	require.NoError(t, err)

	records := readCSV(t, out)
	require.Len(t, records, 5)
	assert.Equal(t, []string{"title", "frequency", "removed", "diameter/error", "diameter/attack"}, records[0])
	assert.Equal(t, "ER network: Diameter", records[1][0])
	assert.Equal(t, "0", records[1][2])
	assert.Equal(t, records[1][3], records[1][4], "no removal at the first level")
	assert.Contains(t, stderr, "run_id=")
}

func TestStructuralReproducible(t *testing.T) {
	args := []string{"structural", "-n", "SF", "-N", "80", "--num-points", "3", "--sim-seed", "11", "-f", "fragmentation"}
	first, _, err := run(t, args...)
	require.NoError(t, err)
	second, _, err := run(t, append(args, "--workers", "1")...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestERSFProducesTwoSheets(t *testing.T) {
	out, _, err := run(t, "structural", "-n", "ER_SF", "-N", "40", "--num-points", "2", "--format", "json")
	require.NoError(t, err)

	var sheets []jsonSheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheets))
	require.Len(t, sheets, 2)
	assert.Equal(t, "ER network: Diameter", sheets[0].Title)
	assert.Equal(t, "SF network: Diameter", sheets[1].Title)
	assert.Len(t, sheets[0].Rows, 2)
}

func TestEpidemicFeatures(t *testing.T) {
	out, _, err := run(t, "epidemic", "-n", "ER", "-N", "50", "--num-points", "3",
		"--num-sim", "5", "--steps", "10", "--sim-seed", "5", "-f", "peak,total_infected")
	require.NoError(t, err)

	records := readCSV(t, out)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"title", "frequency", "removed",
		"peak/error", "peak/attack", "total_infected/error", "total_infected/attack"}, records[0])
}

func TestEpidemicRejectsUnknownFeature(t *testing.T) {
	_, _, err := run(t, "epidemic", "-f", "area", "-N", "20")
	require.Error(t, err)
}

func TestStructuralRejectsUnknownFeature(t *testing.T) {
	_, _, err := run(t, "structural", "-f", "clustering", "-N", "20")
	require.ErrorContains(t, err, "unknown structural feature")
}

func TestInvalidFlagValue(t *testing.T) {
	_, _, err := run(t, "structural", "--max-rate", "0")
	require.ErrorContains(t, err, "MaxRemovalRate")

	_, _, err = run(t, "structural", "-n", "airports")
	require.ErrorContains(t, err, "EdgeList")
}

func TestConfigFileAndOutputs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "netresil.yaml")
	outPath := filepath.Join(dir, "out.csv")
	metricsPath := filepath.Join(dir, "netresil.prom")
	logPath := filepath.Join(dir, "netresil.log")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
network:
  kind: SF
  n: 30
sweep:
  num_points: 2
random:
  simulation_seed: 1
output:
  format: csv
`), 0o644))

	_, _, err := run(t, "--config", cfgPath, "structural", "-o", outPath,
		"--metrics-file", metricsPath, "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "title,frequency,removed"))
	assert.Contains(t, string(data), "SF network")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `netresil_sweeps_total{kind="structural"} 2`)
	assert.Contains(t, string(prom), `netresil_graph_nodes{network="SF"} 30`)

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"msg":"network ready"`)
}

func TestDegreeCommand(t *testing.T) {
	out, _, err := run(t, "degree", "-n", "SF", "-N", "300", "-p", "0.02", "--format", "json")
	require.NoError(t, err)

	var sheets []jsonSheet
	require.NoError(t, json.Unmarshal([]byte(out), &sheets))
	require.Len(t, sheets, 2)
	assert.Equal(t, []string{"k", "pdf"}, sheets[0].Columns)
	assert.Equal(t, []string{"average_degree", "alpha", "beta", "r_squared"}, sheets[1].Columns)

	var total float64
	for _, row := range sheets[0].Rows {
		total += *row[1]
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestRenderTable(t *testing.T) {
	res := analysis.Result{
		Title:       "Diameter",
		Frequencies: []float64{0, 0.1},
		Counts:      []int{0, 1},
		Curves: []analysis.Curve{
			{Name: "diameter/error", Values: []float64{2.5, 2.75}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, render(&buf, FormatTable, []sheet{resultSheet("ER", res)}))
	out := buf.String()
	assert.Contains(t, out, "ER network: Diameter")
	assert.Contains(t, out, "diameter/error")
	assert.Contains(t, out, "2.75")
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatCSV, resolveFormat(FormatAuto, &buf))
	assert.Equal(t, FormatJSON, resolveFormat(FormatJSON, &buf))
	require.Error(t, render(&buf, "xml", nil))
}

func TestFailedRunStillWritesMetricsAndLog(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "netresil.prom")
	logPath := filepath.Join(dir, "netresil.log")

	_, _, err := run(t, "structural", "-n", "airports", "--edge-list", filepath.Join(dir, "missing.csv"),
		"--metrics-file", metricsPath, "--log-file", logPath, "--log-level", "debug")
	require.Error(t, err)

	_, err = os.Stat(metricsPath)
	require.NoError(t, err, "metrics written after a failed run")

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `"msg":"metrics written"`)
}
