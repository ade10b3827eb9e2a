package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netresil/network"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netresil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ER", cfg.Network.Kind)
	assert.Equal(t, 100, cfg.Network.N)
	assert.Equal(t, uint64(102), cfg.Random.NetworkSeed)
	assert.Nil(t, cfg.Random.SimulationSeed)
	assert.Equal(t, 15, cfg.Sweep.NumPoints)
	assert.Equal(t, 50, cfg.Epidemic.Duration)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
network:
  kind: SF
  n: 500
random:
  simulation_seed: 7
sweep:
  max_removal_rate: 0.2
epidemic:
  num_simulations: 10
  features: [peak]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "SF", cfg.Network.Kind)
	assert.Equal(t, 500, cfg.Network.N)
	assert.Equal(t, 0.04, cfg.Network.P, "untouched fields keep defaults")
	require.NotNil(t, cfg.Random.SimulationSeed)
	assert.Equal(t, uint64(7), *cfg.Random.SimulationSeed)
	assert.Equal(t, 0.2, cfg.Sweep.MaxRemovalRate)
	assert.Equal(t, []string{"peak"}, cfg.Epidemic.Features)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "network: [unclosed"))
	require.ErrorContains(t, err, "failed to parse")

	_, err = Load(writeConfig(t, "sweep:\n  max_removal_rate: 1.5\n"))
	require.ErrorContains(t, err, "MaxRemovalRate")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"kind", func(c *Config) { c.Network.Kind = "grid" }, "must be one of"},
		{"airports without file", func(c *Config) { c.Network.Kind = "airports" }, "EdgeList: field is required"},
		{"zero rate", func(c *Config) { c.Sweep.MaxRemovalRate = 0 }, "must be greater than"},
		{"points", func(c *Config) { c.Sweep.NumPoints = 0 }, "must be at least 1"},
		{"mu", func(c *Config) { c.Epidemic.Mu = 2 }, "must not exceed 1"},
		{"feature", func(c *Config) { c.Epidemic.Features = []string{"peak", "area"} }, "Features[1]"},
		{"format", func(c *Config) { c.Output.Format = "xml" }, "Format"},
		{"comma", func(c *Config) { c.Network.Comma = ";;" }, "must have length 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	var nilCfg *Config
	require.Error(t, nilCfg.Validate())
}

func TestNetworkSpecAirports(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.csv")
	data := "Airline,Source airport ID,Destination airport ID\n" +
		"2B,2965,2990\n" +
		"2B,2966,2962\n" +
		"2B,\\N,2962\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := Default()
	cfg.Network.Kind = "airports"
	cfg.Network.EdgeList = path
	require.NoError(t, cfg.Validate())

	nets, err := network.Build(cfg.NetworkSpec())
	require.NoError(t, err)
	require.Len(t, nets, 1)
	assert.Equal(t, 4, nets[0].Graph.VertexCount())
	assert.Equal(t, 2, nets[0].Graph.EdgeCount())
	assert.Equal(t, 1, nets[0].Report.Missing)
}

func TestSIRParams(t *testing.T) {
	p := Default().SIRParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 0.2, p.Mu)
	assert.Equal(t, 1, p.InfectedT0)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("sweep finished", "levels", 3)

	assert.NotContains(t, stderr.String(), "hidden")
	assert.Contains(t, stderr.String(), "sweep finished")
	assert.True(t, strings.HasPrefix(file.String(), "{"))
	assert.Contains(t, file.String(), `"levels":3`)
}

func TestSetupLoggerFile(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "netresil.log")
	logger, cleanup := SetupLogger(&stderr, path, slog.LevelInfo)
	logger.Info("hello")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	logger, cleanup = SetupLogger(&stderr, "", slog.LevelInfo)
	require.NotNil(t, logger)
	require.NoError(t, cleanup())
}
