package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
log:
  level: "debug"
  format: "console"
discovery:
  root: "/data/task2-trainSymb2014"
  marker: "trainingSymbols"
  file_prefix: "iso"
  exclude: ["iso_GT.txt", "crohme_data"]
ground_truth:
  path: "/data/task2-trainSymb2014/trainingSymbols/iso_GT.txt"
extraction:
  workers: 4
  progress_interval: 50
dataset:
  output_path: "features.csv"
metrics:
  enabled: true
  addr: ":9102"
`

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "/data/task2-trainSymb2014", cfg.Discovery.Root)
	assert.Equal(t, 4, cfg.Extraction.Workers)
	assert.Equal(t, 50, cfg.Extraction.ProgressInterval)
	assert.Equal(t, "features.csv", cfg.Dataset.OutputPath)
	assert.Equal(t, ":9102", cfg.Metrics.Addr)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := createTempConfigFile(t, "log:\n  level: \"info\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultDiscoveryMarker, cfg.Discovery.Marker)
	assert.Equal(t, DefaultFilePrefix, cfg.Discovery.FilePrefix)
	assert.Contains(t, cfg.Discovery.Exclude, DefaultGroundTruthName)
	assert.Equal(t, DefaultDatasetOutput, cfg.Dataset.OutputPath)
	assert.Equal(t, DefaultProgressInterval, cfg.Extraction.ProgressInterval)
	assert.Equal(t, DefaultSettleDelay, cfg.Watch.SettleDelay)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", "log:\n  level: \"loud\"\n"},
		{"negative workers", "extraction:\n  workers: -1\n"},
		{"metrics enabled without addr", "metrics:\n  enabled: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempConfigFile(t, tt.yaml)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INK_LOG_LEVEL", "warn")
	t.Setenv("INK_DISCOVERY_ROOT", "/srv/crohme")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/srv/crohme", cfg.Discovery.Root)
}
