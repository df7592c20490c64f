package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "sundai_projects_ready.csv", cfg.DataPath)
	assert.Equal(t, 20, cfg.HistogramBins)
	assert.Equal(t, 3, cfg.NeighborK)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen: \":9090\"\ndata_path: projects.csv\nhistogram_bins: 10\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "projects.csv", cfg.DataPath)
	assert.Equal(t, 10, cfg.HistogramBins)
	// Untouched fields keep their defaults.
	assert.Equal(t, 3, cfg.NeighborK)
	assert.Equal(t, Default().Title, cfg.Title)
}

func TestLoadMissingNamedFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("histogram_bins: -1\n"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "histogram_bins")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"missing listen", func(c *Config) { c.Listen = "" }, true},
		{"missing data path", func(c *Config) { c.DataPath = "" }, true},
		{"zero bins", func(c *Config) { c.HistogramBins = 0 }, true},
		{"zero neighbors", func(c *Config) { c.NeighborK = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
