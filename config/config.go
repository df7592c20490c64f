package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the dashboard settings. All fields have working defaults,
// so running without a config file is fine.
type Config struct {
	Listen        string `yaml:"listen"`
	DataPath      string `yaml:"data_path"`
	Title         string `yaml:"title"`
	HistogramBins int    `yaml:"histogram_bins"`
	NeighborK     int    `yaml:"neighbor_k"`
}

// Default returns the built-in settings. The data path matches the CSV
// name the dashboard historically looked for.
func Default() Config {
	return Config{
		Listen:        ":8080",
		DataPath:      "sundai_projects_ready.csv",
		Title:         "Project Explorer Analytics",
		HistogramBins: 20,
		NeighborK:     3,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults; a named but unreadable or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}
	if c.HistogramBins <= 0 {
		return fmt.Errorf("histogram_bins must be positive, got %d", c.HistogramBins)
	}
	if c.NeighborK <= 0 {
		return fmt.Errorf("neighbor_k must be positive, got %d", c.NeighborK)
	}
	return nil
}
