package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SimConfig is the YAML scenario configuration. Command-line flags override
// any value set here.
type SimConfig struct {
	// GeoJSON is the path to an Overpass export; empty means synthetic.
	GeoJSON string `yaml:"geojson"`

	// MaxLines caps transmission line features processed by the loader.
	MaxLines int `yaml:"maxLines"`

	// FaultLine forces a fault on a specific line id; nil selects a bridge.
	FaultLine *int64 `yaml:"faultLine"`

	// Seed makes fault selection reproducible; 0 seeds from entropy.
	Seed int64 `yaml:"seed"`

	// Synthetic chooses a built-in topology (path, cycle, star, tree) used
	// when no GeoJSON file is given. Size is its bus count.
	Synthetic string `yaml:"synthetic"`
	Size      int    `yaml:"size"`
}

// defaultSimConfig mirrors the reference scenario defaults.
func defaultSimConfig() SimConfig {
	return SimConfig{
		MaxLines:  4200,
		Synthetic: "tree",
		Size:      500,
	}
}

// loadSimConfig reads a YAML scenario file into cfg when path is non-empty.
func loadSimConfig(path string, cfg *SimConfig) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	return nil
}
