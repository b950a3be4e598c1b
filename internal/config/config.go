// Package config handles server configuration loading and shared data
// structures.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Collections []Collection `yaml:"collections" json:"collections"`
}

// Collection registers one GeoJSON document under a serving name.
type Collection struct {
	Name string `yaml:"name" json:"name"`
	Path string `yaml:"path" json:"path"`

	// CRS is the default output frame for this entry; empty means ENU.
	// Requests may override it per fetch.
	CRS     string   `yaml:"crs,omitempty" json:"crs,omitempty"`
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
