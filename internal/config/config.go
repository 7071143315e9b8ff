package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults for a freshly started world.
const (
	DefaultWidth  = 200
	DefaultHeight = 150
	DefaultScale  = 4
	DefaultTPS    = 60
	DefaultSeed   = 42
	DefaultBrush  = 2
)

// Config holds the tunables shared by every frontend.
type Config struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Scale       int     `yaml:"scale"`
	TPS         int     `yaml:"tps"`
	Seed        int64   `yaml:"seed"`
	Material    string  `yaml:"material"`
	Brush       int     `yaml:"brush"`
	FillDensity float64 `yaml:"fill_density"`
	FillRows    int     `yaml:"fill_rows"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Scale:    DefaultScale,
		TPS:      DefaultTPS,
		Seed:     DefaultSeed,
		Material: "sand",
		Brush:    DefaultBrush,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Normalize clamps obviously broken values back to usable ones. Grid
// dimension guards live in the core; everything frontend-facing is fixed
// here, at the boundary.
func (c *Config) Normalize() {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = DefaultTPS
	}
	if c.Brush < 0 {
		c.Brush = 0
	}
	if c.FillDensity < 0 {
		c.FillDensity = 0
	}
	if c.FillDensity > 1 {
		c.FillDensity = 1
	}
}
