// Package config loads the spawner settings from YAML or TOML over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for extensions other than .yaml, .yml and .toml
var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Spawner SpawnerConfig `yaml:"spawner" toml:"spawner"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

type SpawnerConfig struct {
	IntervalMs float64         `yaml:"interval_ms" toml:"interval_ms"`
	Seed       uint64          `yaml:"seed" toml:"seed"` // 0 picks a random seed
	Variants   []VariantConfig `yaml:"variants" toml:"variants"`
}

type VariantConfig struct {
	Name            string  `yaml:"name" toml:"name"` // worm, ghost or spider
	Weight          float64 `yaml:"weight" toml:"weight"`
	FrameIntervalMs float64 `yaml:"frame_interval_ms" toml:"frame_interval_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // console or json
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  500,
			Height: 800,
			Title:  "spawnfield",
		},
		Spawner: SpawnerConfig{
			IntervalMs: 500,
			Variants: []VariantConfig{
				{Name: "worm", Weight: 1, FrameIntervalMs: 100},
				{Name: "ghost", Weight: 1, FrameIntervalMs: 100},
				{Name: "spider", Weight: 1, FrameIntervalMs: 100},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path and decodes it over Default. The decoder is picked by extension.
// A file that sets spawner.variants replaces the default list entirely.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg.Spawner.Variants = nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		cfg.Spawner.Variants = nil
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if len(cfg.Spawner.Variants) == 0 {
		cfg.Spawner.Variants = Default().Spawner.Variants
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a running world
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Spawner.IntervalMs <= 0 {
		return fmt.Errorf("spawner.interval_ms %v must be positive", c.Spawner.IntervalMs)
	}
	if len(c.Spawner.Variants) == 0 {
		return errors.New("spawner.variants is empty")
	}

	seen := make(map[string]bool, len(c.Spawner.Variants))
	total := 0.0
	for i, v := range c.Spawner.Variants {
		name := strings.ToLower(strings.TrimSpace(v.Name))
		if name == "" {
			return fmt.Errorf("spawner.variants[%d]: missing name", i)
		}
		if seen[name] {
			return fmt.Errorf("spawner.variants[%d]: duplicate variant %q", i, v.Name)
		}
		seen[name] = true
		if v.Weight < 0 {
			return fmt.Errorf("spawner.variants[%d]: negative weight %v", i, v.Weight)
		}
		if v.FrameIntervalMs < 0 {
			return fmt.Errorf("spawner.variants[%d]: negative frame_interval_ms %v", i, v.FrameIntervalMs)
		}
		total += v.Weight
	}
	if total == 0 {
		return errors.New("spawner.variants: every weight is zero")
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	return nil
}
