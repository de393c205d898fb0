package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/spawnfield/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, 500.0, cfg.Spawner.IntervalMs)
	assert.Len(t, cfg.Spawner.Variants, 3)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "spawn.yaml", `
spawner:
  interval_ms: 250
  seed: 42
  variants:
    - name: ghost
      weight: 3
      frame_interval_ms: 80
logging:
  level: debug
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 250.0, cfg.Spawner.IntervalMs)
	assert.Equal(t, uint64(42), cfg.Spawner.Seed)
	assert.Equal(t, []config.VariantConfig{{Name: "ghost", Weight: 3, FrameIntervalMs: 80}}, cfg.Spawner.Variants)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys keep their defaults")
	assert.Equal(t, 500, cfg.Window.Width)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "spawn.toml", `
[window]
width = 640
height = 480

[logging]
format = "json"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "spawnfield", cfg.Window.Title)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, config.Default().Spawner.Variants, cfg.Spawner.Variants, "no variants falls back to defaults")
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "spawn.json", `{}`))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "broken.toml", `[window`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero width", func(c *config.Config) { c.Window.Width = 0 }},
		{"zero interval", func(c *config.Config) { c.Spawner.IntervalMs = 0 }},
		{"no variants", func(c *config.Config) { c.Spawner.Variants = nil }},
		{"blank name", func(c *config.Config) { c.Spawner.Variants[0].Name = " " }},
		{"duplicate", func(c *config.Config) { c.Spawner.Variants[1].Name = "WORM" }},
		{"negative weight", func(c *config.Config) { c.Spawner.Variants[0].Weight = -1 }},
		{"zero weights", func(c *config.Config) {
			for i := range c.Spawner.Variants {
				c.Spawner.Variants[i].Weight = 0
			}
		}},
		{"negative frame interval", func(c *config.Config) { c.Spawner.Variants[2].FrameIntervalMs = -5 }},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
