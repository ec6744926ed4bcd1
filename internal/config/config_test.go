package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bitarcade/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, "tick_rate: 30\nclip: inclusive\ntui:\n  sample: 4\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, "inclusive", cfg.Clip)
	assert.Equal(t, 4, cfg.TUI.Sample)

	// Unset keys keep their defaults
	assert.Equal(t, DefaultConfig().Scale, cfg.Scale)
	assert.Equal(t, DefaultConfig().TUI.HoldTicks, cfg.TUI.HoldTicks)

	rt := cfg.Runtime()
	assert.Equal(t, core.ClipInclusive, rt.Clip)
	assert.Equal(t, 30, rt.TickRate)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "tick_rate: [oops"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tick rate zero", func(c *Config) { c.TickRate = 0 }},
		{"tick rate huge", func(c *Config) { c.TickRate = 5000 }},
		{"scale zero", func(c *Config) { c.Scale = 0 }},
		{"unknown platform", func(c *Config) { c.Platform = "vga" }},
		{"unknown clip", func(c *Config) { c.Clip = "everything" }},
		{"sample zero", func(c *Config) { c.TUI.Sample = 0 }},
		{"hold zero", func(c *Config) { c.TUI.HoldTicks = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "platform: vga\n"))
	assert.ErrorContains(t, err, "platform")
}
