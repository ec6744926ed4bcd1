// Package config provides YAML-based runtime configuration loading
// for the arcade platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/bitarcade/internal/core"
)

// Platform names accepted by the platform key.
const (
	PlatformWindow = "window"
	PlatformTUI    = "tui"
)

// Config is the arcade.yaml document.
type Config struct {
	TickRate int       `yaml:"tick_rate"`
	Scale    int       `yaml:"scale"`
	Platform string    `yaml:"platform"`
	Clip     string    `yaml:"clip"`
	TUI      TUIConfig `yaml:"tui"`
	DBPath   string    `yaml:"db_path"`
}

// TUIConfig tunes the terminal platform.
type TUIConfig struct {
	Sample    int `yaml:"sample"`     // Frame pixels per terminal cell, horizontally
	HoldTicks int `yaml:"hold_ticks"` // Ticks a key press stays held
}

// Validate checks value ranges and enum spellings.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 1000 {
		return fmt.Errorf("config: tick_rate %d out of range [1,1000]", c.TickRate)
	}
	if c.Scale < 1 || c.Scale > 16 {
		return fmt.Errorf("config: scale %d out of range [1,16]", c.Scale)
	}
	switch c.Platform {
	case PlatformWindow, PlatformTUI:
	default:
		return fmt.Errorf("config: unknown platform %q (want %s or %s)", c.Platform, PlatformWindow, PlatformTUI)
	}
	if _, ok := core.ParseClipMode(c.Clip); !ok {
		return fmt.Errorf("config: unknown clip mode %q", c.Clip)
	}
	if c.TUI.Sample < 1 {
		return fmt.Errorf("config: tui.sample must be positive, got %d", c.TUI.Sample)
	}
	if c.TUI.HoldTicks < 1 {
		return fmt.Errorf("config: tui.hold_ticks must be positive, got %d", c.TUI.HoldTicks)
	}
	return nil
}

// Runtime returns the engine-facing subset of the configuration.
// Call Validate first; an unknown clip mode falls back to the default.
func (c Config) Runtime() core.RuntimeConfig {
	clip, _ := core.ParseClipMode(c.Clip)
	return core.RuntimeConfig{
		TickRate: c.TickRate,
		Clip:     clip,
	}
}
