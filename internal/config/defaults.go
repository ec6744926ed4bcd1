package config

import (
	_ "embed"

	"github.com/vovakirdan/bitarcade/internal/core"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	rt := core.DefaultConfig()
	return Config{
		TickRate: rt.TickRate,
		Scale:    2,
		Platform: PlatformWindow,
		Clip:     rt.Clip.String(),
		TUI: TUIConfig{
			Sample:    8,
			HoldTicks: 8,
		},
		DBPath: "~/.arcade/scores.db",
	}
}

// DefaultYAML returns the embedded default arcade.yaml.
func DefaultYAML() []byte {
	return defaultArcadeYAML
}
