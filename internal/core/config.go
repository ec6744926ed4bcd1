package core

// RuntimeConfig contains settings the engine applies to every game it hosts.
type RuntimeConfig struct {
	TickRate int      // Ticks per second requested from the platform (default 60)
	Clip     ClipMode // Rasterizer clipping at the frame origin
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Clip:     ClipExcludeOrigin,
	}
}
