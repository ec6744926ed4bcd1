// Package headless provides a Platform with no window: keys come from a
// script and frames are kept in memory. Replays, the CLI's --headless mode
// and tests run the engine through it.
package headless

import "github.com/vovakirdan/bitarcade/internal/core"

// Platform replays a fixed key script, one entry per tick, and closes after
// a tick limit.
type Platform struct {
	script    []core.KeySet
	limit     uint64
	presented uint64
	last      *core.Frame
}

// New creates a platform that runs for len(script) ticks.
func New(script []core.KeySet) *Platform {
	return &Platform{
		script: script,
		limit:  uint64(len(script)),
	}
}

// NewIdle creates a platform that holds no keys for n ticks.
func NewIdle(n uint64) *Platform {
	return &Platform{limit: n}
}

// IsOpen reports whether the tick limit has not been reached yet.
func (p *Platform) IsOpen() bool {
	return p.presented < p.limit
}

// IsKeyDown reports the scripted key state of the upcoming tick.
func (p *Platform) IsKeyDown(k core.Key) bool {
	if p.presented >= uint64(len(p.script)) {
		return false
	}
	return p.script[p.presented].Has(k)
}

// Present records the frame and moves the script forward.
func (p *Platform) Present(f *core.Frame) error {
	p.last = f
	p.presented++
	return nil
}

// Presented returns the number of frames presented so far.
func (p *Platform) Presented() uint64 {
	return p.presented
}

// Last returns the most recently presented frame, or nil.
func (p *Platform) Last() *core.Frame {
	return p.last
}
