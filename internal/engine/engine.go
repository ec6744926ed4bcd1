// Package engine is the tick driver. It owns a game's packed state and the
// tick counter, feeds both to the game's pure Step function, rasterizes the
// emitted commands and hands the frame to a platform for presentation.
package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bitarcade/internal/core"
	"github.com/vovakirdan/bitarcade/internal/registry"
)

// Platform is the window-like collaborator driven by Run.
// Present is expected to pace the loop (roughly one call per tick interval).
type Platform interface {
	core.KeySource

	// IsOpen reports whether the output surface still exists.
	IsOpen() bool

	// Present displays a finished frame. An error is fatal for the loop.
	Present(f *core.Frame) error
}

// Recorder receives the held keys of every tick, in order.
type Recorder interface {
	Record(tick uint64, keys core.KeySet)
}

// ScoreSink receives the final score of each round a Scorer game reports.
type ScoreSink func(gameID string, score int)

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the runtime configuration.
func WithConfig(cfg core.RuntimeConfig) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithRecorder attaches a recorder that sees every tick's input.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithScoreSink attaches a callback for finished rounds.
func WithScoreSink(s ScoreSink) Option {
	return func(e *Engine) {
		e.onScore = s
	}
}

// Engine drives one game. It is not safe for concurrent use; a single
// goroutine advances it tick by tick.
type Engine struct {
	game   registry.Game
	scorer registry.Scorer
	config core.RuntimeConfig
	logger *log.Logger

	recorder Recorder
	onScore  ScoreSink

	state uint64
	tick  uint64
	draw  *core.DrawList
	frame *core.Frame
}

// New creates an engine positioned at the game's start state and tick 0.
func New(game registry.Game, opts ...Option) *Engine {
	e := &Engine{
		game:   game,
		config: core.DefaultConfig(),
		logger: log.Default(),
		draw:   core.NewDrawList(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if s, ok := game.(registry.Scorer); ok {
		e.scorer = s
	}

	w, h := game.Size()
	e.frame = core.NewFrame(w, h, e.config.Clip)
	e.state = game.Init()
	return e
}

// Game returns the hosted game.
func (e *Engine) Game() registry.Game {
	return e.game
}

// Config returns the runtime configuration.
func (e *Engine) Config() core.RuntimeConfig {
	return e.config
}

// State returns the current packed state.
func (e *Engine) State() uint64 {
	return e.state
}

// Tick returns the number of ticks advanced so far, which is also the
// tick index the next Advance will pass to the game.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Frame returns the most recently rasterized frame.
func (e *Engine) Frame() *core.Frame {
	return e.frame
}

// Advance runs exactly one tick with the given held keys and returns the
// freshly rasterized frame. The frame is reused by the next call.
func (e *Engine) Advance(keys core.KeySet) *core.Frame {
	in := core.NewInput(e.tick, keys)

	e.draw.Reset()
	next := e.game.Step(e.state, in, e.draw)
	e.frame.Rasterize(e.draw)

	if e.recorder != nil {
		e.recorder.Record(e.tick, keys)
	}
	if e.scorer != nil {
		if score, over := e.scorer.Outcome(e.state, next); over {
			e.logger.Info("round over", "game", e.game.ID(), "tick", e.tick, "score", score)
			if e.onScore != nil {
				e.onScore(e.game.ID(), score)
			}
		}
	}

	e.state = next
	e.tick++
	return e.frame
}

// Run loops until the platform closes, Escape is held or ctx is done.
// Those conditions are only checked before a tick starts; a started tick
// always completes, including presentation.
func (e *Engine) Run(ctx context.Context, p Platform) error {
	e.logger.Info("engine started", "game", e.game.ID(), "tick_rate", e.config.TickRate)

	for ctx.Err() == nil && p.IsOpen() && !p.IsKeyDown(core.KeyEscape) {
		frame := e.Advance(core.Sample(p))
		if err := p.Present(frame); err != nil {
			return fmt.Errorf("engine: present tick %d: %w", e.tick-1, err)
		}
	}

	e.logger.Info("engine stopped", "game", e.game.ID(), "ticks", e.tick, "state", fmt.Sprintf("%#016x", e.state))
	return nil
}
