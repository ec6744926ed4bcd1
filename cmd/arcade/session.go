package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/vovakirdan/bitarcade/internal/config"
	"github.com/vovakirdan/bitarcade/internal/engine"
	"github.com/vovakirdan/bitarcade/internal/platform/headless"
	"github.com/vovakirdan/bitarcade/internal/platform/tui"
	"github.com/vovakirdan/bitarcade/internal/platform/window"
	"github.com/vovakirdan/bitarcade/internal/registry"
	"github.com/vovakirdan/bitarcade/internal/replay"
	"github.com/vovakirdan/bitarcade/internal/storage"
)

// platformHeadless runs without output for a fixed number of ticks.
const platformHeadless = "headless"

// session is one play-through of a game on some platform.
type session struct {
	gameID   string
	platform string
	ticks    uint64 // Tick limit for the headless platform
	record   string // Replay file to write, if any
	store    *storage.Store
}

// openStore opens the scores database, or returns nil with a warning;
// games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// terminalSize returns the terminal dimensions, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// run builds the engine, hosts it on the selected platform and stores the
// outcome: finished rounds as scores and, when recording, a replay file.
func (s session) run() error {
	game, err := registry.Create(s.gameID)
	if err != nil {
		return err
	}

	var e *engine.Engine
	opts := []engine.Option{
		engine.WithConfig(cfg.Runtime()),
		engine.WithLogger(logger.WithPrefix(s.gameID)),
	}
	if s.store != nil {
		opts = append(opts, engine.WithScoreSink(func(gameID string, score int) {
			if _, err := s.store.SaveScore(gameID, score, e.Tick()); err != nil {
				logger.Warn("could not save score", "error", err)
			}
		}))
	}

	var rec *replay.Recorder
	if s.record != "" {
		rec = replay.NewRecorder(s.gameID)
		opts = append(opts, engine.WithRecorder(rec))
	}

	e = engine.New(game, opts...)

	if err := s.host(e); err != nil {
		return err
	}

	if rec != nil {
		if err := s.saveRecording(rec, e.State()); err != nil {
			return err
		}
	}
	if s.platform == platformHeadless {
		fmt.Printf("%s after %d ticks: %#016x\n\n", game.Title(), e.Tick(), e.State())
		fmt.Print(game.Layout().Describe(e.State()))
	}
	return nil
}

// host blocks while the engine runs on the session's platform.
func (s session) host(e *engine.Engine) error {
	switch s.platform {
	case config.PlatformWindow:
		return window.Run(e, window.Options{
			Scale:         cfg.Scale,
			ScreenshotDir: config.UserDir("screenshots"),
			Logger:        logger,
		})

	case config.PlatformTUI:
		return tui.Run(e, tui.Options{
			Sample:          cfg.TUI.Sample,
			HoldTicks:       cfg.TUI.HoldTicks,
			ScreenshotDir:   config.UserDir("screenshots"),
			ScreenshotScale: cfg.Scale,
		})

	case platformHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return e.Run(ctx, headless.NewIdle(s.ticks))
	}
	return fmt.Errorf("unknown platform %q", s.platform)
}

func (s session) saveRecording(rec *replay.Recorder, final uint64) error {
	trace := rec.Trace(final)
	if err := replay.Save(s.record, trace); err != nil {
		return err
	}
	logger.Info("replay saved", "path", s.record, "ticks", trace.Ticks)

	if s.store != nil {
		if _, err := s.store.SaveReplay(s.gameID, s.record, trace.Ticks, final); err != nil {
			logger.Warn("could not index replay", "error", err)
		}
	}
	return nil
}
