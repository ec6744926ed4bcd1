// Package window hosts games in a desktop window through Ebitengine.
// Ebitengine owns the loop and calls Update at the configured tick rate,
// so the engine is advanced one tick per Update rather than through Run.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bitarcade/internal/core"
	"github.com/vovakirdan/bitarcade/internal/engine"
	"github.com/vovakirdan/bitarcade/internal/platform/screenshot"
)

// Options tunes the window platform.
type Options struct {
	Scale         int    // Window pixels per frame pixel
	ScreenshotDir string // Where F12 writes PNG files
	Logger        *log.Logger
}

// keyBindings maps logical keys to physical keys; any of them holds the key.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
	core.KeyLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeyEscape: {ebiten.KeyEscape},
	core.KeySpace:  {ebiten.KeySpace},
	core.KeyEnter:  {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// host adapts an engine to ebiten.Game.
type host struct {
	engine *engine.Engine
	opts   Options
	pixels []byte
}

// IsKeyDown reports whether any physical key bound to k is pressed.
func (h *host) IsKeyDown(k core.Key) bool {
	for _, key := range keyBindings[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Update samples the keyboard and advances one tick. Escape ends the loop
// before the tick starts, matching engine.Run.
func (h *host) Update() error {
	if h.IsKeyDown(core.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.screenshot()
	}

	h.engine.Advance(core.Sample(h))
	return nil
}

func (h *host) screenshot() {
	path, err := screenshot.Save(h.engine.Frame(), h.opts.ScreenshotDir, h.engine.Game().ID(), h.engine.Tick(), h.opts.Scale)
	if err != nil {
		h.opts.Logger.Error("screenshot failed", "err", err)
		return
	}
	h.opts.Logger.Info("screenshot saved", "path", path)
}

// Draw uploads the latest frame.
func (h *host) Draw(screen *ebiten.Image) {
	h.engine.Frame().WriteRGBA(h.pixels)
	screen.WritePixels(h.pixels)
}

// Layout keeps the logical screen at the frame size; Ebitengine scales it to the window.
func (h *host) Layout(_, _ int) (int, int) {
	return h.engine.Game().Size()
}

// Run opens a window and blocks until it is closed or Escape is pressed.
func Run(e *engine.Engine, opts Options) error {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	w, h := e.Game().Size()
	ebiten.SetWindowSize(w*opts.Scale, h*opts.Scale)
	ebiten.SetWindowTitle(e.Game().Title())
	ebiten.SetTPS(e.Config().TickRate)

	g := &host{
		engine: e,
		opts:   opts,
		pixels: make([]byte, 4*w*h),
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
