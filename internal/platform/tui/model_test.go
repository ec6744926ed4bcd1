package tui

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bitarcade/internal/engine"
	"github.com/vovakirdan/bitarcade/internal/games/lightsout"
	"github.com/vovakirdan/bitarcade/internal/registry"
)

func newTestModel(t *testing.T) (Model, *engine.Engine) {
	t.Helper()
	e := engine.New(lightsout.New(), engine.WithLogger(log.New(io.Discard)))
	return NewModel(e, Options{Sample: 8, HoldTicks: 2, ScreenshotDir: t.TempDir()}), e
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelTickAdvancesEngine(t *testing.T) {
	m, e := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if e.Tick() != 1 {
		t.Fatalf("engine tick = %d, want 1", e.Tick())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	update(t, m, TickMsg(time.Now()))

	if got := lightsout.Decode(e.State()).Cursor; got != 7 {
		t.Errorf("cursor = %d, want 7 after Up", got)
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m, _ := newTestModel(t)
		m, cmd := update(t, m, msg)
		if cmd == nil || !m.quitting {
			t.Errorf("%q should quit", msg.String())
		}
		if m.View() != "" {
			t.Errorf("%q: view should be empty after quit", msg.String())
		}
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q, want a saved path", m.status)
	}
	if _, err := os.Stat(strings.TrimPrefix(m.status, "saved ")); err != nil {
		t.Errorf("screenshot not written: %v", err)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "Lights Out") {
		t.Error("view should show the game title")
	}
	if !strings.Contains(view, "tick 1") {
		t.Error("view should show the tick counter")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, 80)
	if len(m.items) != len(registry.List()) {
		t.Fatalf("menu lists %d games, registry has %d", len(m.items), len(registry.List()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor should not move above the first item, got %d", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil || m.Selected() == nil {
		t.Fatal("enter should select a game and exit")
	}
	if m.Selected().ID != registry.List()[0].ID {
		t.Errorf("selected %q, want %q", m.Selected().ID, registry.List()[0].ID)
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := NewMenuModel(nil, 80)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should request the scoreboard")
	}
}
