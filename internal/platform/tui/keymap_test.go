package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bitarcade/internal/core"
)

func TestGameKey(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		ok   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, true},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.KeyUp, true},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, true},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.KeyLeft, true},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeySpace, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, true},
		{"unmapped", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, 0, false},
		{"quit is not a game key", tea.KeyMsg{Type: tea.KeyEsc}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.GameKey(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("GameKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys(3)
	h.Press(core.KeyLeft)

	for i := 0; i < 3; i++ {
		if got := h.Tick(); !got.Has(core.KeyLeft) {
			t.Fatalf("tick %d: Left should still be held, got %v", i, got)
		}
	}
	if got := h.Tick(); got != 0 {
		t.Errorf("Left should be released after the hold, got %v", got)
	}

	// A repeat press refreshes the countdown
	h.Press(core.KeySpace)
	h.Tick()
	h.Tick()
	h.Press(core.KeySpace)
	for i := 0; i < 3; i++ {
		if !h.Tick().Has(core.KeySpace) {
			t.Fatalf("refreshed Space released early at tick %d", i)
		}
	}
}

func TestHeldKeysMinimumHold(t *testing.T) {
	h := newHeldKeys(0)
	h.Press(core.KeyUp)
	if !h.Tick().Has(core.KeyUp) {
		t.Error("a press should be held for at least one tick")
	}
	if h.Tick() != 0 {
		t.Error("zero hold should behave like one tick")
	}
}
