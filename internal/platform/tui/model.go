package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bitarcade/internal/engine"
	"github.com/vovakirdan/bitarcade/internal/platform/screenshot"
)

// Options tunes the terminal platform.
type Options struct {
	Sample          int    // Frame pixels per terminal cell, horizontally
	HoldTicks       int    // Ticks a key press stays held
	ScreenshotDir   string // Where ctrl+s writes PNG files
	ScreenshotScale int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model hosting one engine. Every TickMsg advances
// the engine by exactly one tick.
type Model struct {
	engine   *engine.Engine
	opts     Options
	keys     GameKeyMap
	help     help.Model
	held     *heldKeys
	status   string
	quitting bool
}

// NewModel creates a model for the given engine.
func NewModel(e *engine.Engine, opts Options) Model {
	if opts.Sample < 1 {
		opts.Sample = 1
	}
	if opts.ScreenshotScale < 1 {
		opts.ScreenshotScale = 1
	}
	return Model{
		engine: e,
		opts:   opts,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		held:   newHeldKeys(opts.HoldTicks),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.engine.Advance(m.held.Tick())
		return m, tickCmd(m.engine.Config().TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	if k, ok := m.keys.GameKey(msg); ok {
		m.held.Press(k)
	}
	return m, nil
}

// saveScreenshot writes the current frame and returns a status line.
func (m Model) saveScreenshot() string {
	path, err := screenshot.Save(m.engine.Frame(), m.opts.ScreenshotDir, m.engine.Game().ID(), m.engine.Tick(), m.opts.ScreenshotScale)
	if err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}

// View renders the header, the frame and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.engine.Game().Title()))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  tick %d", m.engine.Tick())))
	b.WriteString("\n")
	b.WriteString(RenderFrame(m.engine.Frame(), m.opts.Sample))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(e *engine.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(e, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
