package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bitarcade/internal/core"
	"github.com/vovakirdan/bitarcade/internal/registry"
	"github.com/vovakirdan/bitarcade/internal/storage"
)

// scoreboardLimit is the number of rounds listed per game.
const scoreboardLimit = 50

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var scoreColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 6},
	{Title: "Tick", Width: 8},
	{Title: "Time", Width: 8},
	{Title: "Date", Width: 13},
}

type scoreboardExit uint8

const (
	scoreboardOpen scoreboardExit = iota
	scoreboardBack
	scoreboardQuit
)

// Scoreboard is the Bubble Tea model listing the best rounds of one game
// at a time. Each game has a tab; the table shows on which tick each
// round ended and how long that took at the configured tick rate.
type Scoreboard struct {
	games    []registry.GameInfo
	current  int
	store    *storage.Store
	tickRate int

	scores  []storage.ScoreEntry
	stats   *storage.GameStats
	loadErr error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int
	exit   scoreboardExit
}

// NewScoreboard creates a scoreboard positioned on the first registered
// game. store may be nil, in which case every game shows as unplayed.
func NewScoreboard(store *storage.Store, tickRate, width, height int) Scoreboard {
	t := table.New(
		table.WithColumns(scoreColumns),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)

	s := Scoreboard{
		games:    registry.List(),
		store:    store,
		tickRate: max(tickRate, 1),
		table:    t,
		help:     help.New(),
		keys:     DefaultScoreboardKeyMap(),
	}
	s.resize(width, height)
	s.load()
	return s
}

// Game returns the game whose scores are shown.
func (s Scoreboard) Game() (registry.GameInfo, bool) {
	if len(s.games) == 0 {
		return registry.GameInfo{}, false
	}
	return s.games[s.current], true
}

func (s *Scoreboard) resize(width, height int) {
	s.width = width
	s.height = height
	// Title, tabs, info, stats and help take nine lines.
	s.table.SetHeight(max(height-9, 3))
	s.help.Width = width
}

// load reads the current game's rounds and summary from the store.
func (s *Scoreboard) load() {
	s.scores, s.stats, s.loadErr = nil, nil, nil

	g, ok := s.Game()
	if ok && s.store != nil {
		s.scores, s.loadErr = s.store.TopScores(g.ID, scoreboardLimit)
		if s.loadErr == nil {
			s.stats, s.loadErr = s.store.Stats(g.ID)
		}
	}

	rows := make([]table.Row, len(s.scores))
	for i, e := range s.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.FormatUint(e.Tick, 10),
			s.elapsed(e.Tick),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

// elapsed converts a tick count to wall time at the configured rate.
func (s Scoreboard) elapsed(tick uint64) string {
	d := time.Duration(tick) * time.Second / time.Duration(s.tickRate)
	return d.Round(time.Second).String()
}

func (s *Scoreboard) switchGame(delta int) {
	n := len(s.games)
	if n == 0 {
		return
	}
	s.current = ((s.current+delta)%n + n) % n
	s.load()
}

// Init implements tea.Model.
func (s Scoreboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s Scoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			s.exit = scoreboardQuit
			return s, tea.Quit
		case key.Matches(msg, s.keys.Back):
			s.exit = scoreboardBack
			return s, tea.Quit
		case key.Matches(msg, s.keys.Next):
			s.switchGame(1)
			return s, nil
		case key.Matches(msg, s.keys.Prev):
			s.switchGame(-1)
			return s, nil
		}

	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		return s, nil
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View implements tea.Model.
func (s Scoreboard) View() string {
	if s.exit != scoreboardOpen {
		return ""
	}

	g, ok := s.Game()
	if !ok {
		return "No games registered.\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(selectedStyle.Render("HIGH SCORES"), s.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(s.renderTabs(), s.width))
	b.WriteString("\n")

	info := fmt.Sprintf("%dx%d px, state %d/%d bits", g.Width, g.Height, g.Bits, core.StateBits)
	b.WriteString(centerText(dimStyle.Render(info), s.width))
	b.WriteString("\n")
	b.WriteString(centerText(s.renderStats(), s.width))
	b.WriteString("\n\n")

	switch {
	case s.loadErr != nil:
		b.WriteString(centerText(errorStyle.Render(s.loadErr.Error()), s.width))
	case len(s.scores) == 0:
		b.WriteString(centerText(dimStyle.Italic(true).Render("No rounds recorded yet."), s.width))
	default:
		b.WriteString(s.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(s.help.View(s.keys)))
	return b.String()
}

func (s Scoreboard) renderTabs() string {
	tabs := make([]string, len(s.games))
	for i, g := range s.games {
		if i == s.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > s.width {
		return activeTabStyle.Render("< " + s.games[s.current].Title + " >")
	}
	return line
}

func (s Scoreboard) renderStats() string {
	if s.stats == nil || s.stats.Rounds == 0 {
		return dimStyle.Render("never played")
	}
	return fmt.Sprintf("%d rounds  best %d  avg %.1f  last played %s",
		s.stats.Rounds, s.stats.HighScore, s.stats.AvgScore,
		s.stats.LastPlayed.Local().Format("Jan 02 15:04"))
}

// RunScoreboard runs the scoreboard screen. It reports whether the user
// asked to go back to the menu rather than quit.
func RunScoreboard(store *storage.Store, tickRate, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboard(store, tickRate, width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: scoreboard: %w", err)
	}

	s, ok := final.(Scoreboard)
	return ok && s.exit == scoreboardBack, nil
}
