package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 20  // Width of game list sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreSource is the score history the scoreboard reads.
type ScoreSource interface {
	TopScores(gameID string, limit int, ascending bool) ([]storage.ScoreEntry, error)
	Stats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev game"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next game"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "s"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	source     ScoreSource
	bestStore  engine.BestStore
	theme      *Theme

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	best   int

	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	overlay     bool // Back returns to the arcade instead of quitting
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
// source and best may be nil.
func NewScoreboardModel(source ScoreSource, best engine.BestStore, th *Theme, width, height int) ScoreboardModel {
	if th == nil {
		th = NewTheme(nil, ThemeAuto)
	}
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:       registry.List(),
		source:      source,
		bestStore:   best,
		theme:       th,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadScores()
	}
	return m
}

// AsOverlay returns a copy whose Back key hands control back to the
// caller instead of ending the program.
func (m ScoreboardModel) AsOverlay() ScoreboardModel {
	m.overlay = true
	return m
}

// SelectGame moves the cursor to gameID if it is listed.
func (m *ScoreboardModel) SelectGame(gameID string) {
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
			m.loadScores()
			return
		}
	}
}

// Game returns the selected game, if any.
func (m ScoreboardModel) Game() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.gameCursor], true
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 40 {
		columns[1].Width = 12
		columns[2].Width = min(tableWidth-22, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	r := m.theme.Renderer()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Renderer(r)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false).
		Renderer(r)
	t.SetStyles(s)
	return t
}

// loadScores reads history, stats and the best score of the selected game.
func (m *ScoreboardModel) loadScores() {
	g, ok := m.Game()
	if !ok {
		return
	}

	m.scores, m.stats, m.best = nil, nil, 0
	if m.bestStore != nil {
		m.best = m.bestStore.Load(engine.BestKey(g.ID))
	}
	if m.source != nil {
		ascending := g.Order == engine.LowerWins
		if scores, err := m.source.TopScores(g.ID, maxScores, ascending); err == nil {
			m.scores = scores
		}
		if stats, err := m.source.Stats(g.ID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.overlay {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadScores()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadScores()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.overlay) {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if g, ok := m.Game(); ok {
		title = fmt.Sprintf("HIGH SCORES - %s", g.Title)
	}
	b.WriteString(m.theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// summary is the best score and history aggregate line.
func (m ScoreboardModel) summary() string {
	parts := []string{fmt.Sprintf("Best: %d", m.best)}
	if m.stats != nil && m.stats.GamesCount > 0 {
		parts = append(parts,
			fmt.Sprintf("Games: %d", m.stats.GamesCount),
			fmt.Sprintf("Avg: %.1f", m.stats.AvgScore),
		)
		if !m.stats.LastPlayed.IsZero() {
			parts = append(parts, "Last: "+m.stats.LastPlayed.Format("Jan 02 15:04"))
		}
	}
	return strings.Join(parts, "  ")
}

func (m ScoreboardModel) renderWideLayout() string {
	r := m.theme.Renderer()
	sidebarStyle := m.theme.Border.Width(sidebarWidth)

	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := r.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = m.theme.Title
		}

		name := g.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		m.theme.Border.Render(m.renderTableContent()),
	)
}

func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		shortName := g.Title
		if len(shortName) > 10 {
			shortName = shortName[:9] + "."
		}
		if i == m.gameCursor {
			tabs[i] = m.theme.ActiveTab.Render(shortName)
		} else {
			tabs[i] = m.theme.Tab.Render(shortName)
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.games) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Border.Render(m.renderTableContent()), m.width))
	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return m.theme.Empty.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user left the scoreboard with Back.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads every line of text to sit in the middle of width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if pad := (width - lipgloss.Width(l)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + l
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(source ScoreSource, best engine.BestStore, th *Theme, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, best, th, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
