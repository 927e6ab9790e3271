// Package tui hosts arcade sessions in a terminal with Bubble Tea, locally
// or over SSH.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/engine"
	"github.com/vovakirdan/pocket-arcade/internal/input"
)

// Options configures a Model. Sessions must hold at least one session;
// with more than one the model behaves as a carousel.
type Options struct {
	Sessions       []*engine.Session
	Interval       time.Duration // delay between frame requests
	SwipeThreshold int
	Theme          *Theme
	Scores         ScoreSource      // optional history for the scoreboard
	Best           engine.BestStore // optional best scores for the scoreboard
	ScreenshotDir  string           // empty means ~/.arcade/screenshots
	Logger         *log.Logger
	Width          int
	Height         int
}

// Model is the Bubble Tea model hosting one or more sessions. Exactly one
// session, the focused one, is active at a time.
type Model struct {
	sessions []*engine.Session
	focus    int
	carousel bool

	router   *input.Router
	keys     input.KeyMap
	help     help.Model
	theme    *Theme
	screen   *core.Screen
	interval time.Duration

	scores ScoreSource
	best   engine.BestStore
	board  *ScoreboardModel

	shotDir string
	status  string
	logger  *log.Logger

	width    int
	height   int
	quitting bool
}

// offsetTarget shifts pointer rows so sessions see container coordinates.
type offsetTarget struct {
	*engine.Session
	dy int
}

func (t offsetTarget) Point(x, y int) { t.Session.Point(x, y-t.dy) }

func (t offsetTarget) Tap(x, y int) { t.Session.Tap(x, y-t.dy) }

// NewModel creates the model and focuses the first session.
func NewModel(opts Options) Model {
	if len(opts.Sessions) == 0 {
		panic("tui: NewModel needs at least one session")
	}
	if opts.Interval <= 0 {
		opts.Interval = core.ReferenceFrame
	}
	if opts.Theme == nil {
		opts.Theme = NewTheme(nil, ThemeAuto)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	carousel := len(opts.Sessions) > 1
	keys := input.DefaultKeyMap().WithCarousel(carousel)
	if opts.Scores == nil && opts.Best == nil {
		keys.Scores.SetEnabled(false)
	}

	m := Model{
		sessions: opts.Sessions,
		carousel: carousel,
		router:   input.NewRouter(input.DefaultKeyMap(), opts.SwipeThreshold),
		keys:     keys,
		help:     help.New(),
		theme:    opts.Theme,
		screen:   core.NewScreen(0, 0),
		interval: opts.Interval,
		scores:   opts.Scores,
		best:     opts.Best,
		shotDir:  opts.ScreenshotDir,
		logger:   opts.Logger,
		width:    opts.Width,
		height:   opts.Height,
	}
	m.help.Width = m.width
	m.focusOn(0)
	return m
}

// Init initializes the model. Nothing runs until a game is started.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m, nil

	case FrameMsg:
		return m.handleFrame(msg)

	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.board != nil {
			return m, nil
		}
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Slot < 0 || msg.Slot >= len(m.sessions) {
		return m, nil
	}
	if m.sessions[msg.Slot].Frame(msg.Gen, msg.Time) {
		return m, frameCmd(m.interval, msg.Slot, msg.Gen)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.focusOn((m.focus + 1) % len(m.sessions))
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.focusOn((m.focus - 1 + len(m.sessions)) % len(m.sessions))
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.openBoard()
		return m, nil

	case key.Matches(msg, m.keys.Start):
		return m.start()
	}

	m.router.HandleKey(msg)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			if m.carousel {
				m.focusOn((m.focus + 1) % len(m.sessions))
			}
			return m, nil
		case tea.MouseButtonWheelUp:
			if m.carousel {
				m.focusOn((m.focus - 1 + len(m.sessions)) % len(m.sessions))
			}
			return m, nil
		case tea.MouseButtonLeft:
			if msg.Y < m.top() {
				if i, ok := m.tabAt(msg.X); ok && i != m.focus {
					m.focusOn(i)
				}
				return m, nil
			}
			if m.focused().State() != engine.Playing {
				return m.start()
			}
		}
	}
	m.router.HandleMouse(msg)
	return m, nil
}

// start begins or restarts the focused game and schedules its first frame.
func (m Model) start() (tea.Model, tea.Cmd) {
	s := m.focused()
	if s.State() == engine.Playing {
		return m, nil
	}
	gen, ok := s.Start(time.Now())
	if !ok {
		return m, nil
	}
	return m, frameCmd(m.interval, m.focus, gen)
}

func (m *Model) focused() *engine.Session {
	return m.sessions[m.focus]
}

// focusOn deactivates the focused session and activates session i.
// A playing game that loses focus is suspended.
func (m *Model) focusOn(i int) {
	m.focused().SetActive(false)
	m.router.Detach()

	m.focus = i
	s := m.focused()
	s.SetActive(true)
	m.router.Attach(offsetTarget{Session: s, dy: m.top()}, s.Controls())
	m.keys = m.keys.ForControls(s.Controls())
	m.layout()
}

// teardown releases every session before the program exits.
func (m *Model) teardown() {
	m.quitting = true
	m.router.Detach()
	for _, s := range m.sessions {
		s.Close()
	}
}

func (m *Model) top() int {
	if m.carousel {
		return 1
	}
	return 0
}

// layout sizes the game screen to what the tab bar and help leave free.
func (m *Model) layout() {
	helpRows := lipgloss.Height(m.help.View(m.keys))
	h := max(m.height-m.top()-helpRows, 0)
	m.screen.Resize(m.width, h)
	for _, s := range m.sessions {
		s.Resize(m.width, h)
	}
}

func (m *Model) openBoard() {
	m.focused().SetActive(false)
	m.router.Detach()
	b := NewScoreboardModel(m.scores, m.best, m.theme, m.width, m.height).AsOverlay()
	b.SelectGame(m.focused().ID())
	m.board = &b
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	b, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case b.IsQuitting():
		m.board = nil
		m.teardown()
		return m, tea.Quit
	case b.IsGoingBack():
		m.board = nil
		m.focusOn(m.focus)
		return m, nil
	}
	m.board = &b
	return m, cmd
}

// tabTitles returns the labels drawn in the tab bar.
func (m *Model) tabTitles() []string {
	titles := make([]string, len(m.sessions))
	for i, s := range m.sessions {
		titles[i] = s.Title()
	}
	return titles
}

func (m *Model) tabBar() string {
	tabs := make([]string, len(m.sessions))
	for i, title := range m.tabTitles() {
		if i == m.focus {
			tabs[i] = m.theme.ActiveTab.Render(title)
		} else {
			tabs[i] = m.theme.Tab.Render(title)
		}
	}
	return strings.Join(tabs, " ")
}

// tabAt returns the tab under column x.
func (m *Model) tabAt(x int) (int, bool) {
	left := 0
	for i, title := range m.tabTitles() {
		w := lipgloss.Width(title) + 2
		if x >= left && x < left+w {
			return i, true
		}
		left += w + 1
	}
	return 0, false
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	s := m.focused()
	s.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", s.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "error", err)
		return
	}
	m.status = "saved " + path
	m.logger.Info("screenshot saved", "path", path)
}

// Focused returns the index of the focused session.
func (m Model) Focused() int { return m.focus }

// Status returns the last status message shown under the game.
func (m Model) Status() string { return m.status }

// View renders the tab bar, the focused game and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	var b strings.Builder
	if m.carousel {
		b.WriteString(m.tabBar())
		b.WriteString("\n")
	}
	m.focused().Render(m.screen)
	b.WriteString(RenderScreen(m.screen, m.theme))
	b.WriteString("\n")

	helpLine := m.help.View(m.keys)
	if m.status != "" && !m.help.ShowAll {
		helpLine += "  " + m.status
	}
	b.WriteString(m.theme.Help.Render(helpLine))
	return b.String()
}
