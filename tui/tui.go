package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/textbasedgame/config"
	"github.com/nathoo/textbasedgame/engine"
	"github.com/nathoo/textbasedgame/engine/messages"
	"github.com/nathoo/textbasedgame/types"
)

// frameMsg drives one Game.Tick.
type frameMsg time.Time

// Model is the Bubble Tea model for the game surface.
type Model struct {
	game *engine.Game

	keys      keyMap
	history   *History
	backspace *Timer
	pending   []types.Key // keys collected since the last frame
	frame     time.Duration
	lineWidth int
	more      string

	width    int
	height   int
	quitting bool
}

// New creates a TUI model for an initialized game.
func New(g *engine.Game, cfg config.Config) Model {
	return Model{
		game:      g,
		keys:      defaultKeyMap(),
		history:   NewHistory(100),
		backspace: NewTimer(time.Duration(cfg.BackspaceRepeatMs) * time.Millisecond),
		frame:     time.Second / time.Duration(cfg.FrameRate),
		lineWidth: cfg.LineWidth,
		more:      g.Text.Get(messages.MorePrompt),
	}
}

// Run starts the Bubble Tea program and blocks until the player leaves.
func Run(g *engine.Game, cfg config.Config) error {
	p := tea.NewProgram(New(g, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages (key presses, window resize, frames).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)
		return m, nil

	case frameMsg:
		evals := m.game.Evals()
		out := m.game.Tick(m.pending)
		m.pending = nil
		if m.game.Evals() != evals {
			m.history.Add(m.game.LastInput())
		}
		if out == types.Stop {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.nextFrame()
	}
	return m, nil
}

// handleKey translates a terminal key into engine keys. History recall
// edits the input directly; everything else waits for the next frame.
func (m *Model) handleKey(msg tea.KeyMsg) {
	if !key.Matches(msg, m.keys.Delete) {
		m.backspace.Reset()
	}
	switch {
	case m.game.Paging():
		m.pending = append(m.pending, types.Key{Kind: types.KeyOther})

	case key.Matches(msg, m.keys.Submit):
		m.pending = append(m.pending, types.Key{Kind: types.KeyEnter})

	case key.Matches(msg, m.keys.Complete):
		m.pending = append(m.pending, types.Key{Kind: types.KeyTab})

	case key.Matches(msg, m.keys.Delete):
		if m.backspace.Ready() {
			m.pending = append(m.pending, types.Key{Kind: types.KeyBackspace})
		}

	case key.Matches(msg, m.keys.Older):
		if line, ok := m.history.Older(); ok {
			m.game.SetInput(line)
		}

	case key.Matches(msg, m.keys.Newer):
		if m.history.Browsing() {
			line, _ := m.history.Newer()
			m.game.SetInput(line)
		}

	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		for _, r := range msg.Runes {
			m.pending = append(m.pending, types.Key{Kind: types.KeyChar, Rune: r})
		}
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.pending = append(m.pending, types.Key{Kind: types.KeyChar, Rune: ' '})
		}

	default:
		m.pending = append(m.pending, types.Key{Kind: types.KeyOther})
	}
}

// View renders the banner, the output lines, the input line and the
// status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	inner := m.lineWidth
	banner := styleBanner.Width(inner).Render(m.game.Background())

	buf := m.game.Buffer()
	lines := make([]string, buf.LineCount())
	for i := range lines {
		l := buf.Line(i)
		lines[i] = renderLine(l, classifyLine(l, m.more))
	}
	output := lipgloss.NewStyle().Width(inner).Render(strings.Join(lines, "\n"))

	s := m.game.Screen()
	input := renderInput(s.Input, s.Hint, s.Cursor, m.game.CursorVisible() && !m.game.Paging())

	body := styleFrame.Render(lipgloss.JoinVertical(lipgloss.Left, banner, "", output, "", input))
	width := lipgloss.Width(body)
	if m.width > width {
		width = m.width
	}
	return body + "\n" + m.renderStatusBar(width)
}
