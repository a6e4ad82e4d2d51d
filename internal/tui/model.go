// Package tui implements the interactive cube player.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/recorder"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// recentMoves is how many moves the move line shows.
const recentMoves = 20

type tickMsg time.Time

// Model is the bubbletea model for the player.
type Model struct {
	session *recorder.Session

	help     help.Model
	moves    []gocube.Move
	status   string
	elapsed  time.Duration
	err      error
	quitting bool

	width  int
	height int
}

// New creates a player model over a session.
func New(session *recorder.Session) *Model {
	return &Model{session: session, help: help.New()}
}

// Run starts the player and blocks until the user quits.
func Run(session *recorder.Session, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(session), opts...).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.elapsed = time.Duration(m.session.ElapsedMs()) * time.Millisecond
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Scramble):
		moves, err := m.session.Scramble()
		m.moves = append(m.moves, moves...)
		m.status = fmt.Sprintf("Scrambled with %d moves", len(moves))
		m.err = err

	case key.Matches(msg, keys.Reset):
		m.err = m.session.Reset()
		m.moves = nil
		m.status = "Reset"

	case key.Matches(msg, keys.Undo):
		inv, ok, err := m.session.Undo()
		m.err = err
		if !ok {
			m.status = "Nothing to undo"
			break
		}
		if len(m.moves) > 0 {
			m.moves = m.moves[:len(m.moves)-1]
		}
		m.status = "Undo " + inv.Notation()

	case key.Matches(msg, keys.Turn, keys.Reverse):
		move, _ := keyMove(msg.String())
		m.err = m.session.Apply(move)
		m.moves = append(m.moves, move)
		m.status = ""
	}

	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		msg := "Goodbye!\n"
		if id := m.session.SessionID(); id != "" {
			msg += fmt.Sprintf("Session saved: %s\n", id)
		}
		return msg
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GoCube Simulator"))
	b.WriteString("\n\n")

	b.WriteString(RenderNet(m.session.Snapshot()))
	b.WriteString("\n")

	if m.session.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render("Scrambled"))
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("  Moves: %d  Time: %s", len(m.moves), formatElapsed(m.elapsed))))
	b.WriteString("\n")

	if len(m.moves) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(m.moves) > recentMoves {
			start = len(m.moves) - recentMoves
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(gocube.FormatMoves(m.moves[start:])))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")

	return b.String()
}

// Err returns the last error raised by a key press.
func (m *Model) Err() error {
	return m.err
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
