package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/logger"
	"github.com/SeamusWaldron/gocube_sim/internal/recorder"
)

func newModel(t *testing.T) (*Model, *recorder.Session) {
	t.Helper()
	s := recorder.NewSession(nil, logger.Discard(), gocube.WithSeed(1))
	return New(s), s
}

func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestKeyMove(t *testing.T) {
	tests := []struct {
		key  string
		want gocube.Move
	}{
		{"f", gocube.F},
		{"F", gocube.FPrime},
		{"b", gocube.B},
		{"L", gocube.LPrime},
		{"r", gocube.R},
		{"u", gocube.U},
		{"D", gocube.DPrime},
	}

	for _, tt := range tests {
		got, ok := keyMove(tt.key)
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}

	_, ok := keyMove("k")
	assert.False(t, ok)
}

func TestFaceKeysTurnTheCube(t *testing.T) {
	m, s := newModel(t)

	press(m, "r")
	press(m, "u")
	press(m, "R")
	press(m, "U")

	assert.Equal(t, []gocube.Move{gocube.R, gocube.U, gocube.RPrime, gocube.UPrime}, s.Moves())
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "R U R' U'")
}

func TestUndoAndReset(t *testing.T) {
	m, s := newModel(t)

	press(m, "f")
	press(m, "z")
	assert.True(t, s.IsSolved())
	assert.Contains(t, m.View(), "Undo F'")

	press(m, "z")
	assert.Contains(t, m.View(), "Nothing to undo")

	press(m, "s")
	assert.False(t, s.IsSolved())
	assert.Contains(t, m.View(), "Scrambled with")

	press(m, "x")
	assert.True(t, s.IsSolved())
	assert.Contains(t, m.View(), "SOLVED")
	assert.Empty(t, m.moves)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		m, _ := newModel(t)
		cmd := press(m, key)
		require.NotNil(t, cmd, key)
		assert.IsType(t, tea.QuitMsg{}, cmd(), key)
		assert.Contains(t, m.View(), "Goodbye!")
	}
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	m, s := newModel(t)
	cmd := press(m, "k")
	assert.Nil(t, cmd)
	assert.True(t, s.IsSolved())
	assert.Zero(t, s.MoveCount())
}

func TestWindowSize(t *testing.T) {
	m, _ := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 24, m.height)
	assert.Equal(t, 80, m.help.Width)
}

func TestHelpListsBindings(t *testing.T) {
	m, _ := newModel(t)
	view := m.View()
	for _, want := range []string{"turn", "reverse", "scramble", "reset", "undo", "quit"} {
		assert.Contains(t, view, want)
	}
}

func TestRenderNetSolved(t *testing.T) {
	net := RenderNet(gocube.NewCube())
	lines := strings.Split(strings.TrimSuffix(net, "\n"), "\n")
	require.Len(t, lines, 9)

	for _, c := range gocube.Colors {
		assert.Equal(t, 9, strings.Count(net, " "+c.String()+" "), "color %v", c)
	}
	assert.True(t, strings.HasPrefix(lines[0], strings.Repeat(" ", 9)))
}

func TestRenderNetAfterFrontTurn(t *testing.T) {
	c := gocube.NewCube()
	c.ApplyMove(gocube.F)
	net := RenderNet(c)

	for _, color := range gocube.Colors {
		assert.Equal(t, 9, strings.Count(net, " "+color.String()+" "), "color %v", color)
	}
}
