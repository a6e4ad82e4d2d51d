package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/SeamusWaldron/gocube_sim"
)

type keyMap struct {
	Turn     key.Binding
	Reverse  key.Binding
	Scramble key.Binding
	Reset    key.Binding
	Undo     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Turn: key.NewBinding(
		key.WithKeys("f", "b", "l", "r", "u", "d"),
		key.WithHelp("f b l r u d", "turn"),
	),
	Reverse: key.NewBinding(
		key.WithKeys("F", "B", "L", "R", "U", "D"),
		key.WithHelp("shift", "reverse"),
	),
	Scramble: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scramble"),
	),
	Reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset"),
	),
	Undo: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "undo"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Turn, k.Reverse, k.Scramble, k.Reset, k.Undo, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Turn, k.Reverse},
		{k.Scramble, k.Reset, k.Undo, k.Quit},
	}
}

var faceKeys = map[string]gocube.Face{
	"f": gocube.Front,
	"b": gocube.Back,
	"l": gocube.Left,
	"r": gocube.Right,
	"u": gocube.Top,
	"d": gocube.Bottom,
}

// keyMove maps f/b/l/r/u/d to clockwise turns and their shifted keys to
// counter-clockwise turns.
func keyMove(k string) (gocube.Move, bool) {
	lower := strings.ToLower(k)
	face, ok := faceKeys[lower]
	if !ok {
		return gocube.Move{}, false
	}
	rot := gocube.Clockwise
	if k != lower {
		rot = gocube.CounterClockwise
	}
	return gocube.Move{Face: face, Rotation: rot}, true
}
