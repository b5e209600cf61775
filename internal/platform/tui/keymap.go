package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeloop/internal/input"
)

// KeyMap holds the key bindings of the game screen.
// It implements help.KeyMap so the help line stays in sync with the bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Release key.Binding
	Start   key.Binding
	Stop    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns arrow and vim-style movement plus start/stop/quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Release: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "let go"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Release, k.Start, k.Stop, k.Quit}
}

// FullHelp returns the bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Release},
		{k.Start, k.Stop, k.Quit},
	}
}

// ArrowKey translates a movement key to the identifier input.State expects.
func (k KeyMap) ArrowKey(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return input.KeyLeft, true
	case key.Matches(msg, k.Right):
		return input.KeyRight, true
	case key.Matches(msg, k.Up):
		return input.KeyUp, true
	case key.Matches(msg, k.Down):
		return input.KeyDown, true
	}
	return "", false
}
