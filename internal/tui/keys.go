package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typeline/internal/session"
)

type keyMap struct {
	Quit      key.Binding
	Reset     key.Binding
	Backspace key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
	Reset: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "restart"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace", "ctrl+h"),
		key.WithHelp("⌫", "undo letter"),
	),
}

// keyRunes converts a key press into the raw keys the session understands.
// Keys that carry no typing meaning return nil.
func keyRunes(msg tea.KeyMsg) []rune {
	switch {
	case key.Matches(msg, keys.Reset):
		return []rune{session.KeyReset}
	case key.Matches(msg, keys.Backspace):
		return []rune{session.KeyBackspace}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyRunes:
		if msg.Paste {
			return nil
		}
		return msg.Runes
	default:
		return nil
	}
}
