package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/textr/internal/engine"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Quit}
}

// intentFor maps a key press to a navigation intent. Keys outside the map
// are not intents.
func (k keyMap) intentFor(msg tea.KeyMsg) (engine.Intent, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return engine.IntentUp, true
	case key.Matches(msg, k.Down):
		return engine.IntentDown, true
	case key.Matches(msg, k.Activate):
		return engine.IntentActivate, true
	}
	return 0, false
}
