package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/nav"
)

type keyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Previous key.Binding
}

// newKeyMap binds the configured characters plus fixed aliases. An alias
// that collides with a configured character is dropped.
func newKeyMap(k config.Keys) keyMap {
	taken := map[string]bool{k.Quit: true, k.Next: true, k.Previous: true}
	with := func(primary string, aliases ...string) []string {
		keys := []string{primary}
		for _, a := range aliases {
			if !taken[a] {
				keys = append(keys, a)
			}
		}
		return keys
	}

	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys(with(k.Quit, "ctrl+c")...),
			key.WithHelp(k.Quit, "quit"),
		),
		Next: key.NewBinding(
			key.WithKeys(with(k.Next, "right", "l")...),
			key.WithHelp(k.Next+"/→", "next day"),
		),
		Previous: key.NewBinding(
			key.WithKeys(with(k.Previous, "left", "h")...),
			key.WithHelp(k.Previous+"/←", "previous day"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// event maps a key press to a navigation event; unbound keys are None.
func (k keyMap) event(msg tea.KeyMsg) nav.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return nav.Quit
	case key.Matches(msg, k.Next):
		return nav.Advance
	case key.Matches(msg, k.Previous):
		return nav.Retreat
	default:
		return nav.None
	}
}

// Binding describes one action of the interactive view for a key legend.
type Binding struct {
	Keys   []string
	Action string
}

// Bindings lists the keys the interactive view answers to with k.
func Bindings(k config.Keys) []Binding {
	km := newKeyMap(k)
	out := make([]Binding, 0, 3)
	for _, b := range km.ShortHelp() {
		out = append(out, Binding{Keys: b.Keys(), Action: b.Help().Desc})
	}
	return out
}
