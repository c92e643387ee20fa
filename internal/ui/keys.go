package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every key binding the catalog screen reacts to
type keyMap struct {
	up       key.Binding
	down     key.Binding
	trailer  key.Binding
	details  key.Binding
	focus    key.Binding
	search   key.Binding
	close    key.Binding
	copyLink key.Binding
	dismiss  key.Binding
	quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		trailer: key.NewBinding(
			key.WithKeys("enter", "t"),
			key.WithHelp("enter/t", "trailer"),
		),
		details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "details"),
		),
		focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "search/list"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close"),
		),
		copyLink: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy link"),
		),
		dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "ok"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys adapts the bindings that apply to the current overlay to help.KeyMap
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding  { return h }
func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
