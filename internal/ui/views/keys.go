package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap describes the bindings shown in the help footer
type KeyMap struct {
	Move   key.Binding
	Extend key.Binding
	Toggle key.Binding
	All    key.Binding
	Filter key.Binding
	Search key.Binding
	Accept key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the bindings of normal mode
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move:   key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", "move")),
		Extend: key.NewBinding(key.WithKeys("shift+up", "shift+down", "J", "K"), key.WithHelp("⇧↑/↓", "extend")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		All:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "all")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Search: key.NewBinding(key.WithKeys("s", "n", "N"), key.WithHelp("s/n/N", "search")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Extend, k.Toggle, k.All, k.Filter, k.Accept, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Extend, k.Toggle, k.All},
		{k.Filter, k.Search, k.Accept, k.Help, k.Quit},
	}
}
