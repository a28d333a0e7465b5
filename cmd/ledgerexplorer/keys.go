package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Actions
	Enter key.Binding
	Esc   key.Binding

	// View
	ModeFlat        key.Binding
	ModeParent      key.Binding
	ModeType        key.Binding
	ModeInstitution key.Binding
	Accounts        key.Binding
	Sort            key.Binding
	Reverse         key.Binding
	ExpandAll       key.Binding
	CollapseAll     key.Binding
	Trading         key.Binding
	Round           key.Binding
	Colors          key.Binding

	// Commands
	Filter  key.Binding
	Copy    key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse/go to parent"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "go to bottom"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand/collapse"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),

		ModeFlat: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "flat list"),
		),
		ModeParent: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "group by parent"),
		),
		ModeType: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "group by type"),
		),
		ModeInstitution: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "group by institution"),
		),
		Accounts: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "next account set"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next sort column"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse sort"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "collapse all"),
		),
		Trading: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "expand trading accounts"),
		),
		Round: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "round values"),
		),
		Colors: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "row banding"),
		),

		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy full name"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("f5", "reload snapshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Sort, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End, k.Enter,
			k.Filter, k.Esc, k.Copy, k.Refresh, k.Help, k.Quit,
		},
		{
			k.ModeFlat, k.ModeParent, k.ModeType, k.ModeInstitution, k.Accounts, k.Sort, k.Reverse,
			k.ExpandAll, k.CollapseAll, k.Trading, k.Round, k.Colors,
		},
	}
}
