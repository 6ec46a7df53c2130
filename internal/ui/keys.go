package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Query box
	Focus  key.Binding
	Submit key.Binding
	Clear  key.Binding

	// Pager
	NextPage key.Binding
	PrevPage key.Binding

	// Results
	Up           key.Binding
	Down         key.Binding
	ToggleInfo   key.Binding
	CopyURL      key.Binding
	RandomPick   key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Run search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),

		NextPage: key.NewBinding(
			key.WithKeys("n", "right", "pgdown"),
			key.WithHelp("n/→", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left", "pgup"),
			key.WithHelp("p/←", "Previous page"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Previous result"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Next result"),
		),
		ToggleInfo: key.NewBinding(
			key.WithKeys("i", "enter"),
			key.WithHelp("i/enter", "Toggle info"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy link"),
		),
		RandomPick: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Feeling playful"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Scroll up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Scroll down"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.NextPage, k.PrevPage, k.ToggleInfo, k.RandomPick, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Submit, k.Clear},
		{k.NextPage, k.PrevPage},
		{k.Down, k.Up, k.ToggleInfo, k.CopyURL, k.RandomPick, k.HalfPageDown, k.HalfPageUp},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
