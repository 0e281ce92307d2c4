// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package page

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keyboard bindings of the page view.
type KeyMap struct {
	Sections     key.Binding
	NextSection  key.Binding
	PrevSection  key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Overlay      key.Binding
	TerminalPage key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Sections: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "jump to section"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("Tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "p"),
			key.WithHelp("S-Tab", "previous section"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("PgDn", "page down"),
		),
		Overlay: key.NewBinding(
			key.WithKeys("t", "`"),
			key.WithHelp("t", "terminal"),
		),
		TerminalPage: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "terminal page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sections, k.Down, k.Overlay, k.TerminalPage, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Sections, k.NextSection, k.PrevSection},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Overlay, k.TerminalPage, k.Quit},
	}
}
