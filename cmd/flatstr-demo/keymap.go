package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right, Home, End key.Binding
	Backspace, Delete      key.Binding
	Clear, Truncate        key.Binding
	Undo, Quit             key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "remove left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "remove right")),

		Clear:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
		Truncate: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "truncate")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Backspace, k.Delete, k.Clear, k.Truncate, k.Undo, k.Quit}
}
