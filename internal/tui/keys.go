package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	copy  key.Binding
	up    key.Binding
	down  key.Binding
	quit  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter")),
	copy:  key.NewBinding(key.WithKeys("ctrl+y")),
	up:    key.NewBinding(key.WithKeys("up", "pgup")),
	down:  key.NewBinding(key.WithKeys("down", "pgdown")),
	quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
