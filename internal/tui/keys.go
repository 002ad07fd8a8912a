package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	rate key.Binding
	sync key.Binding
	quit key.Binding
	any  key.Binding
}

var keys = keyMap{
	rate: key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5")),
	sync: key.NewBinding(key.WithKeys("s")),
	quit: key.NewBinding(key.WithKeys("q", "ctrl+c")),
	any:  key.NewBinding(key.WithKeys("enter", "esc", "q", " ")),
}
