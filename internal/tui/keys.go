package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggle   key.Binding
	hide     key.Binding
	send     key.Binding
	copy     key.Binding
	info     key.Binding
	quit     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
}

var keys = keyMap{
	toggle:   key.NewBinding(key.WithKeys("ctrl+t")),
	hide:     key.NewBinding(key.WithKeys("esc")),
	send:     key.NewBinding(key.WithKeys("enter")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	info:     key.NewBinding(key.WithKeys("f1")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
}
