package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up   key.Binding
	down key.Binding
	// nextField and prevField never bind letters, so text inputs keep them.
	nextField key.Binding
	prevField key.Binding
	enter     key.Binding
	esc       key.Binding
	toggle    key.Binding
	add       key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	reload    key.Binding
	dismiss   key.Binding
	version   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	nextField: key.NewBinding(key.WithKeys("tab", "down")),
	prevField: key.NewBinding(key.WithKeys("shift+tab", "up")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	toggle:    key.NewBinding(key.WithKeys(" ")),
	add:       key.NewBinding(key.WithKeys("a", "n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d", "ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("o", "c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	dismiss:   key.NewBinding(key.WithKeys("ctrl+x")),
	version:   key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
