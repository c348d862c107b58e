package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	prevDay   key.Binding
	nextDay   key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	newEntry  key.Binding
	edit      key.Binding
	delete    key.Binding
	weekly    key.Binding
	goals     key.Binding
	copyImage key.Binding
	refresh   key.Binding
	infer     key.Binding
	save      key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	prevDay:   key.NewBinding(key.WithKeys("left", "h")),
	nextDay:   key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newEntry:  key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	weekly:    key.NewBinding(key.WithKeys("w")),
	goals:     key.NewBinding(key.WithKeys("g")),
	copyImage: key.NewBinding(key.WithKeys("c")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	infer:     key.NewBinding(key.WithKeys("ctrl+p")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
