package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send     key.Binding
	quit     key.Binding
	copyLast key.Binding
	scrollUp key.Binding
	scrollDn key.Binding
	about    key.Binding
	dismiss  key.Binding
}

var keys = keyMap{
	send:     key.NewBinding(key.WithKeys("enter")),
	quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	copyLast: key.NewBinding(key.WithKeys("ctrl+y")),
	scrollUp: key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
	scrollDn: key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
	about:    key.NewBinding(key.WithKeys("f1")),
	dismiss:  key.NewBinding(key.WithKeys("enter", "esc", "ctrl+c")),
}
