// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	backspace key.Binding
	tab       key.Binding
	interrupt key.Binding
	eof       key.Binding
	clear     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	backspace: key.NewBinding(key.WithKeys("backspace")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	eof:       key.NewBinding(key.WithKeys("ctrl+d")),
	clear:     key.NewBinding(key.WithKeys("ctrl+l")),
}
