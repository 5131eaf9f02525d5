// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddanilov/ghost-shell/internal/input"
	"github.com/ddanilov/ghost-shell/internal/shell"
)

// Run drives the interactive session until the user exits. It returns only
// on a normal shutdown; the fail-fast paths terminate the process from
// inside the dispatcher.
func Run(store *input.Store, dispatcher *shell.Dispatcher, prompt string) error {
	_, err := tea.NewProgram(NewModel(store, dispatcher, prompt), tea.WithAltScreen()).Run()
	return err
}
