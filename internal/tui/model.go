// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

// Package tui renders the interactive session: a transcript of previous
// commands and one prompt line edited through the secure input store. All
// line state lives in the store and all command semantics in the dispatcher;
// the model only translates key events and draws.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ddanilov/ghost-shell/internal/input"
	"github.com/ddanilov/ghost-shell/internal/shell"
)

// Banner is the first transcript line of a new session.
const Banner = "Initializing Ghost Shell protocol..."

// Model is the single-screen session model.
type Model struct {
	store      *input.Store
	dispatcher *shell.Dispatcher
	prompt     string

	transcript []string
	exiting    bool
}

// NewModel constructs the session [Model]. prompt is the label shown before
// the current directory on the input line.
func NewModel(store *input.Store, dispatcher *shell.Dispatcher, prompt string) Model {
	return Model{
		store:      store,
		dispatcher: dispatcher,
		prompt:     prompt,
		transcript: []string{bannerStyle.Render(Banner)},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.interrupt):
		m.transcript = append(m.transcript, m.renderPrompt()+m.store.Line()+"^C")
		m.store.Reset()

	case key.Matches(keyMsg, keys.eof):
		m.exiting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.clear):
		m.transcript = nil

	case key.Matches(keyMsg, keys.up):
		m.store.HistoryUp()

	case key.Matches(keyMsg, keys.down):
		m.store.HistoryDown()

	case key.Matches(keyMsg, keys.left):
		m.store.MoveLeft()

	case key.Matches(keyMsg, keys.right):
		m.store.MoveRight()

	case key.Matches(keyMsg, keys.backspace):
		m.store.Backspace()

	case key.Matches(keyMsg, keys.tab):
		completeWord(m.store)

	case key.Matches(keyMsg, keys.enter):
		return m.submit()

	default:
		switch keyMsg.Type {
		case tea.KeyRunes:
			for _, r := range keyMsg.Runes {
				m.store.Insert(r)
			}
		case tea.KeySpace:
			m.store.Insert(' ')
		}
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.exiting {
		return b.String()
	}
	b.WriteString(m.renderPrompt())
	b.WriteString(m.renderLine())
	return b.String()
}

// submit executes the current line. History is committed after execution, so
// a purge count never includes the purge command itself.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.store.Line()
	echoed := m.renderPrompt() + line

	res := m.dispatcher.Execute(line)
	m.store.Commit()
	m.store.Reset()

	if res.ClearScreen {
		m.transcript = nil
	} else {
		m.transcript = append(m.transcript, echoed)
	}
	if res.Output != "" {
		m.transcript = append(m.transcript, res.Output)
	}
	if res.Exit {
		m.exiting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) renderPrompt() string {
	dir := "/"
	if wd, err := os.Getwd(); err == nil {
		dir = filepath.Base(wd)
	}
	return promptStyle.Render(fmt.Sprintf("%s %s>> ", m.prompt, dir))
}

// renderLine draws the edit buffer with the cursor as a reversed cell.
func (m Model) renderLine() string {
	runes := []rune(m.store.Line())
	cur := m.store.Cursor()
	if cur >= len(runes) {
		return string(runes) + cursorStyle.Render(" ")
	}
	return string(runes[:cur]) + cursorStyle.Render(string(runes[cur])) + string(runes[cur+1:])
}

// completeWord extends the last word of the line with the unique filename
// completion in its directory. Multiple matches leave the line untouched.
func completeWord(store *input.Store) {
	fields := strings.Fields(store.Line())
	if len(fields) == 0 {
		return
	}
	last := fields[len(fields)-1]

	dir := "."
	if strings.Contains(last, "/") {
		dir = filepath.Dir(last)
	}
	prefix := filepath.Base(last)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var match string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if match != "" {
			return
		}
		match = name
	}
	if match == "" {
		return
	}

	for _, r := range match[len(prefix):] {
		store.Insert(r)
	}
}
