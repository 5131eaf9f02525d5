// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package tui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	bannerStyle = lipgloss.NewStyle().Faint(true)
)
