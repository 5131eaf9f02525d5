// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

// Package input owns the live command line and the in-memory history of the
// shell. Every byte of live text and every history entry is overwritten
// with zeros before its backing memory becomes unreachable: on replacement,
// on explicit purge, and on store teardown.
//
// The store is single-owner: it is mutated only by the foreground editing
// path and never shared with background goroutines, so it needs no
// synchronisation.
package input

import (
	"unicode"

	"github.com/ddanilov/ghost-shell/internal/secmem"
)

// Store holds the live input text, the command history, the read index into
// history, the insertion cursor, and the processed-command counter.
type Store struct {
	content []rune
	history [][]rune

	// historyIndex points into history during navigation; a value of
	// len(history) means the live (not yet committed) line.
	historyIndex int
	cursor       int
	commandCount int
}

// NewStore returns an empty [Store].
func NewStore() *Store {
	return &Store{}
}

// Insert places r at the cursor and advances the cursor past it.
func (s *Store) Insert(r rune) {
	s.content = append(s.content, 0)
	copy(s.content[s.cursor+1:], s.content[s.cursor:])
	s.content[s.cursor] = r
	s.cursor++
}

// Backspace deletes the rune before the cursor, if any. The vacated slot is
// zeroed before the slice is shortened.
func (s *Store) Backspace() {
	if s.cursor == 0 {
		return
	}
	copy(s.content[s.cursor-1:], s.content[s.cursor:])
	s.content[len(s.content)-1] = 0
	s.content = s.content[:len(s.content)-1]
	s.cursor--
}

// MoveLeft moves the cursor one position left, clamped at zero.
func (s *Store) MoveLeft() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveRight moves the cursor one position right, clamped at the line end.
func (s *Store) MoveRight() {
	if s.cursor < len(s.content) {
		s.cursor++
	}
}

// HistoryUp replaces the live text with the previous history entry. It is
// clamped at the oldest entry; there is no wraparound.
func (s *Store) HistoryUp() {
	if s.historyIndex == 0 {
		return
	}
	s.historyIndex--
	s.setContent(s.history[s.historyIndex])
}

// HistoryDown replaces the live text with the next history entry, or clears
// the line when navigation moves past the newest entry. Clamped, no
// wraparound.
func (s *Store) HistoryDown() {
	if s.historyIndex >= len(s.history) {
		return
	}
	s.historyIndex++
	if s.historyIndex == len(s.history) {
		s.setContent(nil)
		return
	}
	s.setContent(s.history[s.historyIndex])
}

// Commit appends the live text to history, skipping blank lines and
// verbatim duplicates of the most recent entry, and resets the history
// read index to one past the last entry.
func (s *Store) Commit() {
	if !s.blank() && !s.duplicatesLast() {
		entry := make([]rune, len(s.content))
		copy(entry, s.content)
		s.history = append(s.history, entry)
	}
	s.historyIndex = len(s.history)
}

// Reset erases the live text and moves the history read index to one past
// the last entry. History itself is untouched.
func (s *Store) Reset() {
	secmem.ZeroRunes(s.content)
	s.content = s.content[:0]
	s.cursor = 0
	s.historyIndex = len(s.history)
}

// PurgeHistory erases every history entry's bytes, empties the collection,
// and returns the number of entries destroyed.
func (s *Store) PurgeHistory() int {
	count := len(s.history)
	for _, entry := range s.history {
		secmem.ZeroRunes(entry)
	}
	s.history = nil
	s.historyIndex = 0
	return count
}

// Close erases the live text and the entire history. It must run on every
// path that ends the store's lifetime, normal and abnormal alike.
func (s *Store) Close() {
	secmem.ZeroRunes(s.content)
	s.content = nil
	s.PurgeHistory()
	s.cursor = 0
	s.commandCount = 0
}

// RecordCommand increments and returns the processed-command counter.
func (s *Store) RecordCommand() int {
	s.commandCount++
	return s.commandCount
}

// Line returns the live text as a string. The returned copy is the caller's
// to dispose of.
func (s *Store) Line() string {
	return string(s.content)
}

// Cursor returns the insertion cursor position in runes.
func (s *Store) Cursor() int {
	return s.cursor
}

// History returns copies of all history entries, oldest first.
func (s *Store) History() []string {
	entries := make([]string, len(s.history))
	for i, entry := range s.history {
		entries[i] = string(entry)
	}
	return entries
}

// HistoryLen returns the number of stored history entries.
func (s *Store) HistoryLen() int {
	return len(s.history)
}

// setContent replaces the live text with a copy of src, erasing the old
// text first. The cursor lands at the end of the new line.
func (s *Store) setContent(src []rune) {
	secmem.ZeroRunes(s.content)
	s.content = append(s.content[:0], src...)
	s.cursor = len(s.content)
}

func (s *Store) blank() bool {
	for _, r := range s.content {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func (s *Store) duplicatesLast() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	if len(last) != len(s.content) {
		return false
	}
	for i, r := range last {
		if s.content[i] != r {
			return false
		}
	}
	return true
}
