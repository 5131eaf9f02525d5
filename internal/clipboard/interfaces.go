// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package clipboard

// System abstracts the OS clipboard so the channel can be exercised in
// tests without a display server. Implementations are not required to be
// safe for concurrent use; [Channel] serialises all calls behind its own
// mutex.
type System interface {
	// Get returns the current clipboard text.
	Get() (string, error)

	// Set replaces the clipboard contents with text. Setting the empty
	// string clears the clipboard.
	Set(text string) error
}
