// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// systemClipboard implements [System] using github.com/atotto/clipboard,
// which shells out to the platform's native clipboard utility.
type systemClipboard struct{}

func (systemClipboard) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClipboardAccess, err)
	}
	return text, nil
}

func (systemClipboard) Set(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardAccess, err)
	}
	return nil
}
