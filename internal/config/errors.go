// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package config

import "errors"

// Validation errors returned by [Config.validate] when configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidClipboardConfigs indicates invalid clipboard settings
	// (for example, a negative auto-clear timeout).
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidSecurityConfigs indicates invalid security settings
	// (for example, a negative probe interval).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidShellConfigs indicates invalid shell settings
	// (for example, an empty prompt after merging defaults).
	ErrInvalidShellConfigs = errors.New("invalid shell configuration")
)
