// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package config

import (
	"time"
)

// Config is the top-level configuration container for ghost-shell. It is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Clipboard holds the encrypted-clipboard channel settings.
	Clipboard Clipboard `envPrefix:"GHOST_CLIPBOARD_"`

	// Security holds posture-monitor and paranoid-mode settings.
	Security Security `envPrefix:"GHOST_SECURITY_"`

	// Shell holds interactive-session settings.
	Shell Shell `envPrefix:"GHOST_SHELL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the GHOST_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"GHOST_CONFIG"`
}

// Clipboard holds the settings of the encrypted clipboard channel.
type Clipboard struct {
	// Timeout is the delay before a copied value self-clears. Zero keeps
	// the value until a manual clear.
	// Env: GHOST_CLIPBOARD_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Plaintext disables the default per-copy encryption, storing copied
	// text verbatim.
	// Env: GHOST_CLIPBOARD_PLAINTEXT
	Plaintext bool `env:"PLAINTEXT"`
}

// Security holds posture-monitor settings.
type Security struct {
	// ProbeInterval is how often the background worker re-runs the
	// posture probes. Zero disables the worker; probes then run only on
	// demand.
	// Env: GHOST_SECURITY_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`

	// Paranoid starts the session in paranoid mode, converting tracer
	// detection from advisory to immediately fatal.
	// Env: GHOST_SECURITY_PARANOID
	Paranoid bool `env:"PARANOID"`
}

// Shell holds interactive-session settings.
type Shell struct {
	// MaskName is the process name written over the kernel-visible comm
	// value at startup.
	// Env: GHOST_SHELL_MASK_NAME
	MaskName string `env:"MASK_NAME"`

	// Prompt is the label shown before the current directory in the
	// prompt line.
	// Env: GHOST_SHELL_PROMPT
	Prompt string `env:"PROMPT"`

	// Debug enables JSON logging to stderr. Off by default because any
	// log line written to the terminal corrupts the rendered prompt.
	// Env: GHOST_SHELL_DEBUG
	Debug bool `env:"DEBUG"`
}

// defaults returns the built-in configuration merged in last, filling any
// field no other source has set.
func defaults() *Config {
	return &Config{
		Clipboard: Clipboard{
			Timeout: 30 * time.Second,
		},
		Shell: Shell{
			MaskName: "systemd-journald",
			Prompt:   "gsh",
		},
	}
}

// GetConfig loads, merges, and validates the shell configuration from all
// available sources in the following priority order (earlier sources win;
// later ones only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *Config or an error if any source fails to
// load or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
