// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package config

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Clipboard.Timeout < 0 {
		return ErrInvalidClipboardConfigs
	}

	if cfg.Security.ProbeInterval < 0 {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Shell.Prompt == "" || cfg.Shell.MaskName == "" {
		return ErrInvalidShellConfigs
	}

	return nil
}
