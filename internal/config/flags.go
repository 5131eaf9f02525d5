// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the command line.
//
// Flags:
//
//	-clipboard-timeout auto-clear delay for copied values (e.g., "30s", "1m")
//	-plaintext disable per-copy encryption
//	-probe-interval background posture-probe period (e.g., "1m"; 0 disables)
//	-paranoid start the session in paranoid mode
//	-mask-name kernel-visible process name to assume
//	-prompt prompt label
//	-debug enable JSON logging to stderr
//	-c/-config json file path with configs
func ParseFlags() *Config {
	return parseFlags(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) *Config {
	var clipboardTimeout time.Duration
	var plaintext bool
	var probeInterval time.Duration
	var paranoid bool
	var maskName string
	var prompt string
	var debug bool
	var jsonConfigPath string

	fs.DurationVar(&clipboardTimeout, "clipboard-timeout", 0, "Auto-clear delay (e.g., 30s, 1m)")
	fs.BoolVar(&plaintext, "plaintext", false, "Disable per-copy encryption")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Posture probe period (0 disables)")
	fs.BoolVar(&paranoid, "paranoid", false, "Start in paranoid mode")
	fs.StringVar(&maskName, "mask-name", "", "Kernel-visible process name")
	fs.StringVar(&prompt, "prompt", "", "Prompt label")
	fs.BoolVar(&debug, "debug", false, "Enable JSON logging to stderr")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// ExitOnError makes a parse failure terminate with usage output.
	_ = fs.Parse(args)

	return &Config{
		Clipboard: Clipboard{
			Timeout:   clipboardTimeout,
			Plaintext: plaintext,
		},
		Security: Security{
			ProbeInterval: probeInterval,
			Paranoid:      paranoid,
		},
		Shell: Shell{
			MaskName: maskName,
			Prompt:   prompt,
			Debug:    debug,
		},
		JSONFilePath: jsonConfigPath,
	}
}
