// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package main

import (
	"fmt"
	"os"

	"github.com/ddanilov/ghost-shell/internal/clipboard"
	"github.com/ddanilov/ghost-shell/internal/config"
	"github.com/ddanilov/ghost-shell/internal/input"
	"github.com/ddanilov/ghost-shell/internal/logger"
	"github.com/ddanilov/ghost-shell/internal/secmem"
	"github.com/ddanilov/ghost-shell/internal/security"
	"github.com/ddanilov/ghost-shell/internal/shell"
	"github.com/ddanilov/ghost-shell/internal/tui"
	"github.com/ddanilov/ghost-shell/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// Logging is off unless explicitly enabled: any stray log line written
	// to the terminal corrupts the rendered prompt.
	log := logger.Nop()
	if cfg.Shell.Debug {
		log = logger.NewLogger("gsh")
		printBuildInfo()
	}

	// Mask first so process listings never see the real name, then lock
	// memory and disable core dumps before any secret exists.
	if err := secmem.MaskProcessName(cfg.Shell.MaskName); err != nil {
		log.Warn().Err(err).Msg("process name masking failed")
	}
	hardening := secmem.Harden()
	if !hardening.MemoryLocked {
		log.Warn().Msg("memory locking unavailable, secrets may reach swap")
	}

	channel := clipboard.NewChannel(log.GetChildLogger())
	monitor := security.NewMonitor(hardening, log.GetChildLogger())
	session := security.NewSession(monitor, log.GetChildLogger())
	if cfg.Security.Paranoid {
		session.EnableParanoid()
	}

	store := input.NewStore()
	session.SetFatalHook(func() {
		store.Close()
		_ = channel.Clear()
	})

	dispatcher := shell.NewDispatcher(channel, monitor, session, store, cfg, log.GetChildLogger())

	if cfg.Security.ProbeInterval > 0 {
		probe := workers.NewProbeWorker(monitor, cfg.Security.ProbeInterval, nil, log.GetChildLogger())
		workers.New(probe).Run()
		defer probe.Stop()
	}

	runErr := tui.Run(store, dispatcher, cfg.Shell.Prompt)

	store.Close()
	if err := channel.Clear(); err != nil {
		log.Error().Err(err).Msg("clipboard clear on shutdown failed")
	}

	fmt.Println("\n[!] INITIATING SECURE SHUTDOWN...")
	fmt.Println("[*] Overwriting memory buffers... DONE.")
	fmt.Println("[*] All systems clear. Ghost Shell terminated.")

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "session error: %v\n", runErr)
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
