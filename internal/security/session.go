// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package security

import (
	"os"

	"github.com/ddanilov/ghost-shell/internal/logger"
)

// ExitCodeCompromised is the abnormal exit code used by the paranoid
// fail-fast path and the panic command, distinct from the normal exit 0.
const ExitCodeCompromised = 137

// checkpointInterval is how many processed commands pass between periodic
// tracer checks while paranoid mode is active.
const checkpointInterval = 5

// Session carries the paranoid operating mode through the call chain
// explicitly, so the fail-fast decision stays testable without a live
// terminal loop. Two states exist, normal and paranoid, switched only by
// explicit enable and disable.
type Session struct {
	paranoid bool
	monitor  *Monitor
	log      *logger.Logger

	// onFatal runs sensitive-state teardown before the process dies.
	onFatal func()
	exit    func(int)
}

// NewSession constructs a normal-mode [Session] over monitor.
func NewSession(monitor *Monitor, log *logger.Logger) *Session {
	return &Session{
		monitor: monitor,
		log:     log,
		exit:    os.Exit,
	}
}

// SetFatalHook registers fn to run immediately before a fail-fast exit.
// Used to erase the input store and clear the clipboard on the way down.
func (s *Session) SetFatalHook(fn func()) {
	s.onFatal = fn
}

// EnableParanoid switches the session to paranoid mode.
func (s *Session) EnableParanoid() {
	s.paranoid = true
	s.log.Warn().Msg("paranoid mode enabled")
}

// DisableParanoid switches the session back to normal mode.
func (s *Session) DisableParanoid() {
	s.paranoid = false
	s.log.Info().Msg("paranoid mode disabled")
}

// Paranoid reports whether the session is in paranoid mode.
func (s *Session) Paranoid() bool {
	return s.paranoid
}

// Checkpoint runs the periodic paranoid tracer check. It fires on every
// checkpointInterval-th processed command while paranoid mode is active; a
// detected tracer causes immediate non-recoverable termination with
// [ExitCodeCompromised]. Detection is never retried or surfaced as an
// error.
func (s *Session) Checkpoint(commandCount int) {
	if !s.paranoid || commandCount == 0 || commandCount%checkpointInterval != 0 {
		return
	}

	pid, attached := s.monitor.TracerAttached()
	if !attached {
		return
	}

	s.log.Error().Int("tracer_pid", pid).Msg("tracer detected, emergency shutdown")
	if s.onFatal != nil {
		s.onFatal()
	}
	s.exit(ExitCodeCompromised)
}
