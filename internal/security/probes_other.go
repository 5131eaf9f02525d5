// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

//go:build !linux

package security

// The probes need procfs. Off Linux each resolves to its safe default:
// swap reported disabled, no tracer, no monitoring tools.

func (m *Monitor) swapDisabled() bool {
	return true
}

func (m *Monitor) tracerPID() (int, bool) {
	return 0, false
}

func (m *Monitor) scanProcesses() []string {
	return nil
}
