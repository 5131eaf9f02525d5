// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

// Package security implements the on-demand security-posture monitor: swap,
// tracer and monitoring-tool probes, the status report, and the paranoid
// fail-fast session state.
package security

import (
	"fmt"

	"github.com/ddanilov/ghost-shell/internal/logger"
	"github.com/ddanilov/ghost-shell/internal/secmem"
)

// monitoringTools is the fixed denylist of tracing, debugging and profiling
// tool names matched against running process command lines.
var monitoringTools = []string{
	"strace",
	"ltrace",
	"gdb",
	"auditd",
	"sysdig",
	"bpftrace",
	"perf",
	"systemtap",
}

// Monitor runs synchronous, stateless posture probes. Each probe is
// independent and best-effort: one probe failing never aborts the others,
// and an unsupported platform capability resolves to its safe default
// rather than an error. Probes may block briefly on filesystem and process
// enumeration; callers needing a deadline must impose one externally.
type Monitor struct {
	// procRoot is the procfs mount point, normally /proc. Tests point it
	// at a fixture directory.
	procRoot  string
	hardening secmem.Hardening
	log       *logger.Logger
}

// NewMonitor constructs a [Monitor]. hardening carries the outcome of the
// startup memory protections, which the probes cannot observe after the
// fact.
func NewMonitor(hardening secmem.Hardening, log *logger.Logger) *Monitor {
	return &Monitor{
		procRoot:  "/proc",
		hardening: hardening,
		log:       log,
	}
}

// Probe computes a fresh [Status]. Threats are ordered tracer attachment
// first, then denylist matches in process-table order.
func (m *Monitor) Probe() Status {
	status := Status{
		MemoryLocked:      m.hardening.MemoryLocked,
		CoreDumpsDisabled: m.hardening.CoreDumpsDisabled,
		SwapDisabled:      m.swapDisabled(),
	}

	if pid, attached := m.tracerPID(); attached {
		status.Threats = append(status.Threats, tracerThreat(pid))
	}
	status.Threats = append(status.Threats, m.scanProcesses()...)
	status.MonitoringDetected = len(status.Threats) > 0

	return status
}

// TracerAttached reports whether the current process has an attached
// tracer or debugger, and the tracer's PID when it does.
func (m *Monitor) TracerAttached() (int, bool) {
	return m.tracerPID()
}

func tracerThreat(pid int) string {
	return fmt.Sprintf("ptrace detected (PID: %d)", pid)
}
