// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package security

import (
	"fmt"
	"strings"
)

// Status is an immutable snapshot of the process security posture, produced
// fresh by every [Monitor.Probe] call and never cached.
type Status struct {
	MemoryLocked       bool
	SwapDisabled       bool
	CoreDumpsDisabled  bool
	MonitoringDetected bool

	// Threats lists detected conditions in probe order: tracer attachment
	// first, then denylisted monitoring tools.
	Threats []string
}

// Report renders the snapshot as the multi-line text shown by the
// security-status command.
func (s Status) Report() string {
	var b strings.Builder
	b.WriteString("=== GHOST SHELL SECURITY STATUS ===\n")

	b.WriteString(fmt.Sprintf("Memory Locked:       %s\n", yesNo(s.MemoryLocked, "✓ YES", "✗ NO")))
	b.WriteString(fmt.Sprintf("Swap Disabled:       %s\n",
		yesNo(s.SwapDisabled, "✓ YES", "⚠ NO (RISK: memory may be swapped to disk)")))
	b.WriteString(fmt.Sprintf("Core Dumps Blocked:  %s\n", yesNo(s.CoreDumpsDisabled, "✓ YES", "✗ NO")))
	b.WriteString(fmt.Sprintf("Monitoring Detected: %s\n",
		yesNo(s.MonitoringDetected, "⚠ YES (potential surveillance)", "✓ NO")))

	if len(s.Threats) > 0 {
		b.WriteString("\n⚠ THREATS DETECTED:\n")
		for _, threat := range s.Threats {
			b.WriteString("  - " + threat + "\n")
		}
	}

	return b.String()
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
