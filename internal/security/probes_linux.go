// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

//go:build linux

package security

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// swapDisabled reports whether /proc/meminfo accounts zero swap. An
// unreadable or unparseable meminfo resolves to "disabled"; the fail-open
// default is logged so it stays observable.
func (m *Monitor) swapDisabled() bool {
	data, err := os.ReadFile(filepath.Join(m.procRoot, "meminfo"))
	if err != nil {
		m.log.Debug().Err(err).Msg("swap probe failed, assuming swap disabled")
		return true
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "SwapTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			break
		}
		return kb == 0
	}

	m.log.Debug().Msg("SwapTotal not found in meminfo, assuming swap disabled")
	return true
}

// tracerPID reads the TracerPid field of /proc/self/status. A zero value
// means no tracer is attached.
func (m *Monitor) tracerPID() (int, bool) {
	data, err := os.ReadFile(filepath.Join(m.procRoot, "self", "status"))
	if err != nil {
		return 0, false
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil || pid == 0 {
			return 0, false
		}
		return pid, true
	}

	return 0, false
}

// scanProcesses enumerates procfs command lines and flags matches against
// the monitoring-tool denylist. At most one threat is reported per process.
func (m *Monitor) scanProcesses() []string {
	entries, err := os.ReadDir(m.procRoot)
	if err != nil {
		return nil
	}

	var threats []string
	for _, entry := range entries {
		if !entry.IsDir() || !isNumeric(entry.Name()) {
			continue
		}

		cmdline, err := os.ReadFile(filepath.Join(m.procRoot, entry.Name(), "cmdline"))
		if err != nil {
			continue
		}

		line := string(cmdline)
		for _, tool := range monitoringTools {
			if strings.Contains(line, tool) {
				threats = append(threats, "Monitoring tool detected: "+tool)
				break
			}
		}
	}

	return threats
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
