// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Danilov

package workers

import (
	"time"

	"github.com/ddanilov/ghost-shell/internal/logger"
	"github.com/ddanilov/ghost-shell/internal/security"
)

// ProbeWorker re-runs the security posture probes on a fixed interval and
// delivers every fresh snapshot to a callback. The snapshot is recomputed
// each tick, never cached.
type ProbeWorker struct {
	monitor  *security.Monitor
	interval time.Duration
	onStatus func(security.Status)
	log      *logger.Logger

	quit chan struct{}
}

// NewProbeWorker constructs a [ProbeWorker]. onStatus runs on the worker
// goroutine; it must not block for long or probes will be skipped.
func NewProbeWorker(monitor *security.Monitor, interval time.Duration, onStatus func(security.Status), log *logger.Logger) *ProbeWorker {
	return &ProbeWorker{
		monitor:  monitor,
		interval: interval,
		onStatus: onStatus,
		log:      log,
		quit:     make(chan struct{}),
	}
}

// Run implements [Worker]. It spawns the probe loop and returns
// immediately.
func (w *ProbeWorker) Run() {
	go w.loop()
}

// Stop terminates the probe loop. Safe to call once.
func (w *ProbeWorker) Stop() {
	close(w.quit)
}

func (w *ProbeWorker) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.quit:
			return
		case <-ticker.C:
			status := w.monitor.Probe()
			if status.MonitoringDetected {
				w.log.Warn().Strs("threats", status.Threats).Msg("periodic probe detected monitoring")
			}
			if w.onStatus != nil {
				w.onStatus(status)
			}
		}
	}
}
