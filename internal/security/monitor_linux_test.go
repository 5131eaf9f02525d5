//go:build linux

package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddanilov/ghost-shell/internal/logger"
	"github.com/ddanilov/ghost-shell/internal/secmem"
)

// fakeProc builds a procfs fixture: a meminfo file, a self/status file, and
// one numeric process directory per command line.
func fakeProc(t *testing.T, meminfo, selfStatus string, cmdlines ...string) string {
	t.Helper()
	root := t.TempDir()

	if meminfo != "" {
		require.NoError(t, os.WriteFile(filepath.Join(root, "meminfo"), []byte(meminfo), 0o644))
	}
	if selfStatus != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "self"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "self", "status"), []byte(selfStatus), 0o644))
	}
	for i, cmdline := range cmdlines {
		dir := filepath.Join(root, string(rune('1'+i)))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cmdline"), []byte(cmdline), 0o644))
	}

	return root
}

func testMonitor(procRoot string) *Monitor {
	return &Monitor{procRoot: procRoot, log: logger.Nop()}
}

func TestProbe_CleanSystem(t *testing.T) {
	root := fakeProc(t,
		"MemTotal:       16384 kB\nSwapTotal:             0 kB\n",
		"Name:\tgsh\nTracerPid:\t0\n",
		"/usr/bin/vim\x00notes.txt\x00")

	status := testMonitor(root).Probe()

	assert.True(t, status.SwapDisabled)
	assert.False(t, status.MonitoringDetected)
	assert.Empty(t, status.Threats)
}

func TestProbe_SwapEnabled(t *testing.T) {
	root := fakeProc(t,
		"SwapTotal:       8388604 kB\n",
		"TracerPid:\t0\n")

	status := testMonitor(root).Probe()

	assert.False(t, status.SwapDisabled)
}

func TestProbe_MissingMeminfoFailsOpenToDisabled(t *testing.T) {
	root := fakeProc(t, "", "TracerPid:\t0\n")

	status := testMonitor(root).Probe()

	assert.True(t, status.SwapDisabled)
}

func TestProbe_TracerAttached(t *testing.T) {
	root := fakeProc(t,
		"SwapTotal:       0 kB\n",
		"Name:\tgsh\nTracerPid:\t4242\n")

	status := testMonitor(root).Probe()

	assert.True(t, status.MonitoringDetected)
	require.Len(t, status.Threats, 1)
	assert.Equal(t, "ptrace detected (PID: 4242)", status.Threats[0])
}

func TestProbe_MonitoringToolsFlagged(t *testing.T) {
	root := fakeProc(t,
		"SwapTotal:       0 kB\n",
		"TracerPid:\t0\n",
		"strace\x00-p\x001234\x00",
		"/usr/bin/gdb\x00./target\x00",
		"/usr/bin/less\x00README\x00")

	status := testMonitor(root).Probe()

	assert.True(t, status.MonitoringDetected)
	assert.ElementsMatch(t, []string{
		"Monitoring tool detected: strace",
		"Monitoring tool detected: gdb",
	}, status.Threats)
}

func TestProbe_OneThreatPerProcess(t *testing.T) {
	// A single process matching two denylist entries is reported once.
	root := fakeProc(t,
		"SwapTotal:       0 kB\n",
		"TracerPid:\t0\n",
		"strace\x00gdb\x00")

	status := testMonitor(root).Probe()

	assert.Len(t, status.Threats, 1)
}

func TestProbe_TracerThreatOrderedFirst(t *testing.T) {
	root := fakeProc(t,
		"SwapTotal:       0 kB\n",
		"TracerPid:\t99\n",
		"ltrace\x00")

	status := testMonitor(root).Probe()

	require.Len(t, status.Threats, 2)
	assert.Equal(t, "ptrace detected (PID: 99)", status.Threats[0])
	assert.Equal(t, "Monitoring tool detected: ltrace", status.Threats[1])
}

func TestProbe_FreshSnapshotEachCall(t *testing.T) {
	root := fakeProc(t,
		"SwapTotal:       0 kB\n",
		"TracerPid:\t0\n")
	m := testMonitor(root)

	first := m.Probe()
	assert.False(t, first.MonitoringDetected)

	// The tracer appears between probes; the next snapshot must see it.
	require.NoError(t, os.WriteFile(filepath.Join(root, "self", "status"),
		[]byte("TracerPid:\t7\n"), 0o644))

	second := m.Probe()
	assert.True(t, second.MonitoringDetected)
	assert.False(t, first.MonitoringDetected, "earlier snapshot must stay immutable")
}

func TestProbe_CarriesHardeningOutcome(t *testing.T) {
	root := fakeProc(t, "SwapTotal: 0 kB\n", "TracerPid:\t0\n")
	m := &Monitor{
		procRoot:  root,
		hardening: secmem.Hardening{MemoryLocked: true, CoreDumpsDisabled: true},
		log:       logger.Nop(),
	}

	status := m.Probe()

	assert.True(t, status.MemoryLocked)
	assert.True(t, status.CoreDumpsDisabled)
}

func TestTracerAttached(t *testing.T) {
	root := fakeProc(t, "", "TracerPid:\t31337\n")

	pid, attached := testMonitor(root).TracerAttached()

	assert.True(t, attached)
	assert.Equal(t, 31337, pid)
}
