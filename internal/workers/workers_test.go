package workers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ddanilov/ghost-shell/internal/logger"
	"github.com/ddanilov/ghost-shell/internal/secmem"
	"github.com/ddanilov/ghost-shell/internal/security"
)

type countingWorker struct {
	runs int
}

func (w *countingWorker) Run() {
	w.runs++
}

func TestWorkers_RunStartsAll(t *testing.T) {
	first := &countingWorker{}
	second := &countingWorker{}

	New(first, second).Run()

	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
}

func TestProbeWorker_DeliversPeriodicSnapshots(t *testing.T) {
	monitor := security.NewMonitor(secmem.Hardening{}, logger.Nop())

	var probes atomic.Int32
	var once sync.Once
	done := make(chan struct{})

	w := NewProbeWorker(monitor, 10*time.Millisecond, func(security.Status) {
		if probes.Add(1) >= 2 {
			once.Do(func() { close(done) })
		}
	}, logger.Nop())

	w.Run()
	defer w.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("probe worker delivered fewer than 2 snapshots in 2s")
	}
}

func TestProbeWorker_StopEndsLoop(t *testing.T) {
	monitor := security.NewMonitor(secmem.Hardening{}, logger.Nop())

	var probes atomic.Int32
	w := NewProbeWorker(monitor, 5*time.Millisecond, func(security.Status) {
		probes.Add(1)
	}, logger.Nop())

	w.Run()
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	seen := probes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, seen, probes.Load(), "no probes may run after Stop")
}
