package workers

// Workers aggregates background workers and starts them together.
type Workers struct {
	workers []Worker
}

// New collects workers into a single [Workers] aggregate.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every registered worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
