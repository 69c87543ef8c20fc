package workers

// Workers aggregates background workers so the server can start and stop
// them as a unit.
type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Shutdown stops the workers in reverse start order.
func (w *Workers) Shutdown() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Shutdown()
	}
}
