package workers

// Workers is an ordered collection of background workers started together
// at application startup.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers. Run starts them in the order they
// were passed in.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
