package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a set of workers concurrently.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and waits for all of them. The first error
// cancels the context handed to the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
