package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-nutri-track/internal/cache"
	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server workers. The cache janitor is added only
// for the in-memory cache; Redis expires keys on its own.
func NewWorkers(resultCache cache.Cache, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if memory, ok := resultCache.(ExpiringCache); ok {
		w.workers = append(w.workers, NewCacheJanitor(memory, cfg.CacheCleanupInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

// Len reports how many workers are registered.
func (w *Workers) Len() int {
	return len(w.workers)
}
