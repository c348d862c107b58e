package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
)

const defaultRefreshInterval = 5 * time.Minute

type clientRefreshJob struct {
	foodService ClientFoodService
	logger      *logger.Logger
	now         func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls foodService.List
// for the current day on a ticker. The job is idle until Start is called.
func NewClientRefreshJob(foodService ClientFoodService, logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{foodService: foodService, logger: logger, now: time.Now}
}

// Start implements ClientRefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes today's entries every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, session models.Session, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.foodService.List(jobCtx, session, j.now()); err != nil && jobCtx.Err() == nil {
					j.logger.Err(err).Str("func", "clientRefreshJob.Start").Msg("background refresh failed")
				}
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
