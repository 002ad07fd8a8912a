package service

import (
	"context"
	"sync"
	"time"

	"github.com/ansafin/learnsync/internal/logger"
)

type clientSyncJob struct {
	flush  SyncFlushService
	logger *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	trigger chan struct{}
}

// NewClientSyncJob creates a clientSyncJob that runs flush cycles on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(flush SyncFlushService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		flush:   flush,
		logger:  logger,
		trigger: make(chan struct{}, 1),
	}
}

// Start implements ClientSyncJob. It stops any previously running job,
// then launches a background goroutine that runs one flush cycle every
// interval and whenever Trigger is called. If interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, userID int64, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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
			case <-j.trigger:
			}

			if err := j.flush.Flush(jobCtx, userID); err != nil {
				j.logger.Err(err).Int64("user_id", userID).Msg("background sync flush failed")
			}
		}
	}()
}

// Trigger implements ClientSyncJob. The buffered channel of size one
// coalesces bursts of triggers into a single pending cycle.
func (j *clientSyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
