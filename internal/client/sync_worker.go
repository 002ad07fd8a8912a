package client

import (
	"context"
	"time"

	"github.com/ansafin/learnsync/internal/service"
)

// syncWorker adapts the client sync job to the workers.Worker contract so it
// can be started alongside any future background processes.
type syncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	userID   int64
	interval time.Duration
}

func newSyncWorker(ctx context.Context, job service.ClientSyncJob, userID int64, interval time.Duration) *syncWorker {
	return &syncWorker{ctx: ctx, job: job, userID: userID, interval: interval}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.userID, w.interval)
}
