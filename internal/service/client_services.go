package service

import (
	"github.com/ansafin/learnsync/internal/adapter"
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/store"
)

// ClientServices groups every client-side service behind one constructor.
type ClientServices struct {
	Queue         QueueService
	ReviewSession ReviewSessionService
	Flush         SyncFlushService
	SyncJob       ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	flushSvc := NewSyncFlushService(storages, serverAdapter, logger)

	return &ClientServices{
		Queue:         NewQueueService(storages, serverAdapter, logger),
		ReviewSession: NewReviewSessionService(storages, serverAdapter, logger),
		Flush:         flushSvc,
		SyncJob:       NewClientSyncJob(flushSvc, logger),
	}
}
