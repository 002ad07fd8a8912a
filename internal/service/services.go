package service

import (
	"github.com/ansafin/learnsync/internal/config"
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/store"
)

// Services groups the server-side services behind one constructor.
type Services struct {
	AuthService AuthService
	SyncIngest  SyncIngestService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg.App, logger),
		SyncIngest:  NewSyncIngestService(storages, logger),
	}
}
