package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ansafin/learnsync/internal/config"
	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/service"
	"github.com/ansafin/learnsync/internal/tui"
	"github.com/ansafin/learnsync/internal/utils"
	"github.com/ansafin/learnsync/internal/workers"
)

// App runs the interactive review client: it identifies the user from the
// configured bearer token, starts the background sync worker, and hands
// control to the terminal UI until the session ends.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	cfg      *config.ClientConfig
	logger   *logger.Logger
}

// NewApp assembles the client application from its prepared parts.
func NewApp(services *service.ClientServices, ui *tui.TUI, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, errors.New("client app: missing dependencies")
	}

	return &App{services: services, tui: ui, cfg: cfg, logger: logger}, nil
}

// Run starts the background sync worker and the review UI, blocking until
// the user finishes or quits. The sync worker is stopped on exit; queued
// mutations survive in the local database for the next run.
func (a *App) Run() error {
	ctx := context.Background()

	userID, err := utils.ParseUserIDFromJWT(a.cfg.App.AuthToken)
	if err != nil {
		return fmt.Errorf("parse user id from auth token: %w", err)
	}

	background := workers.NewWorkers(
		newSyncWorker(ctx, a.services.SyncJob, userID, a.cfg.Workers.SyncInterval),
	)
	background.Run()
	defer a.services.SyncJob.Stop()

	// Drain anything left over from previous runs before the first review.
	a.services.SyncJob.Trigger()

	if err = a.tui.ReviewLoop(ctx, userID); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("review session quit by user")
			return nil
		}
		return fmt.Errorf("review loop: %w", err)
	}

	return nil
}
