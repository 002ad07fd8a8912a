// Package tui implements the interactive terminal frontend of the client:
// a spaced-repetition review session screen with a closing summary.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/service"
)

var ErrUserQuit = errors.New("user quit the session")

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// ReviewLoop starts a review session for the user and runs the terminal
// program until the session is finished or the user quits.
func (t *TUI) ReviewLoop(ctx context.Context, userID int64) error {
	total, err := t.services.ReviewSession.StartSession(ctx, userID, timeNow())
	if err != nil {
		return err
	}

	model := newReviewModel(ctx, t.services, userID, total)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(reviewModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
