package http

import (
	"encoding/json"
	"net/http"

	"github.com/ansafin/learnsync/internal/app"

	"github.com/ansafin/learnsync/internal/logger"
	"github.com/ansafin/learnsync/internal/utils"
	"github.com/ansafin/learnsync/models"
)

func (h *Handler) syncQuizAttempt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncQuizAttempt").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.QuizSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.syncQuizAttempt").Msg(app.MsgInvalidDataProvided)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	duplicate, err := h.services.SyncIngest.ApplyQuizAttempt(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncQuizAttempt").Msg(app.MsgQuizAttemptNotApplied)
		http.Error(w, app.MsgQuizAttemptNotApplied, h.statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncAcceptedResponse{Accepted: true, Duplicate: duplicate}, http.StatusOK)
}

func (h *Handler) syncProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncProgress").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.ProgressSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.syncProgress").Msg(app.MsgInvalidDataProvided)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.SyncIngest.ApplyProgress(ctx, userID, req); err != nil {
		log.Err(err).Str("func", "*Handler.syncProgress").Msg(app.MsgProgressNotApplied)
		http.Error(w, app.MsgProgressNotApplied, h.statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncAcceptedResponse{Accepted: true}, http.StatusOK)
}

func (h *Handler) syncReviewResult(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncReviewResult").Msg(app.MsgNoUserIDProvided)
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.ReviewSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.syncReviewResult").Msg(app.MsgInvalidDataProvided)
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	duplicate, err := h.services.SyncIngest.ApplyReviewResult(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncReviewResult").Msg(app.MsgReviewResultNotApplied)
		http.Error(w, app.MsgReviewResultNotApplied, h.statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncAcceptedResponse{Accepted: true, Duplicate: duplicate}, http.StatusOK)
}
