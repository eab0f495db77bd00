package httpapi

import (
	"net/http"

	"github.com/nathanpradana/sportsdash/internal/usecase"
)

func (h *Handler) RunSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncJob")
	defer span.End()

	var req syncJobRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.Run(ctx, usecase.SyncInput{
		LeagueID:    req.LeagueID,
		Kinds:       req.Kinds,
		PlayerLimit: req.PlayerLimit,
		MaxWorkers:  req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "sync job failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
