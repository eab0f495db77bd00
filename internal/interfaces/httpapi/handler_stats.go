package httpapi

import (
	"net/http"

	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
)

func (h *Handler) SubmitBulkStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitBulkStats")
	defer span.End()

	gameID, err := pathInt64(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req bulkStatsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lines := make([]playerstats.Line, 0, len(req.Lines))
	for _, dto := range req.Lines {
		lines = append(lines, statLineFromDTO(dto))
	}

	result, err := h.bulkStatsService.Submit(ctx, gameID, lines)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk stats submit failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bulkStatsResultDTO{
		GameID:    result.GameID,
		Processed: result.Processed,
	})
}
