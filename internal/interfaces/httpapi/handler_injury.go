package httpapi

import (
	"net/http"
	"strings"

	"github.com/nathanpradana/sportsdash/internal/domain/injury"
)

func (h *Handler) GetInjuryReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetInjuryReport")
	defer span.End()

	playerID, err := queryInt64(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryInt64(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.injuryService.Report(ctx, injury.Filter{
		PlayerID:   playerID,
		TeamID:     teamID,
		Severity:   strings.TrimSpace(r.URL.Query().Get("severity")),
		ActiveOnly: queryBool(r, "active"),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "injury report failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, injuryReportToDTO(report))
}
