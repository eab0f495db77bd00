package httpapi

import "net/http"

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard, err := h.dashboardService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardDTO{
		LeagueCount:    dashboard.LeagueCount,
		TeamCount:      dashboard.TeamCount,
		PlayerCount:    dashboard.PlayerCount,
		GameCount:      dashboard.GameCount,
		ActiveInjuries: dashboard.ActiveInjuries,
	})
}
