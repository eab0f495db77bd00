package httpapi

import (
	"net/http"
	"strings"

	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/usecase"
)

func (h *Handler) GetTeamPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPerformance")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.analyticsService.TeamPerformance(ctx, usecase.TeamPerformanceFilter{
		LeagueID:   leagueID,
		SeasonYear: season,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "team performance failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamPerformanceRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, teamPerformanceToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamComparison")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.analyticsService.TeamComparison(ctx, usecase.TeamPerformanceFilter{
		LeagueID:   leagueID,
		SeasonYear: season,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "team comparison failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamComparisonRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, teamComparisonToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	stats, err := h.analyticsService.LeagueOverview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueStatDTO, 0, len(stats))
	for _, s := range stats {
		items = append(items, leagueStatToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCareerLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCareerLeaders")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	key := strings.TrimSpace(r.URL.Query().Get("key"))
	position := player.Position(strings.TrimSpace(r.URL.Query().Get("position")))
	rows, err := h.analyticsService.CareerLeaders(ctx, key, position, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "career leaders failed", "key", key, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]careerLeaderRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, careerLeaderToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopPerformers")
	defer span.End()

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	performers, err := h.analyticsService.TopPerformers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "top performers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, topPerformersToDTO(performers))
}
