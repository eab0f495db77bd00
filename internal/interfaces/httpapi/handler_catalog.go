package httpapi

import (
	"net/http"
	"strings"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/salary"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.catalogService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLeague")
	defer span.End()

	var req createLeagueRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateLeague(ctx, league.League{Name: req.Name, Level: req.Level})
	if err != nil {
		h.logger.WarnContext(ctx, "create league failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, leagueToDTO(created))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := team.Filter{
		LeagueID: leagueID,
		Name:     strings.TrimSpace(r.URL.Query().Get("name")),
		City:     strings.TrimSpace(r.URL.Query().Get("city")),
	}
	teams, err := h.catalogService.ListTeams(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateTeam(ctx, team.Team{
		LeagueID:  req.LeagueID,
		Name:      req.Name,
		HomeCity:  req.HomeCity,
		HeadCoach: req.HeadCoach,
		Stadium:   req.Stadium,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	leagueID, err := queryInt64(r, "league_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryInt64(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.catalogService.ListGames(ctx, game.Filter{
		LeagueID:   leagueID,
		TeamID:     teamID,
		SeasonYear: season,
		Week:       week,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list games failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req createGameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateGame(ctx, game.Game{
		LeagueID:   req.LeagueID,
		SeasonYear: req.SeasonYear,
		Week:       req.Week,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		Venue:      req.Venue,
		GameDate:   req.GameDate,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		Attendance: req.Attendance,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(created))
}

func (h *Handler) ListSalaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSalaries")
	defer span.End()

	playerID, err := queryInt64(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	salaries, err := h.catalogService.ListSalaries(ctx, salary.Filter{
		PlayerID:   playerID,
		SeasonYear: season,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list salaries failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]salaryDTO, 0, len(salaries))
	for _, s := range salaries {
		items = append(items, salaryToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSalary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSalary")
	defer span.End()

	var req createSalaryRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateSalary(ctx, salary.Salary{
		PlayerID:   req.PlayerID,
		SeasonYear: req.SeasonYear,
		BaseSalary: req.BaseSalary,
		Bonuses:    req.Bonuses,
		CapHit:     req.CapHit,
		TotalComp:  req.TotalComp,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create salary failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, salaryToDTO(created))
}

func (h *Handler) CreateInjury(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateInjury")
	defer span.End()

	var req createInjuryRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.catalogService.CreateInjury(ctx, injury.Injury{
		PlayerID:    req.PlayerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Severity:    req.Severity,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create injury failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, injuryToDTO(created))
}
