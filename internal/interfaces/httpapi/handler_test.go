package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/nathanpradana/sportsdash/internal/domain/user"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/account/authgate"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/memory"
	"github.com/nathanpradana/sportsdash/internal/usecase"
)

type stubAccounts struct{}

func (stubAccounts) Login(_ context.Context, username, _ string) (authgate.Session, error) {
	if username == "" {
		return authgate.Session{}, fmt.Errorf("%w: username is required", usecase.ErrInvalidInput)
	}
	return authgate.Session{AccessToken: "token-1", Principal: user.Principal{UserID: "u-1", Username: username}}, nil
}

func (stubAccounts) Register(_ context.Context, username, email, _ string) (authgate.Session, error) {
	return authgate.Session{AccessToken: "token-2", Principal: user.Principal{UserID: "u-2", Username: username, Email: email}}, nil
}

type stubProvider struct{}

func (stubProvider) FetchTeams(context.Context) ([]usecase.ExternalTeam, error) {
	return nil, nil
}

func (stubProvider) FetchPlayers(context.Context, int) ([]usecase.ExternalPlayer, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	seed := memory.Seed()
	leagueRepo := memory.NewLeagueRepository(seed.Leagues)
	teamRepo := memory.NewTeamRepository(seed.Teams)
	playerRepo := memory.NewPlayerRepository(seed.Players)
	gameRepo := memory.NewGameRepository(seed.Games)
	statsRepo := memory.NewPlayerStatsRepository(seed.Lines)
	injuryRepo := memory.NewInjuryRepository(seed.Injuries, seed.PlayerTeams())

	catalog := usecase.NewCatalogService(leagueRepo, teamRepo, playerRepo, gameRepo, injuryRepo, memory.NewSalaryRepository(seed.Salaries))
	handler := NewHandler(
		catalog,
		usecase.NewPlayerService(playerRepo, teamRepo, gameRepo, statsRepo),
		usecase.NewAnalyticsService(leagueRepo, teamRepo, playerRepo, gameRepo, statsRepo),
		usecase.NewInjuryService(injuryRepo, playerRepo, teamRepo),
		usecase.NewDashboardService(catalog, injuryRepo),
		usecase.NewBulkStatsService(gameRepo, playerRepo, statsRepo, memory.NewTxRunner(playerRepo, statsRepo)),
		usecase.NewSyncService(stubProvider{}, teamRepo, playerRepo),
		stubAccounts{},
		slog.New(slog.DiscardHandler),
	)

	verifier := stubVerifier{principal: user.Principal{UserID: "u-1", Username: "nathan"}}
	return NewRouter(handler, verifier, slog.New(slog.DiscardHandler), nil, "job-secret")
}

func doJSON(t *testing.T, router http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "2.0", envelope["apiVersion"])
}

func TestRouter_ListLeaguesPublic(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/leagues", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)
}

func TestRouter_CreateTeamRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	body := `{"league_id":1,"name":"Stormcats","home_city":"Austin"}`
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/teams", "", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/teams", "token-1", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Stormcats", data["name"])
}

func TestRouter_CreateTeamUnknownLeague(t *testing.T) {
	router := newTestRouter(t)

	body := `{"league_id":99,"name":"Stormcats","home_city":"Austin"}`
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/teams", "token-1", body)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CreateTeamRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	body := `{"league_id":1,"name":"Stormcats","home_city":"Austin","mascot":"cat"}`
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/teams", "token-1", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PlayerDetail(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/players/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	playerObj, ok := data["player"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Marcus Webb", playerObj["name"])

	gameLog, ok := data["game_log"].([]any)
	require.True(t, ok)
	require.Len(t, gameLog, 1)
}

func TestRouter_PlayerDetailNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/v1/players/999", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_TeamPerformance(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/analytics/team-performance?league_id=1", "token-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Thunderhawks", first["team_name"])
	// Seed week 2 has no scores yet, so it counts as a scoreless game.
	require.Equal(t, float64(50), first["win_percentage"])
}

func TestRouter_TeamComparison(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/analytics/team-comparison?league_id=1", "token-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	// Thunderhawks won the only decided game, so they lead the table.
	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Thunderhawks", first["team_name"])
	require.Equal(t, float64(1), first["rank"])
	require.Equal(t, float64(10), first["point_differential"])
	require.Equal(t, "National Conference", first["league_name"])
}

func TestRouter_ListSalariesPublic(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/salaries?player_id=1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(42500000), first["total_compensation"])
}

func TestRouter_CreateSalaryRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	body := `{"player_id":4,"season_year":2025,"base_salary":6000000,"bonuses":250000,"cap_hit":6100000,"total_compensation":6250000}`
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/salaries", "", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/salaries", "token-1", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(4), data["player_id"])
	require.Equal(t, float64(6250000), data["total_compensation"])
}

func TestRouter_CreateSalaryUnknownPlayer(t *testing.T) {
	router := newTestRouter(t)

	body := `{"player_id":999,"season_year":2025,"base_salary":1000000}`
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/salaries", "token-1", body)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_InjuryReport(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/injuries/report", "token-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	summary, ok := data["summary"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), summary["total"])
	require.Equal(t, float64(1), summary["active"])
}

func TestRouter_BulkStatsSubmit(t *testing.T) {
	router := newTestRouter(t)

	body := `{"lines":[{"player_id":1,"passing_yards":280,"passing_attempts":35,"passing_completions":24,"touchdowns":2}]}`
	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/games/1/stats/bulk", "token-1", body)
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(1), data["processed"])
}

func TestRouter_BulkStatsRejectsForeignPlayer(t *testing.T) {
	router := newTestRouter(t)

	// Player 6 plays for a team not in game 1.
	body := `{"lines":[{"player_id":6,"tackles":4}]}`
	rec, _ := doJSON(t, router, http.MethodPost, "/v1/games/1/stats/bulk", "token-1", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Login(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/auth/login", "", `{"username":"nathan","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "token-1", data["access_token"])
}

func TestRouter_SyncJobTokenGate(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/internal/jobs/sync", "", `{"league_id":1}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/sync", strings.NewReader(`{"league_id":1,"kinds":["teams"]}`))
	req.Header.Set("X-Internal-Job-Token", "job-secret")
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	require.Equal(t, http.StatusOK, rec2.Code)
}
