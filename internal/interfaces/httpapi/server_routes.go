package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/register", handler.Register)

	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerDetail)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/salaries", handler.ListSalaries)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("POST /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("POST /v1/games", RequireAuth(verifier, http.HandlerFunc(handler.CreateGame)))
	mux.Handle("POST /v1/injuries", RequireAuth(verifier, http.HandlerFunc(handler.CreateInjury)))
	mux.Handle("POST /v1/salaries", RequireAuth(verifier, http.HandlerFunc(handler.CreateSalary)))

	mux.Handle("GET /v1/analytics/team-performance", RequireAuth(verifier, http.HandlerFunc(handler.GetTeamPerformance)))
	mux.Handle("GET /v1/analytics/team-comparison", RequireAuth(verifier, http.HandlerFunc(handler.GetTeamComparison)))
	mux.Handle("GET /v1/analytics/league-overview", RequireAuth(verifier, http.HandlerFunc(handler.GetLeagueOverview)))
	mux.Handle("GET /v1/analytics/career-leaders", RequireAuth(verifier, http.HandlerFunc(handler.GetCareerLeaders)))
	mux.Handle("GET /v1/analytics/top-performers", RequireAuth(verifier, http.HandlerFunc(handler.GetTopPerformers)))

	mux.Handle("GET /v1/injuries/report", RequireAuth(verifier, http.HandlerFunc(handler.GetInjuryReport)))
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))

	mux.Handle("POST /v1/games/{gameID}/stats/bulk", RequireAuth(verifier, http.HandlerFunc(handler.SubmitBulkStats)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSyncJob)))
}
