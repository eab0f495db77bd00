// Package app assembles the service: storage, caches, upstream clients,
// use cases and the HTTP router, all driven by config.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/nathanpradana/sportsdash/external/gridiron"
	"github.com/nathanpradana/sportsdash/internal/config"
	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/domain/salary"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/account/authgate"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/memory"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/postgres"
	"github.com/nathanpradana/sportsdash/internal/interfaces/httpapi"
	"github.com/nathanpradana/sportsdash/internal/platform/cache"
	"github.com/nathanpradana/sportsdash/internal/platform/logging"
	"github.com/nathanpradana/sportsdash/internal/platform/resilience"
	"github.com/nathanpradana/sportsdash/internal/usecase"
)

type repositories struct {
	leagues  league.Repository
	teams    team.Repository
	players  player.Repository
	games    game.Repository
	stats    playerstats.Repository
	injuries injury.Repository
	salaries salary.Repository
	tx       usecase.TxRunner
}

// NewHTTPServer wires the full service and returns the server plus a
// cleanup func that releases storage and cache connections.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = slog.Default()
	}

	cleanups := make([]func(), 0, 2)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	repos, closeDB, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if closeDB != nil {
		cleanups = append(cleanups, closeDB)
	}

	verified, closeCache := buildVerifiedCache(cfg, logger)
	if closeCache != nil {
		cleanups = append(cleanups, closeCache)
	}

	accounts := authgate.NewClient(
		&http.Client{Timeout: cfg.AuthGateTimeout},
		cfg.AuthGateBaseURL,
		verified,
		logger,
	)

	provider := buildSportsDataProvider(cfg, logger)

	catalog := usecase.NewCatalogService(repos.leagues, repos.teams, repos.players, repos.games, repos.injuries, repos.salaries)
	handler := httpapi.NewHandler(
		catalog,
		usecase.NewPlayerService(repos.players, repos.teams, repos.games, repos.stats),
		usecase.NewAnalyticsService(repos.leagues, repos.teams, repos.players, repos.games, repos.stats),
		usecase.NewInjuryService(repos.injuries, repos.players, repos.teams),
		usecase.NewDashboardService(catalog, repos.injuries),
		usecase.NewBulkStatsService(repos.games, repos.players, repos.stats, repos.tx),
		usecase.NewSyncService(provider, repos.teams, repos.players),
		accounts,
		logger,
	)

	router := httpapi.NewRouter(handler, accounts, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open postgres: %w", err)
		}
		logger.Info("storage ready", "driver", config.StoragePostgres, "db", dbNameFromURL(cfg.DBURL))

		closeDB := func() {
			if err := db.Close(); err != nil {
				logger.Error("close postgres", "error", err)
			}
		}

		return repositories{
			leagues:  postgres.NewLeagueRepository(db),
			teams:    postgres.NewTeamRepository(db),
			players:  postgres.NewPlayerRepository(db),
			games:    postgres.NewGameRepository(db),
			stats:    postgres.NewPlayerStatsRepository(db),
			injuries: postgres.NewInjuryRepository(db),
			salaries: postgres.NewSalaryRepository(db),
			tx:       postgres.NewTxManager(db),
		}, closeDB, nil
	case config.StorageMemory:
		seed := memory.Seed()
		logger.Info("storage ready", "driver", config.StorageMemory)

		players := memory.NewPlayerRepository(seed.Players)
		stats := memory.NewPlayerStatsRepository(seed.Lines)

		return repositories{
			leagues:  memory.NewLeagueRepository(seed.Leagues),
			teams:    memory.NewTeamRepository(seed.Teams),
			players:  players,
			games:    memory.NewGameRepository(seed.Games),
			stats:    stats,
			injuries: memory.NewInjuryRepository(seed.Injuries, seed.PlayerTeams()),
			salaries: memory.NewSalaryRepository(seed.Salaries),
			tx:       memory.NewTxRunner(players, stats),
		}, nil, nil
	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func buildVerifiedCache(cfg config.Config, logger *slog.Logger) (*cache.Loader, func()) {
	if !cfg.CacheEnabled {
		logger.Info("token cache disabled", "reason", "CACHE_ENABLED=false")
		return nil, nil
	}

	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		logger.Info("token cache ready", "backend", config.CacheBackendRedis, "addr", cfg.RedisAddr)

		closeRedis := func() {
			if err := client.Close(); err != nil {
				logger.Error("close redis", "error", err)
			}
		}

		return cache.NewLoader(cache.NewRedis(client, cfg.RedisPrefix, cfg.CacheTTL)), closeRedis
	default:
		logger.Info("token cache ready", "backend", config.CacheBackendMemory, "ttl", cfg.CacheTTL.String())
		return cache.NewLoader(cache.NewMemory(cfg.CacheTTL)), nil
	}
}

func buildSportsDataProvider(cfg config.Config, logger *slog.Logger) usecase.SportsDataProvider {
	if !cfg.GridironEnabled {
		logger.Info("gridiron disabled", "reason", "GRIDIRON_ENABLED=false")
		return disabledProvider{}
	}

	return gridiron.NewClient(gridiron.ClientConfig{
		BaseURL:    cfg.GridironBaseURL,
		APIKey:     cfg.GridironAPIKey,
		Timeout:    cfg.GridironTimeout,
		MaxRetries: cfg.GridironMaxRetries,
		Logger:     logging.Default(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GridironCircuitEnabled,
			FailureThreshold: cfg.GridironCircuitFailureCount,
			OpenTimeout:      cfg.GridironCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GridironCircuitHalfOpenMaxReq,
		},
	})
}

// disabledProvider serves sync runs when no upstream is configured.
type disabledProvider struct{}

func (disabledProvider) FetchTeams(context.Context) ([]usecase.ExternalTeam, error) {
	return nil, fmt.Errorf("%w: gridiron sync is disabled", usecase.ErrDependencyUnavailable)
}

func (disabledProvider) FetchPlayers(context.Context, int) ([]usecase.ExternalPlayer, error) {
	return nil, fmt.Errorf("%w: gridiron sync is disabled", usecase.ErrDependencyUnavailable)
}
