package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// ExternalTeam is a club as the upstream sports-data provider reports it.
type ExternalTeam struct {
	Name      string
	City      string
	HeadCoach string
	Stadium   string
}

// ExternalPlayer is a roster entry as the provider reports it, career
// counters included.
type ExternalPlayer struct {
	Name     string
	Position string
	TeamName string
	Career   player.Career
}

// SportsDataProvider fetches upstream reference data for sync runs.
type SportsDataProvider interface {
	FetchTeams(ctx context.Context) ([]ExternalTeam, error)
	FetchPlayers(ctx context.Context, limit int) ([]ExternalPlayer, error)
}

const (
	syncKindTeams   = "teams"
	syncKindPlayers = "players"

	syncStatusSuccess = "success"
	syncStatusFailed  = "failed"

	defaultSyncWorkers = 4
)

type SyncInput struct {
	LeagueID    int64
	Kinds       []string
	PlayerLimit int
	MaxWorkers  int
}

type SyncResult struct {
	TaskCount    int              `json:"task_count"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	WorkerCount  int              `json:"worker_count"`
	Tasks        []SyncTaskResult `json:"tasks"`
}

type SyncTaskResult struct {
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// SyncService pulls teams and rosters from the upstream provider into the
// local repositories. Each requested kind runs as its own worker task.
type SyncService struct {
	provider   SportsDataProvider
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewSyncService(provider SportsDataProvider, teamRepo team.Repository, playerRepo player.Repository) *SyncService {
	return &SyncService{
		provider:   provider,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *SyncService) Run(ctx context.Context, input SyncInput) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.Run")
	defer span.End()

	if s.provider == nil {
		return SyncResult{}, fmt.Errorf("%w: no sports data provider configured", ErrDependencyUnavailable)
	}
	if input.LeagueID <= 0 {
		return SyncResult{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	kinds := normalizeSyncKinds(input.Kinds)
	if len(kinds) == 0 {
		return SyncResult{}, fmt.Errorf("%w: no recognized sync kinds", ErrInvalidInput)
	}

	workers := input.MaxWorkers
	if workers <= 0 {
		workers = defaultSyncWorkers
	}
	if workers > len(kinds) {
		workers = len(kinds)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return SyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var successCount, failedCount atomic.Int32
	results := make([]SyncTaskResult, len(kinds))

	var wg sync.WaitGroup
	for i, kind := range kinds {
		i, kind := i, kind
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			started := time.Now()
			records, taskErr := s.runKind(ctx, kind, input)
			result := SyncTaskResult{
				Kind:       kind,
				Status:     syncStatusSuccess,
				Records:    records,
				DurationMs: time.Since(started).Milliseconds(),
			}
			if taskErr != nil {
				result.Status = syncStatusFailed
				result.Message = taskErr.Error()
				failedCount.Add(1)
			} else {
				successCount.Add(1)
			}
			results[i] = result
		}); err != nil {
			wg.Done()
			return SyncResult{}, fmt.Errorf("submit sync task: %w", err)
		}
	}
	wg.Wait()

	return SyncResult{
		TaskCount:    len(kinds),
		SuccessCount: int(successCount.Load()),
		FailedCount:  int(failedCount.Load()),
		WorkerCount:  workers,
		Tasks:        results,
	}, nil
}

func (s *SyncService) runKind(ctx context.Context, kind string, input SyncInput) (int, error) {
	switch kind {
	case syncKindTeams:
		return s.syncTeams(ctx, input.LeagueID)
	case syncKindPlayers:
		return s.syncPlayers(ctx, input.PlayerLimit)
	default:
		return 0, fmt.Errorf("%w: unknown sync kind %q", ErrInvalidInput, kind)
	}
}

func (s *SyncService) syncTeams(ctx context.Context, leagueID int64) (int, error) {
	external, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch teams: %v", ErrDependencyUnavailable, err)
	}

	known, err := s.teamRepo.List(ctx, team.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list teams: %w", err)
	}
	knownNames := make(map[string]struct{}, len(known))
	for _, t := range known {
		knownNames[strings.ToLower(t.Name)] = struct{}{}
	}

	created := 0
	for _, et := range external {
		if _, ok := knownNames[strings.ToLower(et.Name)]; ok {
			continue
		}
		t := team.Team{
			LeagueID:  leagueID,
			Name:      et.Name,
			HomeCity:  et.City,
			HeadCoach: et.HeadCoach,
			Stadium:   et.Stadium,
		}
		if err := t.Validate(); err != nil {
			continue
		}
		if _, err := s.teamRepo.Create(ctx, t); err != nil {
			return created, fmt.Errorf("create team %s: %w", et.Name, err)
		}
		created++
	}

	return created, nil
}

func (s *SyncService) syncPlayers(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = 50
	}

	external, err := s.provider.FetchPlayers(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("%w: fetch players: %v", ErrDependencyUnavailable, err)
	}

	teams, err := s.teamRepo.List(ctx, team.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list teams: %w", err)
	}
	teamByName := make(map[string]team.Team, len(teams))
	for _, t := range teams {
		teamByName[strings.ToLower(t.Name)] = t
	}

	known, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return 0, fmt.Errorf("list players: %w", err)
	}
	knownNames := make(map[string]struct{}, len(known))
	for _, p := range known {
		knownNames[strings.ToLower(p.Name)] = struct{}{}
	}

	created := 0
	for _, ep := range external {
		if _, ok := knownNames[strings.ToLower(ep.Name)]; ok {
			continue
		}
		t, ok := teamByName[strings.ToLower(ep.TeamName)]
		if !ok {
			continue
		}
		p := player.Player{
			TeamID:   t.ID,
			Name:     ep.Name,
			Position: player.Position(ep.Position),
			Career:   ep.Career,
		}
		if err := p.Validate(); err != nil {
			continue
		}
		if _, err := s.playerRepo.Create(ctx, p); err != nil {
			return created, fmt.Errorf("create player %s: %w", ep.Name, err)
		}
		created++
	}

	return created, nil
}

func normalizeSyncKinds(kinds []string) []string {
	seen := make(map[string]struct{}, len(kinds))
	out := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		kind = strings.ToLower(strings.TrimSpace(kind))
		if kind != syncKindTeams && kind != syncKindPlayers {
			continue
		}
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}
		out = append(out, kind)
	}

	return out
}
