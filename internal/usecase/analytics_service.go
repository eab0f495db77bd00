package usecase

import (
	"context"
	"fmt"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// TeamPerformanceFilter narrows the team performance report. Zero values
// impose no constraint.
type TeamPerformanceFilter struct {
	LeagueID   int64
	SeasonYear int
}

// TeamPerformanceRow is a TeamStat decorated with its league name.
type TeamPerformanceRow struct {
	TeamStat
	LeagueName string
}

// AnalyticsService computes the derived dashboard reports from fresh
// repository reads on every call. Nothing here is cached; a report always
// reflects the rows as they are now.
type AnalyticsService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	statsRepo  playerstats.Repository
}

func NewAnalyticsService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	statsRepo playerstats.Repository,
) *AnalyticsService {
	return &AnalyticsService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		statsRepo:  statsRepo,
	}
}

func (s *AnalyticsService) TeamPerformance(ctx context.Context, filter TeamPerformanceFilter) ([]TeamPerformanceRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TeamPerformance")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, team.Filter{LeagueID: filter.LeagueID})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	games, err := s.gameRepo.List(ctx, game.Filter{LeagueID: filter.LeagueID, SeasonYear: filter.SeasonYear})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	leagueNames := make(map[int64]string, len(leagues))
	for _, l := range leagues {
		leagueNames[l.ID] = l.Name
	}

	stats := ComputeTeamStats(teams, games)
	rows := make([]TeamPerformanceRow, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, TeamPerformanceRow{
			TeamStat:   stat,
			LeagueName: leagueNames[stat.LeagueID],
		})
	}

	return rows, nil
}

func (s *AnalyticsService) TeamComparison(ctx context.Context, filter TeamPerformanceFilter) ([]TeamComparisonRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TeamComparison")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, team.Filter{LeagueID: filter.LeagueID})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	games, err := s.gameRepo.List(ctx, game.Filter{LeagueID: filter.LeagueID, SeasonYear: filter.SeasonYear})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return ComputeTeamComparison(leagues, teams, games), nil
}

func (s *AnalyticsService) LeagueOverview(ctx context.Context) ([]LeagueStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.LeagueOverview")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	teams, err := s.teamRepo.List(ctx, team.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	players, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	games, err := s.gameRepo.List(ctx, game.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return ComputeLeagueStats(leagues, teams, players, games), nil
}

func (s *AnalyticsService) CareerLeaders(ctx context.Context, key string, position player.Position, limit int) ([]CareerLeaderRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.CareerLeaders")
	defer span.End()

	if position != "" {
		if _, ok := player.AllPositions[position]; !ok {
			return nil, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, position)
		}
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	players, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return RankCareerLeaders(players, key, position, limit), nil
}

func (s *AnalyticsService) TopPerformers(ctx context.Context, limit int) (TopPerformers, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.TopPerformers")
	defer span.End()

	if limit <= 0 || limit > 50 {
		limit = 5
	}

	players, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return TopPerformers{}, fmt.Errorf("list players: %w", err)
	}

	var lines []playerstats.Line
	for _, p := range players {
		playerLines, err := s.statsRepo.ListByPlayer(ctx, p.ID)
		if err != nil {
			return TopPerformers{}, fmt.Errorf("list stat lines: %w", err)
		}
		lines = append(lines, playerLines...)
	}

	return ComputeTopPerformers(players, lines, limit), nil
}
