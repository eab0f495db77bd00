package usecase

import (
	"context"
	"fmt"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/salary"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// CatalogService serves the raw entity listings and create operations the
// dashboard screens are built from.
type CatalogService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	injuryRepo injury.Repository
	salaryRepo salary.Repository
}

func NewCatalogService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	injuryRepo injury.Repository,
	salaryRepo salary.Repository,
) *CatalogService {
	return &CatalogService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		injuryRepo: injuryRepo,
		salaryRepo: salaryRepo,
	}
}

func (s *CatalogService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *CatalogService) CreateLeague(ctx context.Context, l league.League) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateLeague")
	defer span.End()

	if err := l.Validate(); err != nil {
		return league.League{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.leagueRepo.Create(ctx, l)
	if err != nil {
		return league.League{}, fmt.Errorf("create league: %w", err)
	}

	return created, nil
}

func (s *CatalogService) ListTeams(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *CatalogService) CreateTeam(ctx context.Context, t team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateTeam")
	defer span.End()

	if err := t.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok, err := s.leagueRepo.GetByID(ctx, t.LeagueID); err != nil {
		return team.Team{}, fmt.Errorf("check league: %w", err)
	} else if !ok {
		return team.Team{}, fmt.Errorf("%w: league %d", ErrNotFound, t.LeagueID)
	}

	created, err := s.teamRepo.Create(ctx, t)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return created, nil
}

func (s *CatalogService) ListGames(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListGames")
	defer span.End()

	games, err := s.gameRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return games, nil
}

func (s *CatalogService) CreateGame(ctx context.Context, g game.Game) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateGame")
	defer span.End()

	if err := g.Validate(); err != nil {
		return game.Game{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, teamID := range []int64{g.HomeTeamID, g.AwayTeamID} {
		if _, ok, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return game.Game{}, fmt.Errorf("check team: %w", err)
		} else if !ok {
			return game.Game{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
		}
	}

	created, err := s.gameRepo.Create(ctx, g)
	if err != nil {
		return game.Game{}, fmt.Errorf("create game: %w", err)
	}

	return created, nil
}

func (s *CatalogService) ListSalaries(ctx context.Context, filter salary.Filter) ([]salary.Salary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSalaries")
	defer span.End()

	salaries, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}

	return salaries, nil
}

func (s *CatalogService) CreateSalary(ctx context.Context, sal salary.Salary) (salary.Salary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateSalary")
	defer span.End()

	if err := sal.Validate(); err != nil {
		return salary.Salary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok, err := s.playerRepo.GetByID(ctx, sal.PlayerID); err != nil {
		return salary.Salary{}, fmt.Errorf("check player: %w", err)
	} else if !ok {
		return salary.Salary{}, fmt.Errorf("%w: player %d", ErrNotFound, sal.PlayerID)
	}

	created, err := s.salaryRepo.Create(ctx, sal)
	if err != nil {
		return salary.Salary{}, fmt.Errorf("create salary: %w", err)
	}

	return created, nil
}

func (s *CatalogService) CreateInjury(ctx context.Context, i injury.Injury) (injury.Injury, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.CreateInjury")
	defer span.End()

	if err := i.Validate(); err != nil {
		return injury.Injury{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok, err := s.playerRepo.GetByID(ctx, i.PlayerID); err != nil {
		return injury.Injury{}, fmt.Errorf("check player: %w", err)
	} else if !ok {
		return injury.Injury{}, fmt.Errorf("%w: player %d", ErrNotFound, i.PlayerID)
	}

	created, err := s.injuryRepo.Create(ctx, i)
	if err != nil {
		return injury.Injury{}, fmt.Errorf("create injury: %w", err)
	}

	return created, nil
}
