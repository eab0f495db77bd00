package usecase

import (
	"context"
	"fmt"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// Dashboard is the landing page overview: entity counts and how much of
// the league is currently hurt.
type Dashboard struct {
	LeagueCount    int
	TeamCount      int
	PlayerCount    int
	GameCount      int
	ActiveInjuries int
}

// DashboardService aggregates the headline counts for the landing page.
type DashboardService struct {
	catalog    *CatalogService
	injuryRepo injury.Repository
}

func NewDashboardService(catalog *CatalogService, injuryRepo injury.Repository) *DashboardService {
	return &DashboardService{
		catalog:    catalog,
		injuryRepo: injuryRepo,
	}
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	leagues, err := s.catalog.ListLeagues(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	teams, err := s.catalog.ListTeams(ctx, team.Filter{})
	if err != nil {
		return Dashboard{}, err
	}
	players, err := s.catalog.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return Dashboard{}, fmt.Errorf("list players: %w", err)
	}
	games, err := s.catalog.ListGames(ctx, game.Filter{})
	if err != nil {
		return Dashboard{}, err
	}
	active, err := s.injuryRepo.List(ctx, injury.Filter{ActiveOnly: true})
	if err != nil {
		return Dashboard{}, fmt.Errorf("list active injuries: %w", err)
	}

	return Dashboard{
		LeagueCount:    len(leagues),
		TeamCount:      len(teams),
		PlayerCount:    len(players),
		GameCount:      len(games),
		ActiveInjuries: len(active),
	}, nil
}
