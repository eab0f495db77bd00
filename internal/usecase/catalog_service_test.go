package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/salary"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/memory"
)

func newSeededCatalog() *CatalogService {
	seed := memory.Seed()

	return NewCatalogService(
		memory.NewLeagueRepository(seed.Leagues),
		memory.NewTeamRepository(seed.Teams),
		memory.NewPlayerRepository(seed.Players),
		memory.NewGameRepository(seed.Games),
		memory.NewInjuryRepository(seed.Injuries, seed.PlayerTeams()),
		memory.NewSalaryRepository(seed.Salaries),
	)
}

func TestCatalogService_CreateLeague_RejectsInvalid(t *testing.T) {
	service := newSeededCatalog()

	_, err := service.CreateLeague(t.Context(), league.League{Name: ""})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_CreateTeam_UnknownLeague(t *testing.T) {
	service := newSeededCatalog()

	_, err := service.CreateTeam(t.Context(), team.Team{
		LeagueID: 99,
		Name:     "Stormcats",
		HomeCity: "Austin",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_CreateTeam_Succeeds(t *testing.T) {
	service := newSeededCatalog()

	created, err := service.CreateTeam(t.Context(), team.Team{
		LeagueID: 1,
		Name:     "Stormcats",
		HomeCity: "Austin",
	})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", created.ID)
	}

	teams, err := service.ListTeams(t.Context(), team.Filter{LeagueID: 1})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 3 {
		t.Fatalf("expected 3 teams in league 1, got %d", len(teams))
	}
}

func TestCatalogService_CreateGame_UnknownTeam(t *testing.T) {
	service := newSeededCatalog()

	_, err := service.CreateGame(t.Context(), game.Game{
		LeagueID:   1,
		SeasonYear: 2025,
		Week:       3,
		HomeTeamID: 1,
		AwayTeamID: 42,
		GameDate:   time.Date(2025, 9, 21, 13, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_ListSalaries_FiltersByPlayer(t *testing.T) {
	service := newSeededCatalog()

	salaries, err := service.ListSalaries(t.Context(), salary.Filter{PlayerID: 1})
	if err != nil {
		t.Fatalf("list salaries: %v", err)
	}
	if len(salaries) != 1 {
		t.Fatalf("expected 1 salary for player 1, got %d", len(salaries))
	}
	if salaries[0].TotalComp != 42500000 {
		t.Fatalf("unexpected total compensation: %v", salaries[0].TotalComp)
	}
}

func TestCatalogService_CreateSalary_UnknownPlayer(t *testing.T) {
	service := newSeededCatalog()

	_, err := service.CreateSalary(t.Context(), salary.Salary{
		PlayerID:   999,
		SeasonYear: 2025,
		BaseSalary: 1000000,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogService_CreateSalary_RejectsNegativeAmounts(t *testing.T) {
	service := newSeededCatalog()

	_, err := service.CreateSalary(t.Context(), salary.Salary{
		PlayerID:   1,
		SeasonYear: 2026,
		BaseSalary: -500,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCatalogService_CreateInjury_UnknownPlayer(t *testing.T) {
	service := newSeededCatalog()

	_, err := service.CreateInjury(t.Context(), injury.Injury{
		PlayerID:  999,
		StartDate: time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC),
		Severity:  injury.SeverityMinor,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
