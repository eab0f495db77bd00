package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/memory"
)

type fakeProvider struct {
	teams      []ExternalTeam
	players    []ExternalPlayer
	teamsErr   error
	playersErr error
}

func (p fakeProvider) FetchTeams(context.Context) ([]ExternalTeam, error) {
	return p.teams, p.teamsErr
}

func (p fakeProvider) FetchPlayers(context.Context, int) ([]ExternalPlayer, error) {
	return p.players, p.playersErr
}

func newSyncFixture(provider SportsDataProvider) (*SyncService, *memory.TeamRepository, *memory.PlayerRepository) {
	seed := memory.Seed()
	teamRepo := memory.NewTeamRepository(seed.Teams)
	playerRepo := memory.NewPlayerRepository(seed.Players)

	return NewSyncService(provider, teamRepo, playerRepo), teamRepo, playerRepo
}

func TestSyncService_Run_ValidatesInput(t *testing.T) {
	service, _, _ := newSyncFixture(fakeProvider{})

	if _, err := service.Run(t.Context(), SyncInput{LeagueID: 0, Kinds: []string{"teams"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing league, got %v", err)
	}
	if _, err := service.Run(t.Context(), SyncInput{LeagueID: 1, Kinds: []string{"rosters"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown kinds, got %v", err)
	}
}

func TestSyncService_Run_ImportsNewRecords(t *testing.T) {
	provider := fakeProvider{
		teams: []ExternalTeam{
			{Name: "Thunderhawks", City: "Denver"},
			{Name: "Redhounds", City: "Columbus", HeadCoach: "P. Vance", Stadium: "Union Grounds"},
		},
		players: []ExternalPlayer{
			{Name: "Marcus Webb", Position: "QB", TeamName: "Thunderhawks"},
			{Name: "Troy Lanning", Position: "TE", TeamName: "Redhounds"},
			{Name: "Omar Reyes", Position: "K", TeamName: "Ghost Valley"},
		},
	}
	service, teamRepo, playerRepo := newSyncFixture(provider)

	// Duplicate kinds collapse and casing does not matter.
	teamsRun, err := service.Run(t.Context(), SyncInput{
		LeagueID: 1,
		Kinds:    []string{"Teams", "teams"},
	})
	if err != nil {
		t.Fatalf("run teams sync: %v", err)
	}

	if teamsRun.TaskCount != 1 || teamsRun.SuccessCount != 1 || teamsRun.FailedCount != 0 {
		t.Fatalf("unexpected result counts: %+v", teamsRun)
	}
	if teamsRun.WorkerCount != 1 {
		t.Fatalf("expected workers capped at task count, got %d", teamsRun.WorkerCount)
	}
	if teamsRun.Tasks[0].Records != 1 {
		t.Fatalf("expected 1 new team, got %d", teamsRun.Tasks[0].Records)
	}

	playersRun, err := service.Run(t.Context(), SyncInput{
		LeagueID: 1,
		Kinds:    []string{"PLAYERS"},
	})
	if err != nil {
		t.Fatalf("run players sync: %v", err)
	}

	// Webb already exists and Ghost Valley is not a known club.
	if playersRun.Tasks[0].Records != 1 {
		t.Fatalf("expected 1 new player, got %d", playersRun.Tasks[0].Records)
	}

	teams, err := teamRepo.List(t.Context(), team.Filter{Name: "Redhounds"})
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 || teams[0].LeagueID != 1 {
		t.Fatalf("expected imported team in league 1, got %+v", teams)
	}

	players, err := playerRepo.List(t.Context(), player.Filter{Name: "Troy Lanning"})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 1 || players[0].TeamID != teams[0].ID {
		t.Fatalf("expected imported player on the new club, got %+v", players)
	}
}

func TestSyncService_Run_ProviderFailureMarksTask(t *testing.T) {
	provider := fakeProvider{teamsErr: errors.New("upstream down")}
	service, _, _ := newSyncFixture(provider)

	result, err := service.Run(t.Context(), SyncInput{LeagueID: 1, Kinds: []string{"teams"}})
	if err != nil {
		t.Fatalf("run sync: %v", err)
	}

	if result.SuccessCount != 0 || result.FailedCount != 1 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
	if result.Tasks[0].Status != syncStatusFailed || result.Tasks[0].Message == "" {
		t.Fatalf("unexpected task: %+v", result.Tasks[0])
	}
}
