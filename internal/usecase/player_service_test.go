package usecase

import (
	"errors"
	"testing"

	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/memory"
)

func newSeededPlayerService() *PlayerService {
	seed := memory.Seed()

	return NewPlayerService(
		memory.NewPlayerRepository(seed.Players),
		memory.NewTeamRepository(seed.Teams),
		memory.NewGameRepository(seed.Games),
		memory.NewPlayerStatsRepository(seed.Lines),
	)
}

func TestPlayerService_Search(t *testing.T) {
	service := newSeededPlayerService()

	t.Run("empty query returns nothing", func(t *testing.T) {
		got, err := service.Search(t.Context(), "   ", 10)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no rows, got %d", len(got))
		}
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		got, err := service.Search(t.Context(), "marcus", 10)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(got) != 1 || got[0].Name != "Marcus Webb" {
			t.Fatalf("unexpected search result: %+v", got)
		}
	})

	t.Run("caps results at limit", func(t *testing.T) {
		got, err := service.Search(t.Context(), "e", 2)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(got) > 2 {
			t.Fatalf("expected at most 2 rows, got %d", len(got))
		}
	})
}

func TestPlayerService_GetDetail(t *testing.T) {
	service := newSeededPlayerService()

	detail, err := service.GetDetail(t.Context(), 1)
	if err != nil {
		t.Fatalf("get detail: %v", err)
	}

	if detail.Player.Name != "Marcus Webb" {
		t.Fatalf("unexpected player: %q", detail.Player.Name)
	}
	if detail.TeamName != "Thunderhawks" {
		t.Fatalf("unexpected team name: %q", detail.TeamName)
	}
	if len(detail.GameLog) != 1 {
		t.Fatalf("expected 1 game log row, got %d", len(detail.GameLog))
	}

	row := detail.GameLog[0]
	if row.Opponent != "Ironclads" {
		t.Fatalf("unexpected opponent: %q", row.Opponent)
	}
	if row.Week != 1 || row.Line.PassingYards != 310 {
		t.Fatalf("unexpected log row: %+v", row)
	}
}

func TestPlayerService_GetDetail_NotFound(t *testing.T) {
	service := newSeededPlayerService()

	_, err := service.GetDetail(t.Context(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Create_UnknownTeam(t *testing.T) {
	service := newSeededPlayerService()

	_, err := service.Create(t.Context(), player.Player{
		TeamID:   42,
		Name:     "Jordan Hale",
		Position: player.PositionSafety,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
