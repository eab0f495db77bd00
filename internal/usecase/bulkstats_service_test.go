package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/memory"
)

type bulkStatsFixture struct {
	service    *BulkStatsService
	playerRepo *memory.PlayerRepository
	statsRepo  *memory.PlayerStatsRepository
}

func newBulkStatsFixture() bulkStatsFixture {
	seed := memory.Seed()
	playerRepo := memory.NewPlayerRepository(seed.Players)
	statsRepo := memory.NewPlayerStatsRepository(seed.Lines)

	return bulkStatsFixture{
		service:    NewBulkStatsService(memory.NewGameRepository(seed.Games), playerRepo, statsRepo, memory.NewTxRunner(playerRepo, statsRepo)),
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
	}
}

// failingStatsRepo passes writes through until failAfter upserts have
// landed, then errors, leaving the batch half-applied.
type failingStatsRepo struct {
	*memory.PlayerStatsRepository
	failAfter int
	upserts   int
}

func (r *failingStatsRepo) Upsert(ctx context.Context, line playerstats.Line) (playerstats.Line, error) {
	if r.upserts >= r.failAfter {
		return playerstats.Line{}, fmt.Errorf("storage write lost")
	}
	r.upserts++
	return r.PlayerStatsRepository.Upsert(ctx, line)
}

func TestBulkStatsService_Submit_UnknownGame(t *testing.T) {
	fx := newBulkStatsFixture()

	_, err := fx.service.Submit(t.Context(), 42, []playerstats.Line{{PlayerID: 1}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBulkStatsService_Submit_DuplicatePlayerInBatch(t *testing.T) {
	fx := newBulkStatsFixture()

	_, err := fx.service.Submit(t.Context(), 1, []playerstats.Line{
		{PlayerID: 1, PassingYards: 200},
		{PlayerID: 1, PassingYards: 250},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBulkStatsService_Submit_ForeignPlayerFailsWholeBatch(t *testing.T) {
	fx := newBulkStatsFixture()

	// Player 5 is rostered in another league, so the valid line for
	// player 1 must not be written either.
	_, err := fx.service.Submit(t.Context(), 1, []playerstats.Line{
		{PlayerID: 1, PassingYards: 400},
		{PlayerID: 5, PassingYards: 120},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	lines, err := fx.statsRepo.ListByGame(t.Context(), 1)
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	for _, line := range lines {
		if line.PlayerID == 1 && line.PassingYards != 310 {
			t.Fatalf("expected player 1 line untouched, got %+v", line)
		}
	}

	p, _, err := fx.playerRepo.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.Career.PassingYards != 18000 {
		t.Fatalf("expected career untouched, got %d", p.Career.PassingYards)
	}
}

func TestBulkStatsService_Submit_RollsBackPartialBatch(t *testing.T) {
	seed := memory.Seed()
	playerRepo := memory.NewPlayerRepository(seed.Players)
	statsRepo := memory.NewPlayerStatsRepository(seed.Lines)
	flaky := &failingStatsRepo{PlayerStatsRepository: statsRepo, failAfter: 1}

	service := NewBulkStatsService(
		memory.NewGameRepository(seed.Games),
		playerRepo,
		flaky,
		memory.NewTxRunner(playerRepo, statsRepo),
	)

	_, err := service.Submit(t.Context(), 1, []playerstats.Line{
		{PlayerID: 1, PassingYards: 400, PassingAttempts: 45, PassingCompletions: 30},
		{PlayerID: 2, ReceivingYards: 150, Receptions: 9},
	})
	if err == nil {
		t.Fatal("expected submit to fail when a write is lost mid-batch")
	}

	// The first line landed before the failure, so the rollback must
	// put the seed data back for both players.
	lines, err := statsRepo.ListByGame(t.Context(), 1)
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	for _, line := range lines {
		if line.PlayerID == 1 && line.PassingYards != 310 {
			t.Fatalf("expected player 1 seed line restored, got %+v", line)
		}
		if line.PlayerID == 2 && line.ReceivingYards != 124 {
			t.Fatalf("expected player 2 seed line restored, got %+v", line)
		}
	}

	p, _, err := playerRepo.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.Career.PassingYards != 18000 {
		t.Fatalf("expected career counters restored, got %d", p.Career.PassingYards)
	}
}

func TestBulkStatsService_Submit_AdvancesCareerByDelta(t *testing.T) {
	fx := newBulkStatsFixture()

	result, err := fx.service.Submit(t.Context(), 1, []playerstats.Line{
		{PlayerID: 1, PassingYards: 350, PassingAttempts: 40, PassingCompletions: 27, Touchdowns: 3},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Processed != 1 || result.GameID != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	p, _, err := fx.playerRepo.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	// The seed line had 310 yards, so only the 40-yard correction lands.
	if p.Career.PassingYards != 18040 {
		t.Fatalf("unexpected career passing yards: %d", p.Career.PassingYards)
	}

	// Resubmitting the same sheet must not double-count.
	if _, err := fx.service.Submit(t.Context(), 1, []playerstats.Line{
		{PlayerID: 1, PassingYards: 350, PassingAttempts: 40, PassingCompletions: 27, Touchdowns: 3},
	}); err != nil {
		t.Fatalf("resubmit: %v", err)
	}

	p, _, err = fx.playerRepo.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.Career.PassingYards != 18040 {
		t.Fatalf("career double-counted: %d", p.Career.PassingYards)
	}
}
