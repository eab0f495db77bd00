package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
)

const bulkStatsWorkers = 8

// TxRunner runs fn atomically: every repository write issued inside fn
// commits together or not at all.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// BulkStatsResult reports how many stat lines a bulk submission wrote.
type BulkStatsResult struct {
	GameID    int64
	Processed int
}

// BulkStatsService ingests a full set of per-game stat lines in one
// submission. The batch is all-or-nothing: every line is validated before
// the first write, the writes run in a single transaction, and career
// counters advance by the delta between the old and new line so
// resubmitting a corrected sheet never double-counts.
type BulkStatsService struct {
	gameRepo   game.Repository
	playerRepo player.Repository
	statsRepo  playerstats.Repository
	tx         TxRunner
}

func NewBulkStatsService(gameRepo game.Repository, playerRepo player.Repository, statsRepo playerstats.Repository, tx TxRunner) *BulkStatsService {
	return &BulkStatsService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		tx:         tx,
	}
}

func (s *BulkStatsService) Submit(ctx context.Context, gameID int64, lines []playerstats.Line) (BulkStatsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BulkStatsService.Submit")
	defer span.End()

	if gameID <= 0 || len(lines) == 0 {
		return BulkStatsResult{}, fmt.Errorf("%w: game id and stat lines are required", ErrInvalidInput)
	}

	g, ok, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return BulkStatsResult{}, fmt.Errorf("get game: %w", err)
	}
	if !ok {
		return BulkStatsResult{}, fmt.Errorf("%w: game %d", ErrNotFound, gameID)
	}

	rosters, err := s.validateLines(ctx, g, lines)
	if err != nil {
		return BulkStatsResult{}, err
	}

	existing, err := s.statsRepo.ListByGame(ctx, gameID)
	if err != nil {
		return BulkStatsResult{}, fmt.Errorf("list existing lines: %w", err)
	}
	previous := make(map[int64]playerstats.Line, len(existing))
	for _, line := range existing {
		previous[line.PlayerID] = line
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, line := range lines {
			line.GameID = gameID
			stored, err := s.statsRepo.Upsert(ctx, line)
			if err != nil {
				return fmt.Errorf("upsert stat line: %w", err)
			}

			p := rosters[line.PlayerID]
			p.Career = advanceCareer(p.Career, previous[line.PlayerID], stored)
			if err := s.playerRepo.UpdateCareer(ctx, p.ID, p.Career); err != nil {
				return fmt.Errorf("update career counters: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return BulkStatsResult{}, err
	}

	return BulkStatsResult{GameID: gameID, Processed: len(lines)}, nil
}

// validateLines checks every line concurrently before anything is
// written: the player must exist and be rostered on one of the game's two
// teams, and no player may appear twice in the batch.
func (s *BulkStatsService) validateLines(ctx context.Context, g game.Game, lines []playerstats.Line) (map[int64]player.Player, error) {
	seen := make(map[int64]struct{}, len(lines))
	for _, line := range lines {
		if line.PlayerID <= 0 {
			return nil, fmt.Errorf("%w: stat line player id is required", ErrInvalidInput)
		}
		if _, dup := seen[line.PlayerID]; dup {
			return nil, fmt.Errorf("%w: duplicate stat line for player %d", ErrInvalidInput, line.PlayerID)
		}
		seen[line.PlayerID] = struct{}{}
	}

	pool, err := ants.NewPool(bulkStatsWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		firstErr error
		rosters  = make(map[int64]player.Player, len(lines))
	)
	record := func(p player.Player, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		rosters[p.ID] = p
	}

	var wg sync.WaitGroup
	for _, line := range lines {
		line := line
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			p, ok, err := s.playerRepo.GetByID(ctx, line.PlayerID)
			if err != nil {
				record(player.Player{}, fmt.Errorf("get player %d: %w", line.PlayerID, err))
				return
			}
			if !ok {
				record(player.Player{}, fmt.Errorf("%w: player %d", ErrNotFound, line.PlayerID))
				return
			}
			if p.TeamID != g.HomeTeamID && p.TeamID != g.AwayTeamID {
				record(player.Player{}, fmt.Errorf("%w: player %s is not rostered in game %d", ErrInvalidInput, p.Name, g.ID))
				return
			}
			record(p, nil)
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit validation task: %w", err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return rosters, nil
}

// advanceCareer moves a player's lifetime counters from the old stat line
// to the new one.
func advanceCareer(c player.Career, old, now playerstats.Line) player.Career {
	c.PassingYards += now.PassingYards - old.PassingYards
	c.PassingAttempts += now.PassingAttempts - old.PassingAttempts
	c.PassingCompletions += now.PassingCompletions - old.PassingCompletions
	c.RushingYards += now.RushingYards - old.RushingYards
	c.ReceivingYards += now.ReceivingYards - old.ReceivingYards
	c.Receptions += now.Receptions - old.Receptions
	c.Touchdowns += now.Touchdowns - old.Touchdowns
	c.Tackles += now.Tackles - old.Tackles
	c.Sacks += now.Sacks - old.Sacks
	c.Interceptions += now.Interceptions - old.Interceptions
	c.Fumbles += now.Fumbles - old.Fumbles

	return c
}
