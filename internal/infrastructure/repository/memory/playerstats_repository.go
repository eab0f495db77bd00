package memory

import (
	"context"
	"sync"

	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu     sync.RWMutex
	lines  []playerstats.Line
	nextID int64
}

func NewPlayerStatsRepository(lines []playerstats.Line) *PlayerStatsRepository {
	r := &PlayerStatsRepository{nextID: 1}
	for _, l := range lines {
		if l.ID >= r.nextID {
			r.nextID = l.ID + 1
		}
		r.lines = append(r.lines, l)
	}

	return r
}

func (r *PlayerStatsRepository) ListByPlayer(_ context.Context, playerID int64) ([]playerstats.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.Line, 0)
	for _, l := range r.lines {
		if l.PlayerID == playerID {
			out = append(out, l)
		}
	}

	return out, nil
}

func (r *PlayerStatsRepository) ListByGame(_ context.Context, gameID int64) ([]playerstats.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerstats.Line, 0)
	for _, l := range r.lines {
		if l.GameID == gameID {
			out = append(out, l)
		}
	}

	return out, nil
}

func (r *PlayerStatsRepository) snapshot() ([]playerstats.Line, int64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make([]playerstats.Line, len(r.lines))
	copy(copied, r.lines)

	return copied, r.nextID
}

func (r *PlayerStatsRepository) restore(lines []playerstats.Line, nextID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines = lines
	r.nextID = nextID
}

func (r *PlayerStatsRepository) Upsert(_ context.Context, line playerstats.Line) (playerstats.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].PlayerID == line.PlayerID && r.lines[i].GameID == line.GameID {
			line.ID = r.lines[i].ID
			r.lines[i] = line
			return line, nil
		}
	}

	line.ID = r.nextID
	r.nextID++
	r.lines = append(r.lines, line)

	return line, nil
}
