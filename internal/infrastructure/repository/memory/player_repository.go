package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/nathanpradana/sportsdash/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
	nextID  int64
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{nextID: 1}
	for _, p := range players {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.players = append(r.players, p)
	}

	return r
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		if filter.TeamID != 0 && p.TeamID != filter.TeamID {
			continue
		}
		if filter.Position != "" && p.Position != filter.Position {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.ID == id {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.players = append(r.players, p)

	return p, nil
}

func (r *PlayerRepository) snapshot() ([]player.Player, int64) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make([]player.Player, len(r.players))
	copy(copied, r.players)

	return copied, r.nextID
}

func (r *PlayerRepository) restore(players []player.Player, nextID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = players
	r.nextID = nextID
}

func (r *PlayerRepository) UpdateCareer(_ context.Context, id int64, career player.Career) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		if r.players[i].ID == id {
			r.players[i].Career = career
			return nil
		}
	}

	return nil
}
