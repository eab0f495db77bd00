package memory

import (
	"context"
	"sync"

	"github.com/nathanpradana/sportsdash/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues []league.League
	nextID  int64
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	r := &LeagueRepository{nextID: 1}
	for _, l := range leagues {
		if l.ID >= r.nextID {
			r.nextID = l.ID + 1
		}
		r.leagues = append(r.leagues, l)
	}

	return r
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.leagues))
	out = append(out, r.leagues...)

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, id int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leagues {
		if l.ID == id {
			return l, true, nil
		}
	}

	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, l league.League) (league.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l.ID = r.nextID
	r.nextID++
	r.leagues = append(r.leagues, l)

	return l, nil
}
