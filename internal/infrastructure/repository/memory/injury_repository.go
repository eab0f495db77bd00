package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/nathanpradana/sportsdash/internal/domain/injury"
)

type InjuryRepository struct {
	mu       sync.RWMutex
	injuries []injury.Injury
	nextID   int64

	// playerTeams resolves the team filter; injuries only carry player ids.
	playerTeams map[int64]int64
}

func NewInjuryRepository(injuries []injury.Injury, playerTeams map[int64]int64) *InjuryRepository {
	r := &InjuryRepository{nextID: 1, playerTeams: playerTeams}
	if r.playerTeams == nil {
		r.playerTeams = make(map[int64]int64)
	}
	for _, i := range injuries {
		if i.ID >= r.nextID {
			r.nextID = i.ID + 1
		}
		r.injuries = append(r.injuries, i)
	}

	return r
}

func (r *InjuryRepository) List(_ context.Context, filter injury.Filter) ([]injury.Injury, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]injury.Injury, 0, len(r.injuries))
	for _, i := range r.injuries {
		if filter.PlayerID != 0 && i.PlayerID != filter.PlayerID {
			continue
		}
		if filter.TeamID != 0 && r.playerTeams[i.PlayerID] != filter.TeamID {
			continue
		}
		if filter.Severity != "" && !strings.Contains(strings.ToLower(i.Severity), strings.ToLower(filter.Severity)) {
			continue
		}
		if filter.ActiveOnly && !i.Active() {
			continue
		}
		out = append(out, i)
	}

	return out, nil
}

func (r *InjuryRepository) Create(_ context.Context, i injury.Injury) (injury.Injury, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i.ID = r.nextID
	r.nextID++
	r.injuries = append(r.injuries, i)

	return i, nil
}
