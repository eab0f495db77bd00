package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	teams  []team.Team
	nextID int64
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{nextID: 1}
	for _, t := range teams {
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
		r.teams = append(r.teams, t)
	}

	return r
}

func (r *TeamRepository) List(_ context.Context, filter team.Filter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, t := range r.teams {
		if filter.LeagueID != 0 && t.LeagueID != filter.LeagueID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.City != "" && !strings.Contains(strings.ToLower(t.HomeCity), strings.ToLower(filter.City)) {
			continue
		}
		out = append(out, t)
	}

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if t.ID == id {
			return t, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.teams = append(r.teams, t)

	return t, nil
}
