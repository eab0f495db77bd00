package memory

import (
	"context"
	"sync"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	games  []game.Game
	nextID int64
}

func NewGameRepository(games []game.Game) *GameRepository {
	r := &GameRepository{nextID: 1}
	for _, g := range games {
		if g.ID >= r.nextID {
			r.nextID = g.ID + 1
		}
		r.games = append(r.games, g)
	}

	return r
}

func (r *GameRepository) List(_ context.Context, filter game.Filter) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	for _, g := range r.games {
		if filter.LeagueID != 0 && g.LeagueID != filter.LeagueID {
			continue
		}
		if filter.TeamID != 0 && g.HomeTeamID != filter.TeamID && g.AwayTeamID != filter.TeamID {
			continue
		}
		if filter.SeasonYear != 0 && g.SeasonYear != filter.SeasonYear {
			continue
		}
		if filter.Week != 0 && g.Week != filter.Week {
			continue
		}
		out = append(out, g)
	}

	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, id int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.games {
		if g.ID == id {
			return g, true, nil
		}
	}

	return game.Game{}, false, nil
}

func (r *GameRepository) Create(_ context.Context, g game.Game) (game.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g.ID = r.nextID
	r.nextID++
	r.games = append(r.games, g)

	return g, nil
}
