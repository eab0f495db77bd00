package game

import "context"

// Filter narrows game listings. Zero values impose no constraint.
type Filter struct {
	LeagueID   int64
	TeamID     int64
	SeasonYear int
	Week       int
}

// Repository describes game persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Game, error)
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	Create(ctx context.Context, g Game) (Game, error)
}
