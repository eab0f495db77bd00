package team

import "context"

// Filter narrows team listings. Zero values impose no constraint.
type Filter struct {
	LeagueID int64
	Name     string
	City     string
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	Create(ctx context.Context, t Team) (Team, error)
}
