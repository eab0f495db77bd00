package player

import "context"

// Filter narrows player listings. Zero values impose no constraint.
type Filter struct {
	TeamID   int64
	Position Position
	Name     string
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	UpdateCareer(ctx context.Context, id int64, career Career) error
}
