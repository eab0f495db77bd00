package injury

import "context"

// Filter narrows injury listings. Zero values impose no constraint.
type Filter struct {
	PlayerID   int64
	TeamID     int64
	Severity   string
	ActiveOnly bool
}

// Repository describes injury persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Injury, error)
	Create(ctx context.Context, i Injury) (Injury, error)
}
