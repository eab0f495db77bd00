package salary

import "context"

// Filter narrows salary listings. Zero values impose no constraint.
type Filter struct {
	PlayerID   int64
	SeasonYear int
}

// Repository describes salary persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Salary, error)
	Create(ctx context.Context, s Salary) (Salary, error)
}
