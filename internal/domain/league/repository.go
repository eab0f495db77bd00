package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, id int64) (League, bool, error)
	Create(ctx context.Context, l League) (League, error)
}
