package playerstats

import "context"

// Repository describes per-game stat persistence needs from use cases.
type Repository interface {
	ListByPlayer(ctx context.Context, playerID int64) ([]Line, error)
	ListByGame(ctx context.Context, gameID int64) ([]Line, error)
	Upsert(ctx context.Context, line Line) (Line, error)
}
