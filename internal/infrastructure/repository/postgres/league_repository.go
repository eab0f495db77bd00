package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nathanpradana/sportsdash/internal/domain/league"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM leagues ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, id int64) (league.League, bool, error) {
	var row leagueTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM leagues WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("select league: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) (league.League, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO leagues (name, level) VALUES ($1, $2) RETURNING id`,
		l.Name, l.Level,
	).Scan(&id)
	if err != nil {
		return league.League{}, fmt.Errorf("insert league: %w", err)
	}

	l.ID = id
	return l, nil
}
