package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nathanpradana/sportsdash/internal/domain/injury"
)

type InjuryRepository struct {
	db *sqlx.DB
}

func NewInjuryRepository(db *sqlx.DB) *InjuryRepository {
	return &InjuryRepository{db: db}
}

func (r *InjuryRepository) List(ctx context.Context, filter injury.Filter) ([]injury.Injury, error) {
	var cond conditions
	if filter.PlayerID != 0 {
		cond.add("i.player_id", "=", filter.PlayerID)
	}
	if filter.TeamID != 0 {
		cond.add("p.team_id", "=", filter.TeamID)
	}
	if filter.Severity != "" {
		cond.add("i.severity", "ILIKE", "%"+filter.Severity+"%")
	}
	if filter.ActiveOnly {
		cond.addRaw("i.end_date IS NULL")
	}

	query := `SELECT i.* FROM injuries i JOIN players p ON p.id = i.player_id` +
		cond.where() + ` ORDER BY i.start_date DESC, i.id`

	var rows []injuryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, cond.args...); err != nil {
		return nil, fmt.Errorf("select injuries: %w", err)
	}

	out := make([]injury.Injury, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *InjuryRepository) Create(ctx context.Context, i injury.Injury) (injury.Injury, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO injuries (player_id, start_date, end_date, description, severity)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		i.PlayerID, i.StartDate, i.EndDate, i.Description, i.Severity,
	).Scan(&id)
	if err != nil {
		return injury.Injury{}, fmt.Errorf("insert injury: %w", err)
	}

	i.ID = id
	return i, nil
}
