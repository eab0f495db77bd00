package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.Team, error) {
	var cond conditions
	if filter.LeagueID != 0 {
		cond.add("league_id", "=", filter.LeagueID)
	}
	if filter.Name != "" {
		cond.add("name", "ILIKE", "%"+filter.Name+"%")
	}
	if filter.City != "" {
		cond.add("home_city", "ILIKE", "%"+filter.City+"%")
	}

	query := `SELECT * FROM teams` + cond.where() + ` ORDER BY id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, cond.args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	var row teamTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM teams WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO teams (league_id, name, home_city, head_coach, stadium)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		t.LeagueID, t.Name, t.HomeCity, t.HeadCoach, t.Stadium,
	).Scan(&id)
	if err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	t.ID = id
	return t, nil
}
