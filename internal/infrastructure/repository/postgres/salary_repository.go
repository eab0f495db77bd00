package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nathanpradana/sportsdash/internal/domain/salary"
)

type SalaryRepository struct {
	db *sqlx.DB
}

func NewSalaryRepository(db *sqlx.DB) *SalaryRepository {
	return &SalaryRepository{db: db}
}

func (r *SalaryRepository) List(ctx context.Context, filter salary.Filter) ([]salary.Salary, error) {
	var cond conditions
	if filter.PlayerID != 0 {
		cond.add("player_id", "=", filter.PlayerID)
	}
	if filter.SeasonYear != 0 {
		cond.add("season_year", "=", filter.SeasonYear)
	}

	query := `SELECT * FROM player_salaries` + cond.where() + ` ORDER BY season_year DESC, player_id`

	var rows []salaryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, cond.args...); err != nil {
		return nil, fmt.Errorf("select salaries: %w", err)
	}

	out := make([]salary.Salary, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SalaryRepository) Create(ctx context.Context, s salary.Salary) (salary.Salary, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO player_salaries (player_id, season_year, base_salary, bonuses, cap_hit, total_compensation)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		s.PlayerID, s.SeasonYear, s.BaseSalary, s.Bonuses, s.CapHit, s.TotalComp,
	).Scan(&id)
	if err != nil {
		return salary.Salary{}, fmt.Errorf("insert salary: %w", err)
	}

	s.ID = id
	return s, nil
}
