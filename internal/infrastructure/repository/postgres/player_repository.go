package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nathanpradana/sportsdash/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	var cond conditions
	if filter.TeamID != 0 {
		cond.add("team_id", "=", filter.TeamID)
	}
	if filter.Position != "" {
		cond.add("position", "=", string(filter.Position))
	}
	if filter.Name != "" {
		cond.add("name", "ILIKE", "%"+filter.Name+"%")
	}

	query := `SELECT * FROM players` + cond.where() + ` ORDER BY id`

	var rows []playerTableModel
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, query, cond.args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	var row playerTableModel
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, `SELECT * FROM players WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	var id int64
	err := executor(ctx, r.db).QueryRowxContext(ctx,
		`INSERT INTO players (
			team_id, name, position,
			career_passing_yards, career_passing_touchdowns, career_passing_attempts, career_passing_completions,
			career_rushing_yards, career_rushing_touchdowns, career_rushing_attempts,
			career_receiving_yards, career_receiving_touchdowns, career_receptions,
			career_touchdowns, career_tackles, career_sacks, career_interceptions,
			career_passes_defensed, career_fumbles
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`,
		p.TeamID, p.Name, string(p.Position),
		p.Career.PassingYards, p.Career.PassingTouchdowns, p.Career.PassingAttempts, p.Career.PassingCompletions,
		p.Career.RushingYards, p.Career.RushingTouchdowns, p.Career.RushingAttempts,
		p.Career.ReceivingYards, p.Career.ReceivingTouchdowns, p.Career.Receptions,
		p.Career.Touchdowns, p.Career.Tackles, p.Career.Sacks, p.Career.Interceptions,
		p.Career.PassesDefensed, p.Career.Fumbles,
	).Scan(&id)
	if err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	p.ID = id
	return p, nil
}

func (r *PlayerRepository) UpdateCareer(ctx context.Context, id int64, career player.Career) error {
	_, err := executor(ctx, r.db).ExecContext(ctx,
		`UPDATE players SET
			career_passing_yards = $2, career_passing_touchdowns = $3,
			career_passing_attempts = $4, career_passing_completions = $5,
			career_rushing_yards = $6, career_rushing_touchdowns = $7, career_rushing_attempts = $8,
			career_receiving_yards = $9, career_receiving_touchdowns = $10, career_receptions = $11,
			career_touchdowns = $12, career_tackles = $13, career_sacks = $14,
			career_interceptions = $15, career_passes_defensed = $16, career_fumbles = $17,
			updated_at = NOW()
		WHERE id = $1`,
		id,
		career.PassingYards, career.PassingTouchdowns,
		career.PassingAttempts, career.PassingCompletions,
		career.RushingYards, career.RushingTouchdowns, career.RushingAttempts,
		career.ReceivingYards, career.ReceivingTouchdowns, career.Receptions,
		career.Touchdowns, career.Tackles, career.Sacks,
		career.Interceptions, career.PassesDefensed, career.Fumbles,
	)
	if err != nil {
		return fmt.Errorf("update player career: %w", err)
	}

	return nil
}
