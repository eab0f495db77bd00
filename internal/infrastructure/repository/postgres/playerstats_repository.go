package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]playerstats.Line, error) {
	var rows []statLineTableModel
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows,
		`SELECT * FROM player_game_stats WHERE player_id = $1 ORDER BY game_id`, playerID)
	if err != nil {
		return nil, fmt.Errorf("select stat lines by player: %w", err)
	}

	out := make([]playerstats.Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerStatsRepository) ListByGame(ctx context.Context, gameID int64) ([]playerstats.Line, error) {
	var rows []statLineTableModel
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows,
		`SELECT * FROM player_game_stats WHERE game_id = $1 ORDER BY player_id`, gameID)
	if err != nil {
		return nil, fmt.Errorf("select stat lines by game: %w", err)
	}

	out := make([]playerstats.Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerStatsRepository) Upsert(ctx context.Context, line playerstats.Line) (playerstats.Line, error) {
	var id int64
	err := executor(ctx, r.db).QueryRowxContext(ctx,
		`INSERT INTO player_game_stats (
			player_id, game_id, passing_yards, passing_attempts, passing_completions,
			rushing_yards, receiving_yards, receptions, touchdowns, tackles, sacks,
			interceptions, fumbles, field_goals_made, extra_points_made
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (player_id, game_id) DO UPDATE SET
			passing_yards = EXCLUDED.passing_yards,
			passing_attempts = EXCLUDED.passing_attempts,
			passing_completions = EXCLUDED.passing_completions,
			rushing_yards = EXCLUDED.rushing_yards,
			receiving_yards = EXCLUDED.receiving_yards,
			receptions = EXCLUDED.receptions,
			touchdowns = EXCLUDED.touchdowns,
			tackles = EXCLUDED.tackles,
			sacks = EXCLUDED.sacks,
			interceptions = EXCLUDED.interceptions,
			fumbles = EXCLUDED.fumbles,
			field_goals_made = EXCLUDED.field_goals_made,
			extra_points_made = EXCLUDED.extra_points_made,
			updated_at = NOW()
		RETURNING id`,
		line.PlayerID, line.GameID, line.PassingYards, line.PassingAttempts, line.PassingCompletions,
		line.RushingYards, line.ReceivingYards, line.Receptions, line.Touchdowns, line.Tackles, line.Sacks,
		line.Interceptions, line.Fumbles, line.FieldGoalsMade, line.ExtraPointsMade,
	).Scan(&id)
	if err != nil {
		return playerstats.Line{}, fmt.Errorf("upsert stat line: %w", err)
	}

	line.ID = id
	return line, nil
}
