package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	var cond conditions
	if filter.LeagueID != 0 {
		cond.add("league_id", "=", filter.LeagueID)
	}
	if filter.SeasonYear != 0 {
		cond.add("season_year", "=", filter.SeasonYear)
	}
	if filter.Week != 0 {
		cond.add("week", "=", filter.Week)
	}
	if filter.TeamID != 0 {
		cond.args = append(cond.args, filter.TeamID)
		cond.addRaw(fmt.Sprintf("(home_team_id = $%d OR away_team_id = $%d)", len(cond.args), len(cond.args)))
	}

	query := `SELECT * FROM games` + cond.where() + ` ORDER BY game_date, id`

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, cond.args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	var row gameTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM games WHERE id = $1`, id)
	if err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("select game: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) (game.Game, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO games (
			league_id, season_year, week, home_team_id, away_team_id,
			venue, game_date, home_score, away_score, attendance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		g.LeagueID, g.SeasonYear, g.Week, g.HomeTeamID, g.AwayTeamID,
		g.Venue, g.GameDate, int64ToNull(g.HomeScore), int64ToNull(g.AwayScore), int64ToNull(g.Attendance),
	).Scan(&id)
	if err != nil {
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}

	g.ID = id
	return g, nil
}
