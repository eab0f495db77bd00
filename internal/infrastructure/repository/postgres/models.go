package postgres

import (
	"database/sql"
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/domain/salary"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

type leagueTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Level     string    `db:"level"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m leagueTableModel) toDomain() league.League {
	return league.League{ID: m.ID, Name: m.Name, Level: m.Level}
}

type teamTableModel struct {
	ID        int64     `db:"id"`
	LeagueID  int64     `db:"league_id"`
	Name      string    `db:"name"`
	HomeCity  string    `db:"home_city"`
	HeadCoach string    `db:"head_coach"`
	Stadium   string    `db:"stadium"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		LeagueID:  m.LeagueID,
		Name:      m.Name,
		HomeCity:  m.HomeCity,
		HeadCoach: m.HeadCoach,
		Stadium:   m.Stadium,
	}
}

type playerTableModel struct {
	ID                        int64     `db:"id"`
	TeamID                    int64     `db:"team_id"`
	Name                      string    `db:"name"`
	Position                  string    `db:"position"`
	CareerPassingYards        int64     `db:"career_passing_yards"`
	CareerPassingTouchdowns   int64     `db:"career_passing_touchdowns"`
	CareerPassingAttempts     int64     `db:"career_passing_attempts"`
	CareerPassingCompletions  int64     `db:"career_passing_completions"`
	CareerRushingYards        int64     `db:"career_rushing_yards"`
	CareerRushingTouchdowns   int64     `db:"career_rushing_touchdowns"`
	CareerRushingAttempts     int64     `db:"career_rushing_attempts"`
	CareerReceivingYards      int64     `db:"career_receiving_yards"`
	CareerReceivingTouchdowns int64     `db:"career_receiving_touchdowns"`
	CareerReceptions          int64     `db:"career_receptions"`
	CareerTouchdowns          int64     `db:"career_touchdowns"`
	CareerTackles             int64     `db:"career_tackles"`
	CareerSacks               float64   `db:"career_sacks"`
	CareerInterceptions       int64     `db:"career_interceptions"`
	CareerPassesDefensed      int64     `db:"career_passes_defensed"`
	CareerFumbles             int64     `db:"career_fumbles"`
	CreatedAt                 time.Time `db:"created_at"`
	UpdatedAt                 time.Time `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:       m.ID,
		TeamID:   m.TeamID,
		Name:     m.Name,
		Position: player.Position(m.Position),
		Career: player.Career{
			PassingYards:        m.CareerPassingYards,
			PassingTouchdowns:   m.CareerPassingTouchdowns,
			PassingAttempts:     m.CareerPassingAttempts,
			PassingCompletions:  m.CareerPassingCompletions,
			RushingYards:        m.CareerRushingYards,
			RushingTouchdowns:   m.CareerRushingTouchdowns,
			RushingAttempts:     m.CareerRushingAttempts,
			ReceivingYards:      m.CareerReceivingYards,
			ReceivingTouchdowns: m.CareerReceivingTouchdowns,
			Receptions:          m.CareerReceptions,
			Touchdowns:          m.CareerTouchdowns,
			Tackles:             m.CareerTackles,
			Sacks:               m.CareerSacks,
			Interceptions:       m.CareerInterceptions,
			PassesDefensed:      m.CareerPassesDefensed,
			Fumbles:             m.CareerFumbles,
		},
	}
}

type gameTableModel struct {
	ID         int64         `db:"id"`
	LeagueID   int64         `db:"league_id"`
	SeasonYear int           `db:"season_year"`
	Week       int           `db:"week"`
	HomeTeamID int64         `db:"home_team_id"`
	AwayTeamID int64         `db:"away_team_id"`
	Venue      string        `db:"venue"`
	GameDate   time.Time     `db:"game_date"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	Attendance sql.NullInt64 `db:"attendance"`
	CreatedAt  time.Time     `db:"created_at"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

func (m gameTableModel) toDomain() game.Game {
	return game.Game{
		ID:         m.ID,
		LeagueID:   m.LeagueID,
		SeasonYear: m.SeasonYear,
		Week:       m.Week,
		HomeTeamID: m.HomeTeamID,
		AwayTeamID: m.AwayTeamID,
		Venue:      m.Venue,
		GameDate:   m.GameDate,
		HomeScore:  nullInt64Ptr(m.HomeScore),
		AwayScore:  nullInt64Ptr(m.AwayScore),
		Attendance: nullInt64Ptr(m.Attendance),
	}
}

type statLineTableModel struct {
	ID                 int64     `db:"id"`
	PlayerID           int64     `db:"player_id"`
	GameID             int64     `db:"game_id"`
	PassingYards       int64     `db:"passing_yards"`
	PassingAttempts    int64     `db:"passing_attempts"`
	PassingCompletions int64     `db:"passing_completions"`
	RushingYards       int64     `db:"rushing_yards"`
	ReceivingYards     int64     `db:"receiving_yards"`
	Receptions         int64     `db:"receptions"`
	Touchdowns         int64     `db:"touchdowns"`
	Tackles            int64     `db:"tackles"`
	Sacks              float64   `db:"sacks"`
	Interceptions      int64     `db:"interceptions"`
	Fumbles            int64     `db:"fumbles"`
	FieldGoalsMade     int64     `db:"field_goals_made"`
	ExtraPointsMade    int64     `db:"extra_points_made"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (m statLineTableModel) toDomain() playerstats.Line {
	return playerstats.Line{
		ID:                 m.ID,
		PlayerID:           m.PlayerID,
		GameID:             m.GameID,
		PassingYards:       m.PassingYards,
		PassingAttempts:    m.PassingAttempts,
		PassingCompletions: m.PassingCompletions,
		RushingYards:       m.RushingYards,
		ReceivingYards:     m.ReceivingYards,
		Receptions:         m.Receptions,
		Touchdowns:         m.Touchdowns,
		Tackles:            m.Tackles,
		Sacks:              m.Sacks,
		Interceptions:      m.Interceptions,
		Fumbles:            m.Fumbles,
		FieldGoalsMade:     m.FieldGoalsMade,
		ExtraPointsMade:    m.ExtraPointsMade,
	}
}

type injuryTableModel struct {
	ID          int64      `db:"id"`
	PlayerID    int64      `db:"player_id"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Description string     `db:"description"`
	Severity    string     `db:"severity"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (m injuryTableModel) toDomain() injury.Injury {
	return injury.Injury{
		ID:          m.ID,
		PlayerID:    m.PlayerID,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Description: m.Description,
		Severity:    m.Severity,
	}
}

type salaryTableModel struct {
	ID         int64     `db:"id"`
	PlayerID   int64     `db:"player_id"`
	SeasonYear int       `db:"season_year"`
	BaseSalary float64   `db:"base_salary"`
	Bonuses    float64   `db:"bonuses"`
	CapHit     float64   `db:"cap_hit"`
	TotalComp  float64   `db:"total_compensation"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (m salaryTableModel) toDomain() salary.Salary {
	return salary.Salary{
		ID:         m.ID,
		PlayerID:   m.PlayerID,
		SeasonYear: m.SeasonYear,
		BaseSalary: m.BaseSalary,
		Bonuses:    m.Bonuses,
		CapHit:     m.CapHit,
		TotalComp:  m.TotalComp,
	}
}

func nullInt64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	value := v.Int64
	return &value
}

func int64ToNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
