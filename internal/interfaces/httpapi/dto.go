package httpapi

import (
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/domain/salary"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
	"github.com/nathanpradana/sportsdash/internal/usecase"
)

type leagueDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{ID: l.ID, Name: l.Name, Level: l.Level}
}

type teamDTO struct {
	ID        int64  `json:"id"`
	LeagueID  int64  `json:"league_id"`
	Name      string `json:"name"`
	HomeCity  string `json:"home_city"`
	HeadCoach string `json:"head_coach"`
	Stadium   string `json:"stadium"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:        t.ID,
		LeagueID:  t.LeagueID,
		Name:      t.Name,
		HomeCity:  t.HomeCity,
		HeadCoach: t.HeadCoach,
		Stadium:   t.Stadium,
	}
}

type careerDTO struct {
	PassingYards        int64   `json:"passing_yards"`
	PassingTouchdowns   int64   `json:"passing_touchdowns"`
	PassingAttempts     int64   `json:"passing_attempts"`
	PassingCompletions  int64   `json:"passing_completions"`
	RushingYards        int64   `json:"rushing_yards"`
	RushingTouchdowns   int64   `json:"rushing_touchdowns"`
	RushingAttempts     int64   `json:"rushing_attempts"`
	ReceivingYards      int64   `json:"receiving_yards"`
	ReceivingTouchdowns int64   `json:"receiving_touchdowns"`
	Receptions          int64   `json:"receptions"`
	Touchdowns          int64   `json:"touchdowns"`
	Tackles             int64   `json:"tackles"`
	Sacks               float64 `json:"sacks"`
	Interceptions       int64   `json:"interceptions"`
	PassesDefensed      int64   `json:"passes_defensed"`
	Fumbles             int64   `json:"fumbles"`
}

func careerToDTO(c player.Career) careerDTO {
	return careerDTO{
		PassingYards:        c.PassingYards,
		PassingTouchdowns:   c.PassingTouchdowns,
		PassingAttempts:     c.PassingAttempts,
		PassingCompletions:  c.PassingCompletions,
		RushingYards:        c.RushingYards,
		RushingTouchdowns:   c.RushingTouchdowns,
		RushingAttempts:     c.RushingAttempts,
		ReceivingYards:      c.ReceivingYards,
		ReceivingTouchdowns: c.ReceivingTouchdowns,
		Receptions:          c.Receptions,
		Touchdowns:          c.Touchdowns,
		Tackles:             c.Tackles,
		Sacks:               c.Sacks,
		Interceptions:       c.Interceptions,
		PassesDefensed:      c.PassesDefensed,
		Fumbles:             c.Fumbles,
	}
}

func careerFromDTO(c careerDTO) player.Career {
	return player.Career{
		PassingYards:        c.PassingYards,
		PassingTouchdowns:   c.PassingTouchdowns,
		PassingAttempts:     c.PassingAttempts,
		PassingCompletions:  c.PassingCompletions,
		RushingYards:        c.RushingYards,
		RushingTouchdowns:   c.RushingTouchdowns,
		RushingAttempts:     c.RushingAttempts,
		ReceivingYards:      c.ReceivingYards,
		ReceivingTouchdowns: c.ReceivingTouchdowns,
		Receptions:          c.Receptions,
		Touchdowns:          c.Touchdowns,
		Tackles:             c.Tackles,
		Sacks:               c.Sacks,
		Interceptions:       c.Interceptions,
		PassesDefensed:      c.PassesDefensed,
		Fumbles:             c.Fumbles,
	}
}

type playerDTO struct {
	ID       int64     `json:"id"`
	TeamID   int64     `json:"team_id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Career   careerDTO `json:"career"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		TeamID:   p.TeamID,
		Name:     p.Name,
		Position: string(p.Position),
		Career:   careerToDTO(p.Career),
	}
}

type gameDTO struct {
	ID         int64     `json:"id"`
	LeagueID   int64     `json:"league_id"`
	SeasonYear int       `json:"season_year"`
	Week       int       `json:"week"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	Venue      string    `json:"venue"`
	GameDate   time.Time `json:"game_date"`
	HomeScore  *int64    `json:"home_score"`
	AwayScore  *int64    `json:"away_score"`
	Attendance *int64    `json:"attendance"`
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:         g.ID,
		LeagueID:   g.LeagueID,
		SeasonYear: g.SeasonYear,
		Week:       g.Week,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		Venue:      g.Venue,
		GameDate:   g.GameDate,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		Attendance: g.Attendance,
	}
}

type statLineDTO struct {
	ID                 int64   `json:"id,omitempty"`
	PlayerID           int64   `json:"player_id"`
	GameID             int64   `json:"game_id,omitempty"`
	PassingYards       int64   `json:"passing_yards"`
	PassingAttempts    int64   `json:"passing_attempts"`
	PassingCompletions int64   `json:"passing_completions"`
	RushingYards       int64   `json:"rushing_yards"`
	ReceivingYards     int64   `json:"receiving_yards"`
	Receptions         int64   `json:"receptions"`
	Touchdowns         int64   `json:"touchdowns"`
	Tackles            int64   `json:"tackles"`
	Sacks              float64 `json:"sacks"`
	Interceptions      int64   `json:"interceptions"`
	Fumbles            int64   `json:"fumbles"`
	FieldGoalsMade     int64   `json:"field_goals_made"`
	ExtraPointsMade    int64   `json:"extra_points_made"`
}

func statLineToDTO(l playerstats.Line) statLineDTO {
	return statLineDTO{
		ID:                 l.ID,
		PlayerID:           l.PlayerID,
		GameID:             l.GameID,
		PassingYards:       l.PassingYards,
		PassingAttempts:    l.PassingAttempts,
		PassingCompletions: l.PassingCompletions,
		RushingYards:       l.RushingYards,
		ReceivingYards:     l.ReceivingYards,
		Receptions:         l.Receptions,
		Touchdowns:         l.Touchdowns,
		Tackles:            l.Tackles,
		Sacks:              l.Sacks,
		Interceptions:      l.Interceptions,
		Fumbles:            l.Fumbles,
		FieldGoalsMade:     l.FieldGoalsMade,
		ExtraPointsMade:    l.ExtraPointsMade,
	}
}

func statLineFromDTO(d statLineDTO) playerstats.Line {
	return playerstats.Line{
		ID:                 d.ID,
		PlayerID:           d.PlayerID,
		GameID:             d.GameID,
		PassingYards:       d.PassingYards,
		PassingAttempts:    d.PassingAttempts,
		PassingCompletions: d.PassingCompletions,
		RushingYards:       d.RushingYards,
		ReceivingYards:     d.ReceivingYards,
		Receptions:         d.Receptions,
		Touchdowns:         d.Touchdowns,
		Tackles:            d.Tackles,
		Sacks:              d.Sacks,
		Interceptions:      d.Interceptions,
		Fumbles:            d.Fumbles,
		FieldGoalsMade:     d.FieldGoalsMade,
		ExtraPointsMade:    d.ExtraPointsMade,
	}
}

type gameLogRowDTO struct {
	GameID     int64       `json:"game_id"`
	SeasonYear int         `json:"season_year"`
	Week       int         `json:"week"`
	GameDate   time.Time   `json:"game_date"`
	Opponent   string      `json:"opponent"`
	Line       statLineDTO `json:"line"`
}

type playerDetailDTO struct {
	Player   playerDTO       `json:"player"`
	TeamName string          `json:"team_name"`
	GameLog  []gameLogRowDTO `json:"game_log"`
}

func playerDetailToDTO(d usecase.PlayerDetail) playerDetailDTO {
	log := make([]gameLogRowDTO, 0, len(d.GameLog))
	for _, row := range d.GameLog {
		log = append(log, gameLogRowDTO{
			GameID:     row.GameID,
			SeasonYear: row.SeasonYear,
			Week:       row.Week,
			GameDate:   row.GameDate,
			Opponent:   row.Opponent,
			Line:       statLineToDTO(row.Line),
		})
	}

	return playerDetailDTO{
		Player:   playerToDTO(d.Player),
		TeamName: d.TeamName,
		GameLog:  log,
	}
}

type injuryDTO struct {
	ID          int64      `json:"id"`
	PlayerID    int64      `json:"player_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
}

func injuryToDTO(i injury.Injury) injuryDTO {
	return injuryDTO{
		ID:          i.ID,
		PlayerID:    i.PlayerID,
		StartDate:   i.StartDate,
		EndDate:     i.EndDate,
		Description: i.Description,
		Severity:    i.Severity,
	}
}

type injuryReportRowDTO struct {
	Injury       injuryDTO `json:"injury"`
	PlayerName   string    `json:"player_name"`
	Position     string    `json:"position"`
	TeamName     string    `json:"team_name"`
	DurationDays *int      `json:"duration_days"`
}

type injurySummaryDTO struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	CriticalOrSevere int     `json:"critical_or_severe"`
	AvgDurationDays  float64 `json:"avg_duration_days"`
}

type injuryReportDTO struct {
	Rows    []injuryReportRowDTO `json:"rows"`
	Summary injurySummaryDTO     `json:"summary"`
}

func injuryReportToDTO(report usecase.InjuryReport) injuryReportDTO {
	rows := make([]injuryReportRowDTO, 0, len(report.Rows))
	for _, row := range report.Rows {
		dto := injuryReportRowDTO{
			Injury:     injuryToDTO(row.Injury),
			PlayerName: row.PlayerName,
			Position:   string(row.Position),
			TeamName:   row.TeamName,
		}
		if row.HasDuration {
			days := row.DurationDays
			dto.DurationDays = &days
		}
		rows = append(rows, dto)
	}

	return injuryReportDTO{
		Rows: rows,
		Summary: injurySummaryDTO{
			Total:            report.Summary.Total,
			Active:           report.Summary.Active,
			CriticalOrSevere: report.Summary.CriticalOrSevere,
			AvgDurationDays:  report.Summary.AvgDurationDays,
		},
	}
}

type salaryDTO struct {
	ID         int64   `json:"id"`
	PlayerID   int64   `json:"player_id"`
	SeasonYear int     `json:"season_year"`
	BaseSalary float64 `json:"base_salary"`
	Bonuses    float64 `json:"bonuses"`
	CapHit     float64 `json:"cap_hit"`
	TotalComp  float64 `json:"total_compensation"`
}

func salaryToDTO(s salary.Salary) salaryDTO {
	return salaryDTO{
		ID:         s.ID,
		PlayerID:   s.PlayerID,
		SeasonYear: s.SeasonYear,
		BaseSalary: s.BaseSalary,
		Bonuses:    s.Bonuses,
		CapHit:     s.CapHit,
		TotalComp:  s.TotalComp,
	}
}

type teamPerformanceRowDTO struct {
	TeamID        int64   `json:"team_id"`
	TeamName      string  `json:"team_name"`
	HomeCity      string  `json:"home_city"`
	LeagueID      int64   `json:"league_id"`
	LeagueName    string  `json:"league_name"`
	GamesPlayed   int     `json:"games_played"`
	HomeGames     int     `json:"home_games"`
	AwayGames     int     `json:"away_games"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
	AvgPoints     float64 `json:"avg_points"`
	AvgAttendance float64 `json:"avg_attendance"`
}

func teamPerformanceToDTO(row usecase.TeamPerformanceRow) teamPerformanceRowDTO {
	return teamPerformanceRowDTO{
		TeamID:        row.TeamID,
		TeamName:      row.TeamName,
		HomeCity:      row.HomeCity,
		LeagueID:      row.LeagueID,
		LeagueName:    row.LeagueName,
		GamesPlayed:   row.GamesPlayed,
		HomeGames:     row.HomeGames,
		AwayGames:     row.AwayGames,
		Wins:          row.Wins,
		Losses:        row.Losses,
		WinPercentage: row.WinPercentage,
		AvgPoints:     row.AvgPoints,
		AvgAttendance: row.AvgAttendance,
	}
}

type teamComparisonRowDTO struct {
	Rank              int     `json:"rank"`
	TeamID            int64   `json:"team_id"`
	TeamName          string  `json:"team_name"`
	HomeCity          string  `json:"home_city"`
	LeagueID          int64   `json:"league_id"`
	LeagueName        string  `json:"league_name"`
	GamesPlayed       int     `json:"games_played"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinPercentage     float64 `json:"win_percentage"`
	AvgPointsScored   float64 `json:"avg_points_scored"`
	AvgPointsAllowed  float64 `json:"avg_points_allowed"`
	PointDifferential int64   `json:"point_differential"`
	AvgAttendance     float64 `json:"avg_attendance"`
}

func teamComparisonToDTO(row usecase.TeamComparisonRow) teamComparisonRowDTO {
	return teamComparisonRowDTO{
		Rank:              row.Rank,
		TeamID:            row.TeamID,
		TeamName:          row.TeamName,
		HomeCity:          row.HomeCity,
		LeagueID:          row.LeagueID,
		LeagueName:        row.LeagueName,
		GamesPlayed:       row.GamesPlayed,
		Wins:              row.Wins,
		Losses:            row.Losses,
		WinPercentage:     row.WinPercentage,
		AvgPointsScored:   row.AvgPointsScored,
		AvgPointsAllowed:  row.AvgPointsAllowed,
		PointDifferential: row.PointDifferential,
		AvgAttendance:     row.AvgAttendance,
	}
}

type leagueStatDTO struct {
	LeagueID        int64   `json:"league_id"`
	LeagueName      string  `json:"league_name"`
	Level           string  `json:"level"`
	TeamCount       int     `json:"team_count"`
	PlayerCount     int     `json:"player_count"`
	GameCount       int     `json:"game_count"`
	TotalAttendance int64   `json:"total_attendance"`
	AvgAttendance   float64 `json:"avg_attendance"`
}

func leagueStatToDTO(s usecase.LeagueStat) leagueStatDTO {
	return leagueStatDTO{
		LeagueID:        s.LeagueID,
		LeagueName:      s.LeagueName,
		Level:           s.Level,
		TeamCount:       s.TeamCount,
		PlayerCount:     s.PlayerCount,
		GameCount:       s.GameCount,
		TotalAttendance: s.TotalAttendance,
		AvgAttendance:   s.AvgAttendance,
	}
}

type careerLeaderRowDTO struct {
	Rank                 int       `json:"rank"`
	PlayerID             int64     `json:"player_id"`
	PlayerName           string    `json:"player_name"`
	Position             string    `json:"position"`
	TeamID               int64     `json:"team_id"`
	SortedValue          float64   `json:"sorted_value"`
	CompletionPercentage float64   `json:"completion_percentage"`
	Career               careerDTO `json:"career"`
}

func careerLeaderToDTO(row usecase.CareerLeaderRow) careerLeaderRowDTO {
	return careerLeaderRowDTO{
		Rank:                 row.Rank,
		PlayerID:             row.PlayerID,
		PlayerName:           row.PlayerName,
		Position:             string(row.Position),
		TeamID:               row.TeamID,
		SortedValue:          row.SortedValue,
		CompletionPercentage: row.CompletionPercentage,
		Career:               careerToDTO(row.Career),
	}
}

type performerRowDTO struct {
	PlayerID    int64   `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	Position    string  `json:"position"`
	TeamID      int64   `json:"team_id"`
	GamesPlayed int     `json:"games_played"`
	Total       int64   `json:"total"`
	PerGame     float64 `json:"per_game"`
}

type topPerformersDTO struct {
	Passing   []performerRowDTO `json:"passing"`
	Rushing   []performerRowDTO `json:"rushing"`
	Receiving []performerRowDTO `json:"receiving"`
}

func topPerformersToDTO(t usecase.TopPerformers) topPerformersDTO {
	convert := func(rows []usecase.PerformerRow) []performerRowDTO {
		out := make([]performerRowDTO, 0, len(rows))
		for _, row := range rows {
			out = append(out, performerRowDTO{
				PlayerID:    row.PlayerID,
				PlayerName:  row.PlayerName,
				Position:    string(row.Position),
				TeamID:      row.TeamID,
				GamesPlayed: row.GamesPlayed,
				Total:       row.Total,
				PerGame:     row.PerGame,
			})
		}
		return out
	}

	return topPerformersDTO{
		Passing:   convert(t.Passing),
		Rushing:   convert(t.Rushing),
		Receiving: convert(t.Receiving),
	}
}

type dashboardDTO struct {
	LeagueCount    int `json:"league_count"`
	TeamCount      int `json:"team_count"`
	PlayerCount    int `json:"player_count"`
	GameCount      int `json:"game_count"`
	ActiveInjuries int `json:"active_injuries"`
}

type bulkStatsResultDTO struct {
	GameID    int64 `json:"game_id"`
	Processed int   `json:"processed"`
}

type sessionDTO struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

type createLeagueRequest struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"required"`
}

type createTeamRequest struct {
	LeagueID  int64  `json:"league_id" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	HomeCity  string `json:"home_city" validate:"required"`
	HeadCoach string `json:"head_coach"`
	Stadium   string `json:"stadium"`
}

type createPlayerRequest struct {
	TeamID   int64     `json:"team_id" validate:"required,gt=0"`
	Name     string    `json:"name" validate:"required"`
	Position string    `json:"position" validate:"required"`
	Career   careerDTO `json:"career"`
}

type createGameRequest struct {
	LeagueID   int64     `json:"league_id" validate:"required,gt=0"`
	SeasonYear int       `json:"season_year" validate:"required,gt=0"`
	Week       int       `json:"week" validate:"gte=0"`
	HomeTeamID int64     `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int64     `json:"away_team_id" validate:"required,gt=0"`
	Venue      string    `json:"venue"`
	GameDate   time.Time `json:"game_date"`
	HomeScore  *int64    `json:"home_score"`
	AwayScore  *int64    `json:"away_score"`
	Attendance *int64    `json:"attendance"`
}

type createInjuryRequest struct {
	PlayerID    int64      `json:"player_id" validate:"required,gt=0"`
	StartDate   time.Time  `json:"start_date" validate:"required"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	Severity    string     `json:"severity" validate:"required"`
}

type createSalaryRequest struct {
	PlayerID   int64   `json:"player_id" validate:"required,gt=0"`
	SeasonYear int     `json:"season_year" validate:"required,gt=0"`
	BaseSalary float64 `json:"base_salary" validate:"gte=0"`
	Bonuses    float64 `json:"bonuses" validate:"gte=0"`
	CapHit     float64 `json:"cap_hit" validate:"gte=0"`
	TotalComp  float64 `json:"total_compensation" validate:"gte=0"`
}

type bulkStatsRequest struct {
	Lines []statLineDTO `json:"lines" validate:"required,min=1"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type syncJobRequest struct {
	LeagueID    int64    `json:"league_id" validate:"required,gt=0"`
	Kinds       []string `json:"kinds"`
	PlayerLimit int      `json:"player_limit"`
	MaxWorkers  int      `json:"max_workers"`
}
