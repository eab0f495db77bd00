package client

import "time"

// League mirrors the service's league resource.
type League struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Team struct {
	ID        int64  `json:"id"`
	LeagueID  int64  `json:"league_id"`
	Name      string `json:"name"`
	HomeCity  string `json:"home_city"`
	HeadCoach string `json:"head_coach"`
	Stadium   string `json:"stadium"`
}

type Career struct {
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

type Player struct {
	ID       int64  `json:"id"`
	TeamID   int64  `json:"team_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Career   Career `json:"career"`
}

type Game struct {
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

type StatLine struct {
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

type GameLogRow struct {
	GameID     int64     `json:"game_id"`
	SeasonYear int       `json:"season_year"`
	Week       int       `json:"week"`
	GameDate   time.Time `json:"game_date"`
	Opponent   string    `json:"opponent"`
	Line       StatLine  `json:"line"`
}

type Injury struct {
	ID          int64      `json:"id"`
	PlayerID    int64      `json:"player_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
	Severity    string     `json:"severity"`
}

type Salary struct {
	ID         int64   `json:"id"`
	PlayerID   int64   `json:"player_id"`
	SeasonYear int     `json:"season_year"`
	BaseSalary float64 `json:"base_salary"`
	Bonuses    float64 `json:"bonuses"`
	CapHit     float64 `json:"cap_hit"`
	TotalComp  float64 `json:"total_compensation"`
}

type InjuryReportRow struct {
	Injury       Injury `json:"injury"`
	PlayerName   string `json:"player_name"`
	Position     string `json:"position"`
	TeamName     string `json:"team_name"`
	DurationDays *int   `json:"duration_days"`
}

type InjurySummary struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	CriticalOrSevere int     `json:"critical_or_severe"`
	AvgDurationDays  float64 `json:"avg_duration_days"`
}

type InjuryReport struct {
	Rows    []InjuryReportRow `json:"rows"`
	Summary InjurySummary     `json:"summary"`
}

type TeamPerformanceRow struct {
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

type TeamComparisonRow struct {
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

type CareerLeaderRow struct {
	Rank                 int     `json:"rank"`
	PlayerID             int64   `json:"player_id"`
	PlayerName           string  `json:"player_name"`
	Position             string  `json:"position"`
	TeamID               int64   `json:"team_id"`
	SortedValue          float64 `json:"sorted_value"`
	CompletionPercentage float64 `json:"completion_percentage"`
	Career               Career  `json:"career"`
}

type PerformerRow struct {
	PlayerID    int64   `json:"player_id"`
	PlayerName  string  `json:"player_name"`
	Position    string  `json:"position"`
	TeamID      int64   `json:"team_id"`
	GamesPlayed int     `json:"games_played"`
	Total       int64   `json:"total"`
	PerGame     float64 `json:"per_game"`
}

type TopPerformers struct {
	Passing   []PerformerRow `json:"passing"`
	Rushing   []PerformerRow `json:"rushing"`
	Receiving []PerformerRow `json:"receiving"`
}

type Session struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

// TeamFilter narrows ListTeams. Zero values impose no constraint.
type TeamFilter struct {
	LeagueID int64
	Name     string
	City     string
}

type PlayerFilter struct {
	TeamID   int64
	Position string
	Name     string
}

type GameFilter struct {
	LeagueID int64
	TeamID   int64
	Season   int
	Week     int
}

type InjuryFilter struct {
	PlayerID   int64
	TeamID     int64
	Severity   string
	ActiveOnly bool
}

type SalaryFilter struct {
	PlayerID   int64
	SeasonYear int
}

// NewLeague is the payload for CreateLeague.
type NewLeague struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type NewTeam struct {
	LeagueID  int64  `json:"league_id"`
	Name      string `json:"name"`
	HomeCity  string `json:"home_city"`
	HeadCoach string `json:"head_coach,omitempty"`
	Stadium   string `json:"stadium,omitempty"`
}

type NewPlayer struct {
	TeamID   int64  `json:"team_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Career   Career `json:"career"`
}

type NewGame struct {
	LeagueID   int64     `json:"league_id"`
	SeasonYear int       `json:"season_year"`
	Week       int       `json:"week"`
	HomeTeamID int64     `json:"home_team_id"`
	AwayTeamID int64     `json:"away_team_id"`
	Venue      string    `json:"venue,omitempty"`
	GameDate   time.Time `json:"game_date"`
	HomeScore  *int64    `json:"home_score,omitempty"`
	AwayScore  *int64    `json:"away_score,omitempty"`
	Attendance *int64    `json:"attendance,omitempty"`
}

type NewInjury struct {
	PlayerID    int64      `json:"player_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description,omitempty"`
	Severity    string     `json:"severity"`
}

type NewSalary struct {
	PlayerID   int64   `json:"player_id"`
	SeasonYear int     `json:"season_year"`
	BaseSalary float64 `json:"base_salary"`
	Bonuses    float64 `json:"bonuses"`
	CapHit     float64 `json:"cap_hit"`
	TotalComp  float64 `json:"total_compensation"`
}
