package game

import (
	"fmt"
	"time"
)

// Game is a single scheduled or completed matchup between two teams.
type Game struct {
	ID         int64
	LeagueID   int64
	SeasonYear int
	Week       int
	HomeTeamID int64
	AwayTeamID int64
	Venue      string
	GameDate   time.Time
	HomeScore  *int64
	AwayScore  *int64
	Attendance *int64
}

// Played reports whether both final scores are recorded.
func (g Game) Played() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}

func (g Game) Validate() error {
	if g.LeagueID <= 0 {
		return fmt.Errorf("game league id is required")
	}
	if g.SeasonYear <= 0 {
		return fmt.Errorf("game season year is required")
	}
	if g.HomeTeamID <= 0 || g.AwayTeamID <= 0 {
		return fmt.Errorf("game teams are required")
	}
	if g.HomeTeamID == g.AwayTeamID {
		return fmt.Errorf("game teams must differ")
	}

	return nil
}
