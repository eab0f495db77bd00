package playerstats

import "fmt"

// Line is one player's stat line for a single game.
type Line struct {
	ID                 int64
	PlayerID           int64
	GameID             int64
	PassingYards       int64
	PassingAttempts    int64
	PassingCompletions int64
	RushingYards       int64
	ReceivingYards     int64
	Receptions         int64
	Touchdowns         int64
	Tackles            int64
	Sacks              float64
	Interceptions      int64
	Fumbles            int64
	FieldGoalsMade     int64
	ExtraPointsMade    int64
}

func (l Line) Validate() error {
	if l.PlayerID <= 0 {
		return fmt.Errorf("stat line player id is required")
	}
	if l.GameID <= 0 {
		return fmt.Errorf("stat line game id is required")
	}

	return nil
}
