package team

import "fmt"

// Team is a club competing inside a league.
type Team struct {
	ID        int64
	LeagueID  int64
	Name      string
	HomeCity  string
	HeadCoach string
	Stadium   string
}

func (t Team) Validate() error {
	if t.LeagueID <= 0 {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.HomeCity == "" {
		return fmt.Errorf("team home city is required")
	}

	return nil
}
