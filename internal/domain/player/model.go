package player

import "fmt"

// Position represents the roster positions the dashboard recognizes.
type Position string

const (
	PositionQuarterback   Position = "QB"
	PositionRunningBack   Position = "RB"
	PositionWideReceiver  Position = "WR"
	PositionTightEnd      Position = "TE"
	PositionKicker        Position = "K"
	PositionLinebacker    Position = "LB"
	PositionCornerback    Position = "CB"
	PositionSafety        Position = "S"
	PositionDefensiveEnd  Position = "DE"
	PositionDefensiveTack Position = "DT"
)

var AllPositions = map[Position]struct{}{
	PositionQuarterback:   {},
	PositionRunningBack:   {},
	PositionWideReceiver:  {},
	PositionTightEnd:      {},
	PositionKicker:        {},
	PositionLinebacker:    {},
	PositionCornerback:    {},
	PositionSafety:        {},
	PositionDefensiveEnd:  {},
	PositionDefensiveTack: {},
}

// Career holds the lifetime counters a player accumulates across games.
type Career struct {
	PassingYards        int64
	PassingTouchdowns   int64
	PassingAttempts     int64
	PassingCompletions  int64
	RushingYards        int64
	RushingTouchdowns   int64
	RushingAttempts     int64
	ReceivingYards      int64
	ReceivingTouchdowns int64
	Receptions          int64
	Touchdowns          int64
	Tackles             int64
	Sacks               float64
	Interceptions       int64
	PassesDefensed      int64
	Fumbles             int64
}

// Player is a rostered athlete with lifetime statistics.
type Player struct {
	ID       int64
	TeamID   int64
	Name     string
	Position Position
	Career   Career
}

func (p Player) Validate() error {
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
