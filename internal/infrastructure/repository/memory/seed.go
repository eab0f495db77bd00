package memory

import (
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/domain/salary"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// SeedSet is a small consistent data set for dev mode and tests.
type SeedSet struct {
	Leagues  []league.League
	Teams    []team.Team
	Players  []player.Player
	Games    []game.Game
	Lines    []playerstats.Line
	Injuries []injury.Injury
	Salaries []salary.Salary
}

func i64(v int64) *int64 { return &v }

// Seed returns the default dev fixture: two leagues, four teams, a small
// roster, one played week and a couple of injuries.
func Seed() SeedSet {
	kickoff := time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)

	return SeedSet{
		Leagues: []league.League{
			{ID: 1, Name: "National Conference", Level: "Professional"},
			{ID: 2, Name: "American Conference", Level: "Professional"},
		},
		Teams: []team.Team{
			{ID: 1, LeagueID: 1, Name: "Thunderhawks", HomeCity: "Denver", HeadCoach: "M. Rivera", Stadium: "Summit Field"},
			{ID: 2, LeagueID: 1, Name: "Ironclads", HomeCity: "Pittsburgh", HeadCoach: "D. Okafor", Stadium: "Forge Stadium"},
			{ID: 3, LeagueID: 2, Name: "Mariners", HomeCity: "Seattle", HeadCoach: "T. Nakamura", Stadium: "Harborside Park"},
			{ID: 4, LeagueID: 2, Name: "Sunbirds", HomeCity: "Phoenix", HeadCoach: "L. Carter", Stadium: "Mesa Dome"},
		},
		Players: []player.Player{
			{ID: 1, TeamID: 1, Name: "Marcus Webb", Position: player.PositionQuarterback, Career: player.Career{
				PassingYards: 18000, PassingAttempts: 2200, PassingCompletions: 1450,
				PassingTouchdowns: 130, RushingYards: 3200, Touchdowns: 150,
			}},
			{ID: 2, TeamID: 1, Name: "DeShawn Cole", Position: player.PositionWideReceiver, Career: player.Career{
				ReceivingYards: 9500, Receptions: 640, ReceivingTouchdowns: 68, Touchdowns: 75,
			}},
			{ID: 3, TeamID: 2, Name: "Elijah Brooks", Position: player.PositionRunningBack, Career: player.Career{
				RushingYards: 7800, RushingTouchdowns: 61, Receptions: 210, Touchdowns: 70,
			}},
			{ID: 4, TeamID: 2, Name: "Andre Sloane", Position: player.PositionLinebacker, Career: player.Career{
				Tackles: 820, Sacks: 34.5, Interceptions: 9, PassesDefensed: 41,
			}},
			{ID: 5, TeamID: 3, Name: "Caleb Finn", Position: player.PositionQuarterback, Career: player.Career{
				PassingYards: 6200, PassingAttempts: 900, PassingCompletions: 560, PassingTouchdowns: 38, Touchdowns: 40,
			}},
			{ID: 6, TeamID: 4, Name: "Rashad Pierce", Position: player.PositionCornerback, Career: player.Career{
				Tackles: 310, Interceptions: 17, PassesDefensed: 66,
			}},
		},
		Games: []game.Game{
			{ID: 1, LeagueID: 1, SeasonYear: 2025, Week: 1, HomeTeamID: 1, AwayTeamID: 2,
				Venue: "Summit Field", GameDate: kickoff, HomeScore: i64(27), AwayScore: i64(17), Attendance: i64(71000)},
			{ID: 2, LeagueID: 2, SeasonYear: 2025, Week: 1, HomeTeamID: 3, AwayTeamID: 4,
				Venue: "Harborside Park", GameDate: kickoff, HomeScore: i64(13), AwayScore: i64(20), Attendance: i64(64000)},
			{ID: 3, LeagueID: 1, SeasonYear: 2025, Week: 2, HomeTeamID: 2, AwayTeamID: 1,
				Venue: "Forge Stadium", GameDate: kickoff.AddDate(0, 0, 7)},
		},
		Lines: []playerstats.Line{
			{ID: 1, PlayerID: 1, GameID: 1, PassingYards: 310, PassingAttempts: 38, PassingCompletions: 26, Touchdowns: 3},
			{ID: 2, PlayerID: 2, GameID: 1, ReceivingYards: 124, Receptions: 9, Touchdowns: 1},
			{ID: 3, PlayerID: 3, GameID: 1, RushingYards: 92, Touchdowns: 1},
			{ID: 4, PlayerID: 5, GameID: 2, PassingYards: 204, PassingAttempts: 31, PassingCompletions: 18, Touchdowns: 1},
		},
		Injuries: []injury.Injury{
			{ID: 1, PlayerID: 3, StartDate: kickoff.AddDate(0, 0, 1), Severity: injury.SeverityModerate,
				Description: "High ankle sprain"},
			{ID: 2, PlayerID: 6, StartDate: kickoff.AddDate(0, 0, -30), EndDate: timePtr(kickoff.AddDate(0, 0, -9)),
				Severity: injury.SeverityMinor, Description: "Hamstring tightness"},
		},
		Salaries: []salary.Salary{
			{ID: 1, PlayerID: 1, SeasonYear: 2025, BaseSalary: 38000000, Bonuses: 4500000, CapHit: 41000000, TotalComp: 42500000},
			{ID: 2, PlayerID: 2, SeasonYear: 2025, BaseSalary: 18250000, Bonuses: 2000000, CapHit: 19800000, TotalComp: 20250000},
			{ID: 3, PlayerID: 3, SeasonYear: 2025, BaseSalary: 9400000, Bonuses: 600000, CapHit: 9750000, TotalComp: 10000000},
		},
	}
}

// PlayerTeams maps the seed's players to their teams for injury filters.
func (s SeedSet) PlayerTeams() map[int64]int64 {
	out := make(map[int64]int64, len(s.Players))
	for _, p := range s.Players {
		out[p.ID] = p.TeamID
	}
	return out
}

func timePtr(t time.Time) *time.Time { return &t }
