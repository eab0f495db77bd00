package usecase

import (
	"math"
	"sort"
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/league"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// The functions in this file are the derived-statistics engine. They are
// pure: total over empty input, no error returns, missing numerics and
// unplayed games count as zero. Services and the client SDK feed them the
// same raw rows and get identical derived rows back.

// TeamStat is one team's aggregated record across a set of games.
type TeamStat struct {
	TeamID        int64
	TeamName      string
	HomeCity      string
	LeagueID      int64
	GamesPlayed   int
	HomeGames     int
	AwayGames     int
	Wins          int
	Losses        int
	WinPercentage float64
	AvgPoints     float64
	AvgAttendance float64
}

// ComputeTeamStats aggregates games into per-team records, in the order
// the teams were given. Missing scores and attendance count as zero.
func ComputeTeamStats(teams []team.Team, games []game.Game) []TeamStat {
	type tally struct {
		home, away int
		wins       int
		points     int64
		attendance int64
	}
	byTeam := make(map[int64]*tally, len(teams))
	for _, t := range teams {
		byTeam[t.ID] = &tally{}
	}

	for _, g := range games {
		home := int64Value(g.HomeScore)
		away := int64Value(g.AwayScore)
		att := int64Value(g.Attendance)

		if ty, ok := byTeam[g.HomeTeamID]; ok {
			ty.home++
			ty.points += home
			ty.attendance += att
			if home > away {
				ty.wins++
			}
		}
		if ty, ok := byTeam[g.AwayTeamID]; ok {
			ty.away++
			ty.points += away
			ty.attendance += att
			if away > home {
				ty.wins++
			}
		}
	}

	out := make([]TeamStat, 0, len(teams))
	for _, t := range teams {
		ty := byTeam[t.ID]
		played := ty.home + ty.away
		denom := float64(maxInt(played, 1))

		out = append(out, TeamStat{
			TeamID:        t.ID,
			TeamName:      t.Name,
			HomeCity:      t.HomeCity,
			LeagueID:      t.LeagueID,
			GamesPlayed:   played,
			HomeGames:     ty.home,
			AwayGames:     ty.away,
			Wins:          ty.wins,
			Losses:        played - ty.wins,
			WinPercentage: round1(float64(ty.wins) / denom * 100),
			AvgPoints:     round1(float64(ty.points) / denom),
			AvgAttendance: math.Round(float64(ty.attendance) / denom),
		})
	}

	return out
}

// TeamComparisonRow is one line of the side-by-side team comparison: a
// team's record and scoring margin, ranked against the other teams in
// the set.
type TeamComparisonRow struct {
	Rank              int
	TeamID            int64
	TeamName          string
	HomeCity          string
	LeagueID          int64
	LeagueName        string
	GamesPlayed       int
	Wins              int
	Losses            int
	WinPercentage     float64
	AvgPointsScored   float64
	AvgPointsAllowed  float64
	PointDifferential int64
	AvgAttendance     float64
}

// ComputeTeamComparison ranks teams for side-by-side comparison: best
// win percentage first, scoring margin breaking ties, then team name.
// Unplayed games count as scoreless, the same as in ComputeTeamStats.
func ComputeTeamComparison(leagues []league.League, teams []team.Team, games []game.Game) []TeamComparisonRow {
	type tally struct {
		played     int
		wins       int
		scored     int64
		allowed    int64
		attendance int64
	}
	byTeam := make(map[int64]*tally, len(teams))
	for _, t := range teams {
		byTeam[t.ID] = &tally{}
	}

	for _, g := range games {
		home := int64Value(g.HomeScore)
		away := int64Value(g.AwayScore)
		att := int64Value(g.Attendance)

		if ty, ok := byTeam[g.HomeTeamID]; ok {
			ty.played++
			ty.scored += home
			ty.allowed += away
			ty.attendance += att
			if home > away {
				ty.wins++
			}
		}
		if ty, ok := byTeam[g.AwayTeamID]; ok {
			ty.played++
			ty.scored += away
			ty.allowed += home
			ty.attendance += att
			if away > home {
				ty.wins++
			}
		}
	}

	leagueNames := make(map[int64]string, len(leagues))
	for _, l := range leagues {
		leagueNames[l.ID] = l.Name
	}

	rows := make([]TeamComparisonRow, 0, len(teams))
	for _, t := range teams {
		ty := byTeam[t.ID]
		denom := float64(maxInt(ty.played, 1))

		rows = append(rows, TeamComparisonRow{
			TeamID:            t.ID,
			TeamName:          t.Name,
			HomeCity:          t.HomeCity,
			LeagueID:          t.LeagueID,
			LeagueName:        leagueNames[t.LeagueID],
			GamesPlayed:       ty.played,
			Wins:              ty.wins,
			Losses:            ty.played - ty.wins,
			WinPercentage:     round1(float64(ty.wins) / denom * 100),
			AvgPointsScored:   round1(float64(ty.scored) / denom),
			AvgPointsAllowed:  round1(float64(ty.allowed) / denom),
			PointDifferential: ty.scored - ty.allowed,
			AvgAttendance:     math.Round(float64(ty.attendance) / denom),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].WinPercentage != rows[j].WinPercentage {
			return rows[i].WinPercentage > rows[j].WinPercentage
		}
		if rows[i].PointDifferential != rows[j].PointDifferential {
			return rows[i].PointDifferential > rows[j].PointDifferential
		}
		return rows[i].TeamName < rows[j].TeamName
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// LeagueStat is one league's roll-up across the whole data set.
type LeagueStat struct {
	LeagueID        int64
	LeagueName      string
	Level           string
	TeamCount       int
	PlayerCount     int
	GameCount       int
	TotalAttendance int64
	AvgAttendance   float64
}

// ComputeLeagueStats counts teams, players and games per league and sums
// attendance. A league with no games reports zero average attendance.
func ComputeLeagueStats(leagues []league.League, teams []team.Team, players []player.Player, games []game.Game) []LeagueStat {
	teamLeague := make(map[int64]int64, len(teams))
	for _, t := range teams {
		teamLeague[t.ID] = t.LeagueID
	}

	stats := make(map[int64]*LeagueStat, len(leagues))
	for _, l := range leagues {
		stats[l.ID] = &LeagueStat{LeagueID: l.ID, LeagueName: l.Name, Level: l.Level}
	}

	for _, t := range teams {
		if s, ok := stats[t.LeagueID]; ok {
			s.TeamCount++
		}
	}
	for _, p := range players {
		if s, ok := stats[teamLeague[p.TeamID]]; ok {
			s.PlayerCount++
		}
	}
	for _, g := range games {
		if s, ok := stats[g.LeagueID]; ok {
			s.GameCount++
			s.TotalAttendance += int64Value(g.Attendance)
		}
	}

	out := make([]LeagueStat, 0, len(leagues))
	for _, l := range leagues {
		s := stats[l.ID]
		if s.GameCount > 0 {
			s.AvgAttendance = math.Round(float64(s.TotalAttendance) / float64(s.GameCount))
		}
		out = append(out, *s)
	}

	return out
}

// InjurySummary is the headline box of the injury report.
type InjurySummary struct {
	Total            int
	Active           int
	CriticalOrSevere int
	AvgDurationDays  float64
}

// ComputeInjurySummary summarizes a set of injury spells. Active spells
// count the days elapsed up to now; the mean covers only spells with a
// known duration and is zero when none have one.
func ComputeInjurySummary(rows []injury.Injury, now time.Time) InjurySummary {
	var s InjurySummary
	var durationSum, durationCount int

	for _, row := range rows {
		s.Total++
		if row.Active() {
			s.Active++
		}
		if row.Severity == injury.SeverityCritical || row.Severity == injury.SeveritySevere {
			s.CriticalOrSevere++
		}
		if days, ok := row.DurationDays(now); ok {
			durationSum += days
			durationCount++
		}
	}

	if durationCount > 0 {
		s.AvgDurationDays = round1(float64(durationSum) / float64(durationCount))
	}

	return s
}

// CareerLeaderRow is one line of a career leaderboard.
type CareerLeaderRow struct {
	Rank                 int
	PlayerID             int64
	PlayerName           string
	Position             player.Position
	TeamID               int64
	SortedValue          float64
	CompletionPercentage float64
	Career               player.Career
}

// careerAccessors maps leaderboard sort keys to career counters. Keys not
// present here rank every player at zero.
var careerAccessors = map[string]func(player.Career) float64{
	"passing_yards":        func(c player.Career) float64 { return float64(c.PassingYards) },
	"passing_touchdowns":   func(c player.Career) float64 { return float64(c.PassingTouchdowns) },
	"rushing_yards":        func(c player.Career) float64 { return float64(c.RushingYards) },
	"rushing_touchdowns":   func(c player.Career) float64 { return float64(c.RushingTouchdowns) },
	"receiving_yards":      func(c player.Career) float64 { return float64(c.ReceivingYards) },
	"receiving_touchdowns": func(c player.Career) float64 { return float64(c.ReceivingTouchdowns) },
	"receptions":           func(c player.Career) float64 { return float64(c.Receptions) },
	"touchdowns":           func(c player.Career) float64 { return float64(c.Touchdowns) },
	"tackles":              func(c player.Career) float64 { return float64(c.Tackles) },
	"sacks":                func(c player.Career) float64 { return c.Sacks },
	"interceptions":        func(c player.Career) float64 { return float64(c.Interceptions) },
	"passes_defensed":      func(c player.Career) float64 { return float64(c.PassesDefensed) },
	"fumbles":              func(c player.Career) float64 { return float64(c.Fumbles) },
}

// CareerLeaderKeys lists the sort keys the leaderboard accepts.
func CareerLeaderKeys() []string {
	keys := make([]string, 0, len(careerAccessors))
	for k := range careerAccessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RankCareerLeaders orders players by the chosen career counter,
// descending, ties keeping input order. An empty positionFilter admits
// every position; limit <= 0 means no truncation. Unknown sort keys rank
// everyone at zero, preserving input order.
func RankCareerLeaders(players []player.Player, key string, positionFilter player.Position, limit int) []CareerLeaderRow {
	accessor := careerAccessors[key]
	if accessor == nil {
		accessor = func(player.Career) float64 { return 0 }
	}

	rows := make([]CareerLeaderRow, 0, len(players))
	for _, p := range players {
		if positionFilter != "" && p.Position != positionFilter {
			continue
		}

		completion := 0.0
		if p.Career.PassingAttempts > 0 {
			completion = round1(float64(p.Career.PassingCompletions) / float64(p.Career.PassingAttempts) * 100)
		}

		rows = append(rows, CareerLeaderRow{
			PlayerID:             p.ID,
			PlayerName:           p.Name,
			Position:             p.Position,
			TeamID:               p.TeamID,
			SortedValue:          accessor(p.Career),
			CompletionPercentage: completion,
			Career:               p.Career,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SortedValue > rows[j].SortedValue
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// PerformerRow is one line of a season leaderboard.
type PerformerRow struct {
	PlayerID    int64
	PlayerName  string
	Position    player.Position
	TeamID      int64
	GamesPlayed int
	Total       int64
	PerGame     float64
}

// TopPerformers groups season leaders by yardage category.
type TopPerformers struct {
	Passing   []PerformerRow
	Rushing   []PerformerRow
	Receiving []PerformerRow
}

// ComputeTopPerformers totals per-game stat lines per player and returns
// the top limit players by passing, rushing and receiving yards. Players
// with a zero total in a category do not appear in it.
func ComputeTopPerformers(players []player.Player, lines []playerstats.Line, limit int) TopPerformers {
	type totals struct {
		games                       int
		passing, rushing, receiving int64
	}
	byPlayer := make(map[int64]*totals)
	for _, l := range lines {
		t := byPlayer[l.PlayerID]
		if t == nil {
			t = &totals{}
			byPlayer[l.PlayerID] = t
		}
		t.games++
		t.passing += l.PassingYards
		t.rushing += l.RushingYards
		t.receiving += l.ReceivingYards
	}

	build := func(pick func(*totals) int64) []PerformerRow {
		rows := make([]PerformerRow, 0, len(players))
		for _, p := range players {
			t := byPlayer[p.ID]
			if t == nil {
				continue
			}
			total := pick(t)
			if total <= 0 {
				continue
			}
			rows = append(rows, PerformerRow{
				PlayerID:    p.ID,
				PlayerName:  p.Name,
				Position:    p.Position,
				TeamID:      p.TeamID,
				GamesPlayed: t.games,
				Total:       total,
				PerGame:     round1(float64(total) / float64(t.games)),
			})
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
		if limit > 0 && len(rows) > limit {
			rows = rows[:limit]
		}
		return rows
	}

	return TopPerformers{
		Passing:   build(func(t *totals) int64 { return t.passing }),
		Rushing:   build(func(t *totals) int64 { return t.rushing }),
		Receiving: build(func(t *totals) int64 { return t.receiving }),
	}
}

// SortInjuriesBySeverity orders injury rows worst first: severity rank
// descending, then most recent start date, ties keeping input order.
func SortInjuriesBySeverity(rows []injury.Injury) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := injury.SeverityRank(rows[i].Severity), injury.SeverityRank(rows[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return rows[i].StartDate.After(rows[j].StartDate)
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func int64Value(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
