package client

import (
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/tableview"
	"github.com/nathanpradana/sportsdash/internal/platform/format"
)

// The view helpers in this file turn fetched rows into the sortable,
// filterable tables the list screens render. The caller holds a
// tableview.State per screen and feeds header clicks through Toggle;
// every call recomputes filter-then-sort from the raw rows.

// PlayerColumns are the sortable headers of the roster screen.
func PlayerColumns() []tableview.Column[Player] {
	return []tableview.Column[Player]{
		{Key: "name", Kind: tableview.Text, DefaultDirection: tableview.Ascending,
			Text: func(p Player) string { return p.Name }},
		{Key: "position", Kind: tableview.Text, DefaultDirection: tableview.Ascending,
			Text: func(p Player) string { return p.Position }},
		{Key: "passing_yards", Kind: tableview.Numeric, DefaultDirection: tableview.Descending,
			Number: func(p Player) float64 { return float64(p.Career.PassingYards) }},
		{Key: "touchdowns", Kind: tableview.Numeric, DefaultDirection: tableview.Descending,
			Number: func(p Player) float64 { return float64(p.Career.Touchdowns) }},
	}
}

// PlayerView filters the roster by team, position and a name query, then
// sorts by the active column.
func PlayerView(players []Player, state tableview.State, filter PlayerFilter) []Player {
	return tableview.Apply(players, PlayerColumns(), state,
		tableview.ExactID(func(p Player) int64 { return p.TeamID }, filter.TeamID),
		tableview.ExactText(func(p Player) string { return p.Position }, filter.Position),
		tableview.TextContains(func(p Player) string { return p.Name }, filter.Name),
	)
}

// GameColumns are the sortable headers of the schedule screen.
func GameColumns() []tableview.Column[Game] {
	return []tableview.Column[Game]{
		{Key: "game_date", Kind: tableview.Date, DefaultDirection: tableview.Ascending,
			Date: func(g Game) time.Time { return g.GameDate }},
		{Key: "week", Kind: tableview.Numeric, DefaultDirection: tableview.Ascending,
			Number: func(g Game) float64 { return float64(g.Week) }},
		{Key: "attendance", Kind: tableview.Numeric, DefaultDirection: tableview.Descending,
			Number: func(g Game) float64 {
				if g.Attendance == nil {
					return 0
				}
				return float64(*g.Attendance)
			}},
	}
}

// GameView filters the schedule by league and team, then sorts by the
// active column. The team filter matches either side of the matchup.
func GameView(games []Game, state tableview.State, filter GameFilter) []Game {
	return tableview.Apply(games, GameColumns(), state,
		tableview.ExactID(func(g Game) int64 { return g.LeagueID }, filter.LeagueID),
		tableview.WhenTrue(filter.TeamID != 0, func(g Game) bool {
			return g.HomeTeamID == filter.TeamID || g.AwayTeamID == filter.TeamID
		}),
	)
}

// ComparisonColumns are the sortable headers of the standings table.
func ComparisonColumns() []tableview.Column[TeamComparisonRow] {
	return []tableview.Column[TeamComparisonRow]{
		{Key: "team_name", Kind: tableview.Text, DefaultDirection: tableview.Ascending,
			Text: func(r TeamComparisonRow) string { return r.TeamName }},
		{Key: "win_percentage", Kind: tableview.Numeric, DefaultDirection: tableview.Descending,
			Number: func(r TeamComparisonRow) float64 { return r.WinPercentage }},
		{Key: "point_differential", Kind: tableview.Numeric, DefaultDirection: tableview.Descending,
			Number: func(r TeamComparisonRow) float64 { return float64(r.PointDifferential) }},
		{Key: "avg_attendance", Kind: tableview.Numeric, DefaultDirection: tableview.Descending,
			Number: func(r TeamComparisonRow) float64 { return r.AvgAttendance }},
	}
}

// ComparisonView re-sorts the fetched standings by the active column and
// narrows them to one league. The server's rank field keeps its original
// ordering, so the screen can always restore the default table.
func ComparisonView(rows []TeamComparisonRow, state tableview.State, leagueID int64) []TeamComparisonRow {
	return tableview.Apply(rows, ComparisonColumns(), state,
		tableview.ExactID(func(r TeamComparisonRow) int64 { return r.LeagueID }, leagueID),
	)
}

// InjuryColumns are the sortable headers of the injury report screen.
func InjuryColumns() []tableview.Column[InjuryReportRow] {
	return []tableview.Column[InjuryReportRow]{
		{Key: "player_name", Kind: tableview.Text, DefaultDirection: tableview.Ascending,
			Text: func(r InjuryReportRow) string { return r.PlayerName }},
		{Key: "start_date", Kind: tableview.Date, DefaultDirection: tableview.Descending,
			Date: func(r InjuryReportRow) time.Time { return r.Injury.StartDate }},
		{Key: "duration_days", Kind: tableview.Numeric, DefaultDirection: tableview.Descending,
			Number: func(r InjuryReportRow) float64 {
				if r.DurationDays == nil {
					return 0
				}
				return float64(*r.DurationDays)
			}},
	}
}

// InjuryView filters the fetched report rows by team name and active
// status, then sorts by the active column. Severity ordering comes from
// the server; an empty state leaves it untouched.
func InjuryView(rows []InjuryReportRow, state tableview.State, teamQuery string, activeOnly bool) []InjuryReportRow {
	return tableview.Apply(rows, InjuryColumns(), state,
		tableview.TextContains(func(r InjuryReportRow) string { return r.TeamName }, teamQuery),
		tableview.WhenTrue(activeOnly, func(r InjuryReportRow) bool { return r.Injury.EndDate == nil }),
	)
}

// LeaderLabel renders one leaderboard line, e.g.
// "1st: Marcus Webb (Passing Yards 18,000)".
func LeaderLabel(row CareerLeaderRow, key string) string {
	return format.Ordinal(row.Rank) + ": " + row.PlayerName +
		" (" + format.TitleCase(key) + " " + format.Thousands(int64(row.SortedValue)) + ")"
}

// WinPercentageLabel renders a standings percentage for display.
func WinPercentageLabel(row TeamComparisonRow) string {
	return format.Percent1(row.WinPercentage)
}

// AttendanceLabel renders a game's attendance, or "N/A" when unknown.
func AttendanceLabel(g Game) string {
	if g.Attendance == nil {
		return "N/A"
	}
	return format.Thousands(*g.Attendance)
}

// GameDateLabel renders a game's calendar date.
func GameDateLabel(g Game) string {
	return format.CalendarDate(g.GameDate)
}

// CompensationLabel renders a salary's total compensation in whole
// dollars.
func CompensationLabel(s Salary) string {
	return "$" + format.Thousands(int64(s.TotalComp))
}
