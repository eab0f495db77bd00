package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nathanpradana/sportsdash/internal/domain/tableview"
)

func sampleRoster() []Player {
	return []Player{
		{ID: 1, TeamID: 1, Name: "Marcus Webb", Position: "QB", Career: Career{PassingYards: 18000, Touchdowns: 150}},
		{ID: 2, TeamID: 1, Name: "DeShawn Cole", Position: "WR", Career: Career{Touchdowns: 75}},
		{ID: 3, TeamID: 2, Name: "Elijah Brooks", Position: "RB", Career: Career{Touchdowns: 70}},
	}
}

func TestPlayerView_FiltersThenSorts(t *testing.T) {
	state := tableview.State{Column: "touchdowns", Direction: tableview.Descending}

	got := PlayerView(sampleRoster(), state, PlayerFilter{TeamID: 1})
	require.Len(t, got, 2)
	require.Equal(t, "Marcus Webb", got[0].Name)
	require.Equal(t, "DeShawn Cole", got[1].Name)
}

func TestPlayerView_NameQueryIsCaseInsensitive(t *testing.T) {
	got := PlayerView(sampleRoster(), tableview.State{}, PlayerFilter{Name: "brooks"})
	require.Len(t, got, 1)
	require.Equal(t, "Elijah Brooks", got[0].Name)
}

func TestGameView_TeamFilterMatchesEitherSide(t *testing.T) {
	att := int64(71000)
	kickoff := time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)
	games := []Game{
		{ID: 1, LeagueID: 1, Week: 1, HomeTeamID: 1, AwayTeamID: 2, GameDate: kickoff, Attendance: &att},
		{ID: 2, LeagueID: 1, Week: 2, HomeTeamID: 2, AwayTeamID: 1, GameDate: kickoff.AddDate(0, 0, 7)},
		{ID: 3, LeagueID: 2, Week: 1, HomeTeamID: 3, AwayTeamID: 4, GameDate: kickoff},
	}

	state := tableview.State{Column: "game_date", Direction: tableview.Descending}
	got := GameView(games, state, GameFilter{TeamID: 1})
	require.Len(t, got, 2)
	require.Equal(t, int64(2), got[0].ID)
	require.Equal(t, int64(1), got[1].ID)
}

func TestComparisonView_ResortsByDifferential(t *testing.T) {
	rows := []TeamComparisonRow{
		{Rank: 1, TeamID: 1, TeamName: "Thunderhawks", LeagueID: 1, WinPercentage: 50, PointDifferential: 4},
		{Rank: 2, TeamID: 2, TeamName: "Ironclads", LeagueID: 1, WinPercentage: 50, PointDifferential: 12},
		{Rank: 3, TeamID: 3, TeamName: "Mariners", LeagueID: 2, WinPercentage: 0, PointDifferential: -7},
	}

	state := tableview.State{Column: "point_differential", Direction: tableview.Descending}
	got := ComparisonView(rows, state, 1)
	require.Len(t, got, 2)
	require.Equal(t, "Ironclads", got[0].TeamName)
}

func TestInjuryView_ActiveOnlyAndDurationSort(t *testing.T) {
	end := time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)
	ten, twentyOne := 10, 21
	rows := []InjuryReportRow{
		{Injury: Injury{ID: 1}, PlayerName: "Elijah Brooks", TeamName: "Ironclads", DurationDays: &ten},
		{Injury: Injury{ID: 2, EndDate: &end}, PlayerName: "Rashad Pierce", TeamName: "Sunbirds", DurationDays: &twentyOne},
	}

	got := InjuryView(rows, tableview.State{}, "", true)
	require.Len(t, got, 1)
	require.Equal(t, "Elijah Brooks", got[0].PlayerName)

	state := tableview.State{Column: "duration_days", Direction: tableview.Descending}
	got = InjuryView(rows, state, "", false)
	require.Equal(t, "Rashad Pierce", got[0].PlayerName)
}

func TestLabels(t *testing.T) {
	leader := CareerLeaderRow{Rank: 1, PlayerName: "Marcus Webb", SortedValue: 18000}
	require.Equal(t, "1st: Marcus Webb (Passing Yards 18,000)", LeaderLabel(leader, "passing_yards"))

	require.Equal(t, "50.0%", WinPercentageLabel(TeamComparisonRow{WinPercentage: 50}))

	att := int64(71000)
	require.Equal(t, "71,000", AttendanceLabel(Game{Attendance: &att}))
	require.Equal(t, "N/A", AttendanceLabel(Game{}))

	require.Equal(t, "Sep 7, 2025", GameDateLabel(Game{GameDate: time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC)}))

	require.Equal(t, "$42,500,000", CompensationLabel(Salary{TotalComp: 42500000}))
}
