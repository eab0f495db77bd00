package tableview

import (
	"testing"
	"time"
)

type row struct {
	ID    int64
	Name  string
	Score float64
	Date  time.Time
}

func testColumns() []Column[row] {
	return []Column[row]{
		{Key: "name", Kind: Text, DefaultDirection: Ascending, Text: func(r row) string { return r.Name }},
		{Key: "score", Kind: Numeric, DefaultDirection: Descending, Number: func(r row) float64 { return r.Score }},
		{Key: "date", Kind: Date, DefaultDirection: Ascending, Date: func(r row) time.Time { return r.Date }},
	}
}

func testRows() []row {
	return []row{
		{ID: 1, Name: "Delta", Score: 10, Date: time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "alpha", Score: 30},
		{ID: 3, Name: "Bravo", Score: 20, Date: time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Name: "charlie", Score: 20, Date: time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)},
	}
}

func ids(rows []row) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state State
		want  []int64
	}{
		{name: "text ascending ignores case", state: State{Column: "name", Direction: Ascending}, want: []int64{2, 3, 4, 1}},
		{name: "numeric descending stable ties", state: State{Column: "score", Direction: Descending}, want: []int64{2, 3, 4, 1}},
		{name: "numeric ascending stable ties", state: State{Column: "score", Direction: Ascending}, want: []int64{1, 3, 4, 2}},
		{name: "missing date sorts first", state: State{Column: "date", Direction: Ascending}, want: []int64{2, 4, 1, 3}},
		{name: "unknown column keeps order", state: State{Column: "bogus"}, want: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := testRows()
			Sort(rows, testColumns(), tt.state)
			if got := ids(rows); !equalIDs(got, tt.want) {
				t.Fatalf("got order %v, want %v", got, tt.want)
			}

			// Sorting an already sorted slice must not reorder ties.
			Sort(rows, testColumns(), tt.state)
			if got := ids(rows); !equalIDs(got, tt.want) {
				t.Fatalf("second sort changed order: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	s := State{Column: "score", Direction: Descending}

	s = s.Toggle("score", Descending)
	if s.Direction != Ascending {
		t.Fatalf("same-column toggle should flip to ascending, got %v", s.Direction)
	}

	s = s.Toggle("date", Ascending)
	if s.Column != "date" || s.Direction != Ascending {
		t.Fatalf("new column should take its default direction, got %+v", s)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	rows := testRows()

	t.Run("empty predicates are identity", func(t *testing.T) {
		got := Filter(rows,
			TextContains(func(r row) string { return r.Name }, ""),
			ExactID(func(r row) int64 { return r.ID }, 0),
		)
		if !equalIDs(ids(got), []int64{1, 2, 3, 4}) {
			t.Fatalf("empty predicates filtered rows: %v", ids(got))
		}
	})

	t.Run("substring is case-insensitive", func(t *testing.T) {
		got := Filter(rows, TextContains(func(r row) string { return r.Name }, "AL"))
		if !equalIDs(ids(got), []int64{2}) {
			t.Fatalf("got %v, want [2]", ids(got))
		}
	})

	t.Run("exact id", func(t *testing.T) {
		got := Filter(rows, ExactID(func(r row) int64 { return r.ID }, 3))
		if !equalIDs(ids(got), []int64{3}) {
			t.Fatalf("got %v, want [3]", ids(got))
		}
	})

	t.Run("predicates compose", func(t *testing.T) {
		got := Filter(rows,
			TextContains(func(r row) string { return r.Name }, "ha"),
			WhenTrue(true, func(r row) bool { return r.Score >= 20 }),
		)
		if !equalIDs(ids(got), []int64{2, 4}) {
			t.Fatalf("got %v, want [2 4]", ids(got))
		}
	})
}

func TestApplyFiltersBeforeSorting(t *testing.T) {
	t.Parallel()

	rows := testRows()
	got := Apply(rows, testColumns(), State{Column: "score", Direction: Descending},
		TextContains(func(r row) string { return r.Name }, "l"))

	if !equalIDs(ids(got), []int64{2, 4, 1}) {
		t.Fatalf("got %v, want [2 4 1]", ids(got))
	}
	if !equalIDs(ids(rows), []int64{1, 2, 3, 4}) {
		t.Fatalf("input slice was mutated: %v", ids(rows))
	}
}
