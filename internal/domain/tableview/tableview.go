// Package tableview models the sortable, filterable tables the dashboard
// screens render. Sorting is stable, filtering composes predicates, and a
// recomputation always filters first so sort positions never leak rows a
// filter excluded.
package tableview

import (
	"sort"
	"strings"
	"time"
)

// Kind classifies what a column's cells compare as.
type Kind int

const (
	Numeric Kind = iota
	Text
	Date
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Column is one sortable column over rows of type T. Exactly one accessor
// matching Kind must be set; the others stay nil.
type Column[T any] struct {
	Key              string
	Kind             Kind
	DefaultDirection Direction
	Number           func(T) float64
	Text             func(T) string
	Date             func(T) time.Time
}

func (c Column[T]) less(a, b T) (less, equal bool) {
	switch c.Kind {
	case Text:
		av := strings.ToLower(c.Text(a))
		bv := strings.ToLower(c.Text(b))
		return av < bv, av == bv
	case Date:
		av := c.Date(a)
		bv := c.Date(b)
		return av.Before(bv), av.Equal(bv)
	default:
		av := c.Number(a)
		bv := c.Number(b)
		return av < bv, av == bv
	}
}

// State carries the interaction state of one screen's table: the active
// sort column and direction. It persists across refetches of the same
// scope and is reset wholesale when the scope changes.
type State struct {
	Column    string
	Direction Direction
}

// Toggle applies a header click: the same column flips direction, a new
// column takes over with its default direction.
func (s State) Toggle(key string, def Direction) State {
	if s.Column == key {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return s
	}

	return State{Column: key, Direction: def}
}

// Predicate is one row filter. A predicate built from an empty value must
// accept every row.
type Predicate[T any] func(T) bool

// TextContains matches rows whose field contains query case-insensitively.
// An empty query imposes no constraint.
func TextContains[T any](field func(T) string, query string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(row T) bool {
		if query == "" {
			return true
		}
		return strings.Contains(strings.ToLower(field(row)), query)
	}
}

// ExactID matches rows whose identifier equals want. Zero imposes no
// constraint.
func ExactID[T any](field func(T) int64, want int64) Predicate[T] {
	return func(row T) bool {
		if want == 0 {
			return true
		}
		return field(row) == want
	}
}

// ExactText matches rows whose field equals want exactly. An empty want
// imposes no constraint.
func ExactText[T any](field func(T) string, want string) Predicate[T] {
	return func(row T) bool {
		if want == "" {
			return true
		}
		return field(row) == want
	}
}

// WhenTrue applies match only while enabled is set.
func WhenTrue[T any](enabled bool, match func(T) bool) Predicate[T] {
	return func(row T) bool {
		if !enabled {
			return true
		}
		return match(row)
	}
}

// Filter returns the rows every predicate accepts, preserving order. The
// input slice is never mutated.
func Filter[T any](rows []T, predicates ...Predicate[T]) []T {
	out := make([]T, 0, len(rows))
rows:
	for _, row := range rows {
		for _, p := range predicates {
			if !p(row) {
				continue rows
			}
		}
		out = append(out, row)
	}

	return out
}

// Sort orders rows by the column named in state, stably, in place. Rows
// that compare equal keep their relative order, so sorting twice in a row
// is a no-op. An unknown column leaves the rows untouched.
func Sort[T any](rows []T, columns []Column[T], state State) {
	var col Column[T]
	found := false
	for _, c := range columns {
		if c.Key == state.Column {
			col = c
			found = true
			break
		}
	}
	if !found {
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		less, equal := col.less(rows[i], rows[j])
		if equal {
			return false
		}
		if state.Direction == Descending {
			return !less
		}
		return less
	})
}

// Apply recomputes a view: filter, then sort. The result is a fresh slice.
func Apply[T any](rows []T, columns []Column[T], state State, predicates ...Predicate[T]) []T {
	out := Filter(rows, predicates...)
	Sort(out, columns, state)

	return out
}
