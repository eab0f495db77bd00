// Package format renders dashboard numbers and labels for display.
// Missing inputs degrade to neutral text instead of erroring.
package format

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Thousands renders n with comma group separators, e.g. 1234567 ->
// "1,234,567".
func Thousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}

	return b.String()
}

// Percent1 renders v as a percentage with one decimal place.
func Percent1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// CalendarDate renders t as a calendar date, or "N/A" when unset.
func CalendarDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}

	return t.Format("Jan 2, 2006")
}

// TitleCase turns a snake_case stat key into a display label, e.g.
// "passing_yards" -> "Passing Yards".
func TitleCase(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}

	return strings.Join(parts, " ")
}

// Ordinal renders a rank as its ordinal label, e.g. 1 -> "1st", 22 ->
// "22nd". Non-positive ranks render plainly.
func Ordinal(n int) string {
	s := strconv.Itoa(n)
	if n <= 0 {
		return s
	}
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return s + "th"
	case n%10 == 1:
		return s + "st"
	case n%10 == 2:
		return s + "nd"
	case n%10 == 3:
		return s + "rd"
	default:
		return s + "th"
	}
}
