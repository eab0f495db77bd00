package injury

import (
	"fmt"
	"time"
)

// Severity labels recognized by the injury report, from worst to mildest.
const (
	SeverityCritical = "Critical"
	SeveritySevere   = "Severe"
	SeverityModerate = "Moderate"
	SeverityMinor    = "Minor"
	SeverityMild     = "Mild"
)

// SeverityRank maps a severity label to its sort weight. Unknown labels
// rank below every recognized one.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 5
	case SeveritySevere:
		return 4
	case SeverityModerate:
		return 3
	case SeverityMinor:
		return 2
	case SeverityMild:
		return 1
	default:
		return 0
	}
}

// Injury is one recorded injury spell for a player. EndDate is nil while
// the player is still out.
type Injury struct {
	ID          int64
	PlayerID    int64
	StartDate   time.Time
	EndDate     *time.Time
	Description string
	Severity    string
}

// Active reports whether the spell has no recorded end.
func (i Injury) Active() bool {
	return i.EndDate == nil
}

// DurationDays returns the spell length in days and whether it is known.
// An active spell counts the days elapsed up to now, so the length is
// unknown only when the start date is missing.
func (i Injury) DurationDays(now time.Time) (int, bool) {
	if i.StartDate.IsZero() {
		return 0, false
	}

	end := now
	if i.EndDate != nil {
		end = *i.EndDate
	}

	days := int(end.Sub(i.StartDate).Hours() / 24)
	if days < 0 {
		days = 0
	}

	return days, true
}

func (i Injury) Validate() error {
	if i.PlayerID <= 0 {
		return fmt.Errorf("injury player id is required")
	}
	if i.StartDate.IsZero() {
		return fmt.Errorf("injury start date is required")
	}
	if i.Severity == "" {
		return fmt.Errorf("injury severity is required")
	}

	return nil
}
