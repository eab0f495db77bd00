package salary

import "fmt"

// Salary is one season's compensation record for a player. TotalComp is
// stored, not derived, so historical corrections can diverge from
// base plus bonuses.
type Salary struct {
	ID         int64
	PlayerID   int64
	SeasonYear int
	BaseSalary float64
	Bonuses    float64
	CapHit     float64
	TotalComp  float64
}

func (s Salary) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("salary player id is required")
	}
	if s.SeasonYear <= 0 {
		return fmt.Errorf("salary season year is required")
	}
	if s.BaseSalary < 0 || s.Bonuses < 0 || s.CapHit < 0 || s.TotalComp < 0 {
		return fmt.Errorf("salary amounts cannot be negative")
	}

	return nil
}
