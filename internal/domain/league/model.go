package league

import "fmt"

// League is a competition grouping teams, e.g. a professional conference.
type League struct {
	ID    int64
	Name  string
	Level string
}

func (l League) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Level == "" {
		return fmt.Errorf("league level is required")
	}

	return nil
}
