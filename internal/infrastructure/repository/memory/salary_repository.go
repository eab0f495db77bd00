package memory

import (
	"context"
	"sync"

	"github.com/nathanpradana/sportsdash/internal/domain/salary"
)

type SalaryRepository struct {
	mu       sync.RWMutex
	salaries []salary.Salary
	nextID   int64
}

func NewSalaryRepository(salaries []salary.Salary) *SalaryRepository {
	r := &SalaryRepository{nextID: 1}
	for _, s := range salaries {
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
		r.salaries = append(r.salaries, s)
	}

	return r
}

func (r *SalaryRepository) List(_ context.Context, filter salary.Filter) ([]salary.Salary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]salary.Salary, 0, len(r.salaries))
	for _, s := range r.salaries {
		if filter.PlayerID != 0 && s.PlayerID != filter.PlayerID {
			continue
		}
		if filter.SeasonYear != 0 && s.SeasonYear != filter.SeasonYear {
			continue
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *SalaryRepository) Create(_ context.Context, s salary.Salary) (salary.Salary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.salaries = append(r.salaries, s)

	return s, nil
}
