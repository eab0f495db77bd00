package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// InjuryReportRow is one report line: the spell decorated with the
// injured player and their team.
type InjuryReportRow struct {
	Injury       injury.Injury
	PlayerName   string
	Position     player.Position
	TeamName     string
	DurationDays int
	HasDuration  bool
}

// InjuryReport is the full report: rows worst first plus the summary box.
type InjuryReport struct {
	Rows    []InjuryReportRow
	Summary InjurySummary
}

// InjuryService serves the injury report screen.
type InjuryService struct {
	injuryRepo injury.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	now        func() time.Time
}

func NewInjuryService(injuryRepo injury.Repository, playerRepo player.Repository, teamRepo team.Repository) *InjuryService {
	return &InjuryService{
		injuryRepo: injuryRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		now:        time.Now,
	}
}

func (s *InjuryService) Report(ctx context.Context, filter injury.Filter) (InjuryReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.InjuryService.Report")
	defer span.End()

	spells, err := s.injuryRepo.List(ctx, filter)
	if err != nil {
		return InjuryReport{}, fmt.Errorf("list injuries: %w", err)
	}

	SortInjuriesBySeverity(spells)

	players, err := s.playerRepo.List(ctx, player.Filter{})
	if err != nil {
		return InjuryReport{}, fmt.Errorf("list players: %w", err)
	}
	teams, err := s.teamRepo.List(ctx, team.Filter{})
	if err != nil {
		return InjuryReport{}, fmt.Errorf("list teams: %w", err)
	}

	playerByID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
	}
	teamNames := make(map[int64]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	now := s.now()
	report := InjuryReport{
		Rows:    make([]InjuryReportRow, 0, len(spells)),
		Summary: ComputeInjurySummary(spells, now),
	}
	for _, spell := range spells {
		row := InjuryReportRow{Injury: spell}
		if p, ok := playerByID[spell.PlayerID]; ok {
			row.PlayerName = p.Name
			row.Position = p.Position
			row.TeamName = teamNames[p.TeamID]
		}
		row.DurationDays, row.HasDuration = spell.DurationDays(now)
		report.Rows = append(report.Rows, row)
	}

	return report, nil
}
