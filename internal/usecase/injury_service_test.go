package usecase

import (
	"testing"
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/injury"
	"github.com/nathanpradana/sportsdash/internal/infrastructure/repository/memory"
)

func newSeededInjuryService() *InjuryService {
	seed := memory.Seed()

	service := NewInjuryService(
		memory.NewInjuryRepository(seed.Injuries, seed.PlayerTeams()),
		memory.NewPlayerRepository(seed.Players),
		memory.NewTeamRepository(seed.Teams),
	)
	// Eleven days past the seeded kickoff, so the active spell that
	// started a day after kickoff has run for exactly ten days.
	service.now = func() time.Time {
		return time.Date(2025, time.September, 18, 13, 0, 0, 0, time.UTC)
	}

	return service
}

func TestInjuryService_Report(t *testing.T) {
	service := newSeededInjuryService()

	report, err := service.Report(t.Context(), injury.Filter{})
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}

	// Moderate outranks Minor, so the active spell leads.
	first := report.Rows[0]
	if first.Injury.Severity != injury.SeverityModerate {
		t.Fatalf("unexpected first severity: %q", first.Injury.Severity)
	}
	if first.PlayerName != "Elijah Brooks" || first.TeamName != "Ironclads" {
		t.Fatalf("unexpected first row: %+v", first)
	}
	// Still out, so the duration is the days elapsed so far.
	if !first.HasDuration || first.DurationDays != 10 {
		t.Fatalf("unexpected duration for active spell: %+v", first)
	}

	second := report.Rows[1]
	if !second.HasDuration || second.DurationDays != 21 {
		t.Fatalf("unexpected duration for ended spell: %+v", second)
	}

	summary := report.Summary
	if summary.Total != 2 || summary.Active != 1 || summary.CriticalOrSevere != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.AvgDurationDays != 15.5 {
		t.Fatalf("unexpected avg duration: %v", summary.AvgDurationDays)
	}
}

func TestInjuryService_Report_SeverityMatchesSubstring(t *testing.T) {
	service := newSeededInjuryService()

	report, err := service.Report(t.Context(), injury.Filter{Severity: "mod"})
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 row for partial severity, got %d", len(report.Rows))
	}
	if report.Rows[0].Injury.Severity != injury.SeverityModerate {
		t.Fatalf("unexpected severity: %q", report.Rows[0].Injury.Severity)
	}
}

func TestInjuryService_Report_ActiveOnly(t *testing.T) {
	service := newSeededInjuryService()

	report, err := service.Report(t.Context(), injury.Filter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 active row, got %d", len(report.Rows))
	}
	if !report.Rows[0].Injury.Active() {
		t.Fatalf("expected active spell, got %+v", report.Rows[0].Injury)
	}
}
