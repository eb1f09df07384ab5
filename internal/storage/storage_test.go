package storage

import (
	"testing"
	"time"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/shopspring/decimal"
)

func TestNewRunRecord(t *testing.T) {
	generated := time.Date(2026, time.May, 2, 8, 0, 0, 0, time.UTC)
	report := &domain.SimulationReport{
		Parameters: domain.SimulationParameters{AssetMix: domain.AssetMixBonds, StartValue: 100, TrialCount: 3},
		Seed:       17,
		Summary: domain.SummaryStatistics{
			BankruptcyProbabilityPercent: decimal.RequireFromString("33.3"),
			MeanOutcome:                  decimal.RequireFromString("66.67"),
			MinOutcome:                   0,
			MaxOutcome:                   120,
		},
		GeneratedAt: generated,
	}

	run := NewRunRecord(report)
	if run.ID != 0 {
		t.Fatalf("id = %d, want unassigned", run.ID)
	}
	if !run.CreatedAt.Equal(generated) {
		t.Fatalf("created_at = %s", run.CreatedAt)
	}
	if run.Parameters != report.Parameters || run.Seed != 17 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if !run.BankruptcyProbabilityPercent.Equal(decimal.RequireFromString("33.3")) || !run.MeanOutcome.Equal(decimal.RequireFromString("66.67")) {
		t.Fatalf("unexpected summary: %s %s", run.BankruptcyProbabilityPercent, run.MeanOutcome)
	}
	if run.MaxOutcome != 120 {
		t.Fatalf("max = %d", run.MaxOutcome)
	}
}
