// Package storage defines persistence contracts for simulation run history.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrNotFound indicates a requested run record is missing.
var ErrNotFound = errors.New("record not found")

// RunRecord stores the inputs and headline results of one completed simulation.
type RunRecord struct {
	ID                           int64                       `json:"id"`
	CreatedAt                    time.Time                   `json:"created_at"`
	Parameters                   domain.SimulationParameters `json:"parameters"`
	Seed                         int64                       `json:"seed"`
	BankruptcyProbabilityPercent decimal.Decimal             `json:"bankruptcy_probability_percent"`
	MeanOutcome                  decimal.Decimal             `json:"mean_outcome"`
	MinOutcome                   int64                       `json:"min_outcome"`
	MaxOutcome                   int64                       `json:"max_outcome"`
}

// NewRunRecord captures a report for persistence.
func NewRunRecord(report *domain.SimulationReport) RunRecord {
	return RunRecord{
		CreatedAt:                    report.GeneratedAt,
		Parameters:                   report.Parameters,
		Seed:                         report.Seed,
		BankruptcyProbabilityPercent: report.Summary.BankruptcyProbabilityPercent,
		MeanOutcome:                  report.Summary.MeanOutcome,
		MinOutcome:                   report.Summary.MinOutcome,
		MaxOutcome:                   report.Summary.MaxOutcome,
	}
}

// RunStore persists simulation run history.
type RunStore interface {
	RecordRun(ctx context.Context, run RunRecord) (int64, error)
	GetRun(ctx context.Context, id int64) (RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
	CountRuns(ctx context.Context) (int64, error)
}
