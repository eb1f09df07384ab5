package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// MaxRetirementYears caps the longest retirement duration a caller may request.
const MaxRetirementYears = 99

// SimulationParameters describes one Monte Carlo request.
type SimulationParameters struct {
	AssetMix         AssetMix `yaml:"asset_mix" json:"asset_mix"`
	StartValue       int64    `yaml:"start_value" json:"start_value"`
	AnnualWithdrawal int64    `yaml:"annual_withdrawal" json:"annual_withdrawal"` // today's dollars, pre-tax
	MinYears         int      `yaml:"min_years" json:"min_years"`
	MostLikelyYears  int      `yaml:"most_likely_years" json:"most_likely_years"`
	MaxYears         int      `yaml:"max_years" json:"max_years"`
	TrialCount       int      `yaml:"trial_count" json:"trial_count"`
}

// Validate enforces the parameter invariants. Every failure wraps ErrInvalidParameters
// except an unrecognised asset mix, which wraps ErrUnknownAssetMix.
func (p SimulationParameters) Validate() error {
	if !p.AssetMix.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAssetMix, string(p.AssetMix))
	}
	if p.StartValue < 0 {
		return fmt.Errorf("%w: start value cannot be negative", ErrInvalidParameters)
	}
	if p.AnnualWithdrawal < 0 {
		return fmt.Errorf("%w: annual withdrawal cannot be negative", ErrInvalidParameters)
	}
	if p.MinYears < 1 {
		return fmt.Errorf("%w: minimum years must be at least 1", ErrInvalidParameters)
	}
	if p.MinYears >= p.MostLikelyYears {
		return fmt.Errorf("%w: minimum years (%d) must be less than most likely years (%d)", ErrInvalidParameters, p.MinYears, p.MostLikelyYears)
	}
	if p.MostLikelyYears >= p.MaxYears {
		return fmt.Errorf("%w: most likely years (%d) must be less than maximum years (%d)", ErrInvalidParameters, p.MostLikelyYears, p.MaxYears)
	}
	if p.MaxYears > MaxRetirementYears {
		return fmt.Errorf("%w: maximum years cannot exceed %d", ErrInvalidParameters, MaxRetirementYears)
	}
	if p.TrialCount < 1 {
		return fmt.Errorf("%w: trial count must be positive", ErrInvalidParameters)
	}
	return nil
}

// TrialOutcome is the reduced result of one simulated retirement.
type TrialOutcome struct {
	Index         int   `json:"index"`
	StartYear     int   `json:"start_year"` // offset into the historical series
	Duration      int   `json:"duration"`
	YearsSurvived int   `json:"years_survived"`
	Wealth        int64 `json:"wealth"` // 0 when bankrupt
	Bankrupt      bool  `json:"bankrupt"`
}

// OutcomeSet holds every trial outcome in creation order.
type OutcomeSet struct {
	Outcomes      []TrialOutcome `json:"outcomes"`
	BankruptCount int            `json:"bankrupt_count"`
}

// Len returns the number of trials.
func (o OutcomeSet) Len() int { return len(o.Outcomes) }

// Values returns terminal wealth per trial, in trial order.
func (o OutcomeSet) Values() []int64 {
	values := make([]int64, len(o.Outcomes))
	for i, t := range o.Outcomes {
		values[i] = t.Wealth
	}
	return values
}

// FirstN returns terminal wealth for the first n trials (all of them if n exceeds the count).
func (o OutcomeSet) FirstN(n int) []int64 {
	if n < 0 {
		n = 0
	}
	if n > len(o.Outcomes) {
		n = len(o.Outcomes)
	}
	values := make([]int64, n)
	for i := 0; i < n; i++ {
		values[i] = o.Outcomes[i].Wealth
	}
	return values
}

// PercentileRanges summarises the outcome distribution.
type PercentileRanges struct {
	P10 int64 `json:"p10"`
	P25 int64 `json:"p25"`
	P50 int64 `json:"p50"`
	P75 int64 `json:"p75"`
	P90 int64 `json:"p90"`
}

// SummaryStatistics is derived entirely from an OutcomeSet.
type SummaryStatistics struct {
	BankruptcyProbabilityPercent decimal.Decimal  `json:"bankruptcy_probability_percent"`
	MeanOutcome                  decimal.Decimal  `json:"mean_outcome"`
	MinOutcome                   int64            `json:"min_outcome"`
	MaxOutcome                   int64            `json:"max_outcome"`
	TrialCount                   int              `json:"trial_count"`
	Percentiles                  PercentileRanges `json:"percentiles"`
	AverageDuration              decimal.Decimal  `json:"average_duration"`
}

// SimulationReport bundles a completed run for formatters and storage.
type SimulationReport struct {
	Parameters  SimulationParameters `json:"parameters"`
	Seed        int64                `json:"seed"`
	Summary     SummaryStatistics    `json:"summary"`
	Outcomes    OutcomeSet           `json:"outcomes"`
	GeneratedAt time.Time            `json:"generated_at"`
}
