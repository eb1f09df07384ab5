package calculation

import (
	"context"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/shopspring/decimal"
)

// PlotLimit caps how many outcomes are returned for charting.
const PlotLimit = 3000

// CalculationResult is what callers present after a run.
type CalculationResult struct {
	BankruptcyProbabilityPercent decimal.Decimal          `json:"bankruptcy_probability_percent"`
	MeanOutcome                  decimal.Decimal          `json:"mean_outcome"`
	PlotOutcomes                 []int64                  `json:"plot_outcomes"` // first PlotLimit outcomes in trial order
	Summary                      domain.SummaryStatistics `json:"summary"`
	Seed                         int64                    `json:"seed"`
	Run                          *MonteCarloResult        `json:"-"`
}

// CalculateResults resolves the asset mix, runs the simulation and reduces it to
// the presentation triple.
func CalculateResults(ctx context.Context, sim *MonteCarloSimulator, mixKey string, startValue, withdrawal int64, minYears, mostLikely, maxYears, trials int) (*CalculationResult, error) {
	mix, err := domain.ParseAssetMix(mixKey)
	if err != nil {
		return nil, err
	}

	run, err := sim.RunContext(ctx, domain.SimulationParameters{
		AssetMix:         mix,
		StartValue:       startValue,
		AnnualWithdrawal: withdrawal,
		MinYears:         minYears,
		MostLikelyYears:  mostLikely,
		MaxYears:         maxYears,
		TrialCount:       trials,
	})
	if err != nil {
		return nil, err
	}

	return NewCalculationResult(run), nil
}

// NewCalculationResult reduces a completed run.
func NewCalculationResult(run *MonteCarloResult) *CalculationResult {
	return &CalculationResult{
		BankruptcyProbabilityPercent: run.Summary.BankruptcyProbabilityPercent,
		MeanOutcome:                  run.Summary.MeanOutcome,
		PlotOutcomes:                 run.Outcomes.FirstN(PlotLimit),
		Summary:                      run.Summary,
		Seed:                         run.Seed,
		Run:                          run,
	}
}
