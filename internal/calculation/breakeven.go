package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenTolerance is the withdrawal precision, in dollars, of the break-even search.
const BreakEvenTolerance int64 = 1000

const breakEvenMaxIterations = 50

// BreakEvenResult is the largest annual withdrawal whose bankruptcy probability
// stays at or below a target.
type BreakEvenResult struct {
	TargetPercent                decimal.Decimal `json:"target_percent"`
	Withdrawal                   int64           `json:"withdrawal"`
	BankruptcyProbabilityPercent decimal.Decimal `json:"bankruptcy_probability_percent"`
	MeanOutcome                  decimal.Decimal `json:"mean_outcome"`
	Seed                         int64           `json:"seed"`
	Iterations                   int             `json:"iterations"`
}

// FindBreakEvenWithdrawal binary searches the annual withdrawal between zero and
// the starting value. Every attempt reuses one seed, so each trial replays the same
// window and bankruptcy can only grow with the withdrawal. params.AnnualWithdrawal
// is ignored.
func (mcs *MonteCarloSimulator) FindBreakEvenWithdrawal(ctx context.Context, params domain.SimulationParameters, targetPercent decimal.Decimal) (*BreakEvenResult, error) {
	if targetPercent.IsNegative() || targetPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: target bankruptcy percent must be between 0 and 100, got %s", domain.ErrInvalidParameters, targetPercent)
	}
	params.AnnualWithdrawal = 0
	if err := params.Validate(); err != nil {
		return nil, err
	}

	sim := mcs.WithSeed(resolveSeed(mcs.Seed))
	result := &BreakEvenResult{TargetPercent: targetPercent, Seed: sim.Seed}

	attempt := func(withdrawal int64) (*MonteCarloResult, bool, error) {
		params.AnnualWithdrawal = withdrawal
		run, err := sim.RunContext(ctx, params)
		if err != nil {
			return nil, false, err
		}
		result.Iterations++
		return run, run.Summary.BankruptcyProbabilityPercent.LessThanOrEqual(targetPercent), nil
	}
	accept := func(withdrawal int64, run *MonteCarloResult) {
		result.Withdrawal = withdrawal
		result.BankruptcyProbabilityPercent = run.Summary.BankruptcyProbabilityPercent
		result.MeanOutcome = run.Summary.MeanOutcome
	}

	// With nothing withdrawn the floor itself may already miss the target.
	low, high := int64(0), params.StartValue
	run, ok, err := attempt(low)
	if err != nil {
		return nil, err
	}
	accept(low, run)
	if !ok {
		return result, nil
	}

	run, ok, err = attempt(high)
	if err != nil {
		return nil, err
	}
	if ok {
		accept(high, run)
		return result, nil
	}

	for i := 0; i < breakEvenMaxIterations && high-low > BreakEvenTolerance; i++ {
		mid := low + (high-low)/2
		run, ok, err := attempt(mid)
		if err != nil {
			return nil, err
		}
		if ok {
			low = mid
			accept(mid, run)
		} else {
			high = mid
		}
	}

	if sim.Logger != nil {
		sim.Logger.Infof("break-even withdrawal for %s at %s%%: %d after %d runs", params.AssetMix, targetPercent, result.Withdrawal, result.Iterations)
	}
	return result, nil
}
