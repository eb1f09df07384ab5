package calculation

import (
	"context"
	"testing"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBreakEvenWithdrawal(t *testing.T) {
	sim := NewMonteCarloSimulator(testHistoricalData(t), MonteCarloConfig{Seed: 21, Workers: 2})
	params := testParameters()
	target := decimal.NewFromInt(10)

	res, err := sim.FindBreakEvenWithdrawal(context.Background(), params, target)
	require.NoError(t, err)
	assert.Equal(t, int64(21), res.Seed)
	assert.Greater(t, res.Withdrawal, int64(0))
	assert.Less(t, res.Withdrawal, params.StartValue)
	assert.True(t, res.BankruptcyProbabilityPercent.LessThanOrEqual(target))
	assert.LessOrEqual(t, res.Iterations, breakEvenMaxIterations+2)

	// the found withdrawal meets the target and one tolerance step more does not
	params.AnnualWithdrawal = res.Withdrawal
	at, err := sim.Run(params)
	require.NoError(t, err)
	assert.True(t, at.Summary.BankruptcyProbabilityPercent.Equal(res.BankruptcyProbabilityPercent))

	params.AnnualWithdrawal = res.Withdrawal + BreakEvenTolerance
	above, err := sim.Run(params)
	require.NoError(t, err)
	assert.True(t, above.Summary.BankruptcyProbabilityPercent.GreaterThan(target),
		"withdrawal %d gives %s%%", params.AnnualWithdrawal, above.Summary.BankruptcyProbabilityPercent)
}

func TestFindBreakEvenWithdrawalBounds(t *testing.T) {
	sim := NewMonteCarloSimulator(testHistoricalData(t), MonteCarloConfig{Seed: 4})
	params := testParameters()

	// a 100% target accepts withdrawing everything
	res, err := sim.FindBreakEvenWithdrawal(context.Background(), params, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, params.StartValue, res.Withdrawal)
	assert.Equal(t, 2, res.Iterations)

	// an empty portfolio is bankrupt even with no withdrawal
	params.StartValue = 0
	res, err = sim.FindBreakEvenWithdrawal(context.Background(), params, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Withdrawal)
	assert.True(t, res.BankruptcyProbabilityPercent.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, res.Iterations)
}

func TestFindBreakEvenWithdrawalRejectsBadInput(t *testing.T) {
	sim := NewMonteCarloSimulator(testHistoricalData(t), MonteCarloConfig{Seed: 4})

	_, err := sim.FindBreakEvenWithdrawal(context.Background(), testParameters(), decimal.NewFromInt(101))
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)

	params := testParameters()
	params.TrialCount = 0
	_, err = sim.FindBreakEvenWithdrawal(context.Background(), params, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.FindBreakEvenWithdrawal(ctx, testParameters(), decimal.NewFromInt(5))
	assert.ErrorIs(t, err, context.Canceled)
}
