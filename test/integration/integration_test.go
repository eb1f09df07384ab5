package integration

import (
	"context"
	"math/big"
	"testing"

	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/config"
	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSimulator(t *testing.T, seed int64) *calculation.MonteCarloSimulator {
	t.Helper()
	hdm := calculation.NewHistoricalDataManager("../testdata/data")
	require.NoError(t, hdm.LoadAllData())
	return calculation.NewMonteCarloSimulator(hdm, calculation.MonteCarloConfig{Seed: seed})
}

func TestEndToEndCalculation(t *testing.T) {
	// Test that we can load parameters and run a simulation
	parser := config.NewInputParser()
	params, err := parser.LoadFromFile("../testdata/params.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.AssetMixSBBlend, params.AssetMix)

	sim := loadSimulator(t, 2024)
	res, err := calculation.CalculateResults(context.Background(), sim, string(params.AssetMix),
		params.StartValue, params.AnnualWithdrawal, params.MinYears, params.MostLikelyYears, params.MaxYears, params.TrialCount)
	require.NoError(t, err)

	outcomes := res.Run.Outcomes
	require.Equal(t, params.TrialCount, outcomes.Len())
	assert.Len(t, res.PlotOutcomes, params.TrialCount)

	// Bankruptcy percentage and mean agree with the raw outcomes
	sum := new(big.Int)
	bankrupt := 0
	for _, o := range outcomes.Outcomes {
		assert.GreaterOrEqual(t, o.Duration, params.MinYears)
		assert.LessOrEqual(t, o.Duration, params.MaxYears)
		assert.GreaterOrEqual(t, o.Wealth, int64(0))
		if o.Bankrupt {
			bankrupt++
			assert.Zero(t, o.Wealth)
			assert.Less(t, o.YearsSurvived, o.Duration)
		} else {
			assert.Equal(t, o.Duration, o.YearsSurvived)
		}
		sum.Add(sum, big.NewInt(o.Wealth))
	}
	assert.Equal(t, bankrupt, outcomes.BankruptCount)

	wantPct := decimal.NewFromInt(int64(bankrupt * 100)).Div(decimal.NewFromInt(int64(params.TrialCount)))
	assert.True(t, res.BankruptcyProbabilityPercent.Sub(wantPct).Abs().LessThanOrEqual(decimal.RequireFromString("0.05")),
		"bankruptcy %s vs %s", res.BankruptcyProbabilityPercent, wantPct)

	wantMean := decimal.NewFromBigInt(sum, 0).Div(decimal.NewFromInt(int64(params.TrialCount)))
	assert.True(t, res.MeanOutcome.Sub(wantMean).Abs().LessThanOrEqual(decimal.RequireFromString("0.005")),
		"mean %s vs %s", res.MeanOutcome, wantMean)
}

func TestSameSeedSameResults(t *testing.T) {
	params := config.DefaultParameters()
	params.TrialCount = 500

	first, err := loadSimulator(t, 77).Run(params)
	require.NoError(t, err)
	second, err := loadSimulator(t, 77).Run(params)
	require.NoError(t, err)
	assert.Equal(t, first.Outcomes, second.Outcomes)
	assert.Equal(t, first.Summary, second.Summary)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	// Test valid configuration
	params, err := parser.LoadFromFile("../testdata/params.yaml")
	require.NoError(t, err)

	// Test that validation works
	assert.NoError(t, parser.ValidateParameters(params))

	params.MaxYears = 120
	assert.ErrorIs(t, parser.ValidateParameters(params), domain.ErrInvalidParameters)
}

func TestTestdataQuality(t *testing.T) {
	hdm := calculation.NewHistoricalDataManager("../testdata/data")
	require.NoError(t, hdm.LoadAllData())

	issues, err := hdm.ValidateDataQuality()
	require.NoError(t, err)
	assert.Empty(t, issues)
}
