package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParameters() SimulationParameters {
	return SimulationParameters{
		AssetMix:         AssetMixSBCBlend,
		StartValue:       2000000,
		AnnualWithdrawal: 80000,
		MinYears:         10,
		MostLikelyYears:  25,
		MaxYears:         40,
		TrialCount:       1000,
	}
}

func TestSimulationParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *SimulationParameters)
		wantErr error
	}{
		{"valid", func(p *SimulationParameters) {}, nil},
		{"smallest valid window", func(p *SimulationParameters) { p.MinYears, p.MostLikelyYears, p.MaxYears = 1, 2, 3 }, nil},
		{"max years at cap", func(p *SimulationParameters) { p.MaxYears = 99 }, nil},
		{"zero start value", func(p *SimulationParameters) { p.StartValue = 0 }, nil},
		{"min equals most likely", func(p *SimulationParameters) { p.MinYears, p.MostLikelyYears = 25, 25 }, ErrInvalidParameters},
		{"most likely equals max", func(p *SimulationParameters) { p.MostLikelyYears = 40 }, ErrInvalidParameters},
		{"min above most likely", func(p *SimulationParameters) { p.MinYears = 30 }, ErrInvalidParameters},
		{"max years above cap", func(p *SimulationParameters) { p.MaxYears = 100 }, ErrInvalidParameters},
		{"zero min years", func(p *SimulationParameters) { p.MinYears = 0 }, ErrInvalidParameters},
		{"negative start value", func(p *SimulationParameters) { p.StartValue = -1 }, ErrInvalidParameters},
		{"negative withdrawal", func(p *SimulationParameters) { p.AnnualWithdrawal = -5 }, ErrInvalidParameters},
		{"zero trials", func(p *SimulationParameters) { p.TrialCount = 0 }, ErrInvalidParameters},
		{"unknown mix", func(p *SimulationParameters) { p.AssetMix = "gold" }, ErrUnknownAssetMix},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validParameters()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestParseAssetMix(t *testing.T) {
	for _, key := range []string{"bonds", "stocks", "sb_blend", "sbc_blend", " Stocks "} {
		mix, err := ParseAssetMix(key)
		require.NoError(t, err, key)
		assert.True(t, mix.Valid())
	}

	_, err := ParseAssetMix("crypto")
	assert.ErrorIs(t, err, ErrUnknownAssetMix)
	assert.Contains(t, err.Error(), "crypto")
}

func TestAssetMixDescription(t *testing.T) {
	assert.Equal(t, "S&P 500 stocks", AssetMixStocks.Description())
	assert.Equal(t, "unknown", AssetMix("unknown").Description())
	assert.Len(t, AllAssetMixes, 4)
}

func TestOutcomeSetFirstN(t *testing.T) {
	set := OutcomeSet{Outcomes: []TrialOutcome{
		{Index: 0, Wealth: 10},
		{Index: 1, Wealth: 0, Bankrupt: true},
		{Index: 2, Wealth: 30},
	}, BankruptCount: 1}

	assert.Equal(t, []int64{10, 0}, set.FirstN(2))
	assert.Equal(t, []int64{10, 0, 30}, set.FirstN(3000))
	assert.Empty(t, set.FirstN(-1))
	assert.Equal(t, set.FirstN(3), set.Values())
	assert.Equal(t, 3, set.Len())
}
