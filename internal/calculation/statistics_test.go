package calculation

import (
	"math"
	"math/big"
	"testing"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarize(t *testing.T) {
	set := domain.OutcomeSet{
		Outcomes: []domain.TrialOutcome{
			{Index: 0, Duration: 2, Bankrupt: true},
			{Index: 1, Duration: 2, Wealth: 801},
			{Index: 2, Duration: 3, Wealth: 1500},
			{Index: 3, Duration: 1, Bankrupt: true},
			{Index: 4, Duration: 2, Wealth: 200},
		},
		BankruptCount: 2,
	}

	s := Summarize(set)
	assert.True(t, s.BankruptcyProbabilityPercent.Equal(dec("40")), "got %s", s.BankruptcyProbabilityPercent)
	assert.True(t, s.MeanOutcome.Equal(dec("500.2")), "got %s", s.MeanOutcome)
	assert.Equal(t, int64(0), s.MinOutcome)
	assert.Equal(t, int64(1500), s.MaxOutcome)
	assert.Equal(t, 5, s.TrialCount)
	assert.Equal(t, domain.PercentileRanges{P10: 0, P25: 0, P50: 200, P75: 801, P90: 1500}, s.Percentiles)
	assert.True(t, s.AverageDuration.Equal(dec("2")))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(domain.OutcomeSet{})
	assert.True(t, s.BankruptcyProbabilityPercent.IsZero())
	assert.True(t, s.MeanOutcome.IsZero())
	assert.True(t, s.AverageDuration.IsZero())
	assert.Equal(t, 0, s.TrialCount)
}

func TestBankruptcyPercent(t *testing.T) {
	cases := []struct {
		bankrupt, total int
		want            string
	}{
		{0, 10, "0"},
		{10, 10, "100"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{1, 8, "12.5"},
		{1, 16, "6.2"},  // exact tie, even digit
		{3, 16, "18.8"}, // exact tie, even digit
		{1, 0, "0"},
	}
	for _, c := range cases {
		got := BankruptcyPercent(c.bankrupt, c.total)
		assert.True(t, got.Equal(dec(c.want)), "%d/%d: got %s want %s", c.bankrupt, c.total, got, c.want)
	}
}

func TestMeanOutcome(t *testing.T) {
	cases := []struct {
		sum  *big.Int
		n    int
		want string
	}{
		{big.NewInt(3), 2, "1.5"},
		{big.NewInt(1), 3, "0.33"},
		{big.NewInt(5), 8, "0.62"}, // 0.625 ties to even
		{big.NewInt(7), 8, "0.88"}, // 0.875 ties to even
		{big.NewInt(0), 4, "0"},
		{big.NewInt(4005), 5, "801"},
	}
	for _, c := range cases {
		got := MeanOutcome(c.sum, c.n)
		assert.True(t, got.Equal(dec(c.want)), "%s/%d: got %s want %s", c.sum, c.n, got, c.want)
	}

	assert.True(t, MeanOutcome(big.NewInt(10), 0).IsZero())
}

func TestSummarizeLargeOutcomesDoNotOverflow(t *testing.T) {
	set := domain.OutcomeSet{Outcomes: []domain.TrialOutcome{
		{Wealth: math.MaxInt64, Duration: 1},
		{Wealth: math.MaxInt64, Duration: 1},
	}}
	s := Summarize(set)
	// The mean is rounded through float64, which represents MaxInt64 as 2^63.
	assert.True(t, s.MeanOutcome.Equal(dec("9223372036854775808")), "got %s", s.MeanOutcome)
	assert.Equal(t, int64(math.MaxInt64), s.MaxOutcome)
}

func TestPercentileIndex(t *testing.T) {
	assert.Equal(t, 0, percentileIndex(1, 90))
	assert.Equal(t, 9, percentileIndex(10, 90))
	assert.Equal(t, 50, percentileIndex(100, 50))
	assert.Equal(t, 99, percentileIndex(100, 100))
}
