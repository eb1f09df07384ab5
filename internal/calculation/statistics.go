package calculation

import (
	"math/big"
	"slices"

	"github.com/rpgo/wealth-journey/internal/domain"
	pkgdecimal "github.com/rpgo/wealth-journey/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Summarize derives summary statistics from an outcome set. An empty set
// yields all-zero statistics.
func Summarize(set domain.OutcomeSet) domain.SummaryStatistics {
	n := len(set.Outcomes)
	if n == 0 {
		return domain.SummaryStatistics{
			BankruptcyProbabilityPercent: decimal.Zero,
			MeanOutcome:                  decimal.Zero,
			AverageDuration:              decimal.Zero,
		}
	}

	values := set.Values()
	sum := new(big.Int)
	var durations int64
	for i, v := range values {
		sum.Add(sum, big.NewInt(v))
		durations += int64(set.Outcomes[i].Duration)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return domain.SummaryStatistics{
		BankruptcyProbabilityPercent: BankruptcyPercent(set.BankruptCount, n),
		MeanOutcome:                  MeanOutcome(sum, n),
		MinOutcome:                   sorted[0],
		MaxOutcome:                   sorted[n-1],
		TrialCount:                   n,
		Percentiles: domain.PercentileRanges{
			P10: sorted[percentileIndex(n, 10)],
			P25: sorted[percentileIndex(n, 25)],
			P50: sorted[percentileIndex(n, 50)],
			P75: sorted[percentileIndex(n, 75)],
			P90: sorted[percentileIndex(n, 90)],
		},
		AverageDuration: decimal.NewFromInt(durations).Div(decimal.NewFromInt(int64(n))).RoundBank(2),
	}
}

// BankruptcyPercent returns 100*bankrupt/total rounded half-even to one place.
func BankruptcyPercent(bankrupt, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return pkgdecimal.RoundHalfEven(float64(100*bankrupt)/float64(total), 1)
}

// MeanOutcome returns sum/n, correctly rounded to a float64 first and then
// rounded half-even to two places.
func MeanOutcome(sum *big.Int, n int) decimal.Decimal {
	if n <= 0 {
		return decimal.Zero
	}
	mean, _ := new(big.Rat).SetFrac(sum, big.NewInt(int64(n))).Float64()
	return pkgdecimal.RoundHalfEven(mean, 2)
}

func percentileIndex(n, p int) int {
	idx := n * p / 100
	if idx >= n {
		idx = n - 1
	}
	return idx
}
