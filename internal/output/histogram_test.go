package output

import (
	"testing"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomes(values ...int64) domain.OutcomeSet {
	set := domain.OutcomeSet{}
	for i, v := range values {
		o := domain.TrialOutcome{Index: i, Wealth: v, Bankrupt: v == 0}
		if o.Bankrupt {
			set.BankruptCount++
		}
		set.Outcomes = append(set.Outcomes, o)
	}
	return set
}

func TestHistogram(t *testing.T) {
	bins := Histogram(outcomes(0, 100, 150, 199, 300, 0), 2)
	require.Len(t, bins, 3)
	assert.Equal(t, HistogramBin{Low: 0, High: 0, Count: 2}, bins[0])
	assert.Equal(t, HistogramBin{Low: 100, High: 199, Count: 3}, bins[1])
	assert.Equal(t, HistogramBin{Low: 200, High: 300, Count: 1}, bins[2])

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 6, total)
}

func TestHistogramEdgeCases(t *testing.T) {
	allBankrupt := Histogram(outcomes(0, 0, 0), 5)
	require.Len(t, allBankrupt, 1)
	assert.Equal(t, 3, allBankrupt[0].Count)

	same := Histogram(outcomes(500, 500), 10)
	require.Len(t, same, 2)
	assert.Equal(t, HistogramBin{Low: 500, High: 500, Count: 2}, same[1])

	narrow := Histogram(outcomes(10, 12), 10)
	require.Len(t, narrow, 4)
	assert.Equal(t, 1, narrow[1].Count)
	assert.Equal(t, 0, narrow[2].Count)
	assert.Equal(t, 1, narrow[3].Count)

	assert.Len(t, Histogram(domain.OutcomeSet{}, 0), 1)
}
