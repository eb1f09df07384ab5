package output

import "github.com/rpgo/wealth-journey/internal/domain"

// HistogramBin counts outcomes in [Low, High]. The first bin holds bankrupt trials only.
type HistogramBin struct {
	Low   int64 `json:"low"`
	High  int64 `json:"high"`
	Count int   `json:"count"`
}

// Histogram buckets terminal wealth into a bankrupt bin plus up to bins
// equal-width bins spanning the surviving outcomes.
func Histogram(set domain.OutcomeSet, bins int) []HistogramBin {
	if bins < 1 {
		bins = 1
	}
	result := []HistogramBin{{Low: 0, High: 0}}

	var lo, hi int64
	first := true
	for _, o := range set.Outcomes {
		if o.Bankrupt || o.Wealth <= 0 {
			result[0].Count++
			continue
		}
		if first || o.Wealth < lo {
			lo = o.Wealth
		}
		if first || o.Wealth > hi {
			hi = o.Wealth
		}
		first = false
	}
	if first {
		return result
	}

	width := (hi - lo) / int64(bins)
	if width == 0 {
		width = 1
		bins = int(hi-lo) + 1
		if bins < 1 {
			bins = 1
		}
	}
	for i := 0; i < bins; i++ {
		low := lo + int64(i)*width
		high := low + width - 1
		if i == bins-1 {
			high = hi
		}
		result = append(result, HistogramBin{Low: low, High: high})
	}
	for _, o := range set.Outcomes {
		if o.Bankrupt || o.Wealth <= 0 {
			continue
		}
		idx := int((o.Wealth - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		result[idx+1].Count++
	}
	return result
}
