package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/wealth-journey/internal/domain"
)

const histogramWidth = 40

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	p := report.Parameters
	s := report.Summary

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT MONTE CARLO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Asset Mix:          %s (%s)\n", p.AssetMix.Description(), p.AssetMix)
	fmt.Fprintf(&buf, "Starting Value:     %s\n", FormatWholeCurrency(p.StartValue))
	fmt.Fprintf(&buf, "Annual Withdrawal:  %s (today's dollars, pre-tax)\n", FormatWholeCurrency(p.AnnualWithdrawal))
	fmt.Fprintf(&buf, "Retirement Years:   min %d / most likely %d / max %d\n", p.MinYears, p.MostLikelyYears, p.MaxYears)
	fmt.Fprintf(&buf, "Trials:             %d (seed %d)\n", s.TrialCount, report.Seed)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Probability of running out of money: %s\n", FormatPercentage(s.BankruptcyProbabilityPercent))
	fmt.Fprintf(&buf, "Average outcome:                     %s\n", FormatCurrency(s.MeanOutcome))
	fmt.Fprintf(&buf, "Outcome range:                       %s to %s\n", FormatWholeCurrency(s.MinOutcome), FormatWholeCurrency(s.MaxOutcome))
	fmt.Fprintf(&buf, "Average duration:                    %s years\n", s.AverageDuration.StringFixed(2))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Outcome Percentiles:")
	fmt.Fprintf(&buf, "  10th: %s\n", FormatWholeCurrency(s.Percentiles.P10))
	fmt.Fprintf(&buf, "  25th: %s\n", FormatWholeCurrency(s.Percentiles.P25))
	fmt.Fprintf(&buf, "  50th: %s\n", FormatWholeCurrency(s.Percentiles.P50))
	fmt.Fprintf(&buf, "  75th: %s\n", FormatWholeCurrency(s.Percentiles.P75))
	fmt.Fprintf(&buf, "  90th: %s\n", FormatWholeCurrency(s.Percentiles.P90))

	if report.Outcomes.Len() > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Outcome Distribution:")
		writeHistogram(&buf, Histogram(report.Outcomes, 10))
	}
	return buf.Bytes(), nil
}

func writeHistogram(buf *bytes.Buffer, bins []HistogramBin) {
	peak := 0
	for _, b := range bins {
		peak = max(peak, b.Count)
	}
	for i, b := range bins {
		label := "Bankrupt"
		if i > 0 {
			label = FormatWholeCurrency(b.Low) + " - " + FormatWholeCurrency(b.High)
		}
		bar := 0
		if peak > 0 {
			bar = b.Count * histogramWidth / peak
		}
		fmt.Fprintf(buf, "  %-29s |%s %d\n", label, strings.Repeat("#", bar), b.Count)
	}
}
