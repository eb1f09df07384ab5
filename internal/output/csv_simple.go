package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/wealth-journey/internal/domain"
)

// CSVSummarizer writes one Metric,Value,Description row per summary statistic.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Metric", "Value", "Description"}); err != nil {
		return nil, err
	}

	p := report.Parameters
	s := report.Summary
	rows := [][]string{
		{"Asset Mix", string(p.AssetMix), p.AssetMix.Description()},
		{"Start Value", int64ToString(p.StartValue), "Starting portfolio value"},
		{"Annual Withdrawal", int64ToString(p.AnnualWithdrawal), "First-year withdrawal in today's dollars"},
		{"Min Years", intToString(p.MinYears), "Minimum retirement duration"},
		{"Most Likely Years", intToString(p.MostLikelyYears), "Most likely retirement duration"},
		{"Max Years", intToString(p.MaxYears), "Maximum retirement duration"},
		{"Trials", intToString(s.TrialCount), "Number of simulated retirements"},
		{"Seed", int64ToString(report.Seed), "Random seed for reproduction"},
		{"Bankruptcy Probability", s.BankruptcyProbabilityPercent.StringFixed(1), "Percent of trials that ran out of money"},
		{"Mean Outcome", s.MeanOutcome.StringFixed(2), "Average terminal wealth, bankrupt trials counted as zero"},
		{"Min Outcome", int64ToString(s.MinOutcome), "Lowest terminal wealth"},
		{"Max Outcome", int64ToString(s.MaxOutcome), "Highest terminal wealth"},
		{"10th Percentile", int64ToString(s.Percentiles.P10), "10th percentile of terminal wealth"},
		{"25th Percentile", int64ToString(s.Percentiles.P25), "25th percentile of terminal wealth"},
		{"50th Percentile", int64ToString(s.Percentiles.P50), "Median terminal wealth"},
		{"75th Percentile", int64ToString(s.Percentiles.P75), "75th percentile of terminal wealth"},
		{"90th Percentile", int64ToString(s.Percentiles.P90), "90th percentile of terminal wealth"},
		{"Average Duration", s.AverageDuration.StringFixed(2), "Mean sampled retirement length in years"},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
