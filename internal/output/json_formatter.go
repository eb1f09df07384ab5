package output

import (
	"github.com/goccy/go-json"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON. Per-trial
// outcomes are limited to the charted prefix.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

type jsonReport struct {
	Parameters   domain.SimulationParameters `json:"parameters"`
	Seed         int64                       `json:"seed"`
	GeneratedAt  string                      `json:"generated_at"`
	Summary      domain.SummaryStatistics    `json:"summary"`
	PlotOutcomes []int64                     `json:"plot_outcomes"`
	Histogram    []HistogramBin              `json:"histogram"`
}

func (j JSONFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	out := jsonReport{
		Parameters:   report.Parameters,
		Seed:         report.Seed,
		GeneratedAt:  report.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Summary:      report.Summary,
		PlotOutcomes: report.Outcomes.FirstN(calculation.PlotLimit),
		Histogram:    Histogram(report.Outcomes, 20),
	}
	return json.MarshalIndent(out, "", "  ")
}
