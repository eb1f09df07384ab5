package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/wealth-journey/internal/domain"
)

// CSVDetailedExporter writes one row per trial in trial order.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(report *domain.SimulationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Trial", "StartYear", "Duration", "YearsSurvived", "Outcome", "Bankrupt"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, o := range report.Outcomes.Outcomes {
		row := []string{
			intToString(o.Index),
			intToString(o.StartYear),
			intToString(o.Duration),
			intToString(o.YearsSurvived),
			int64ToString(o.Wealth),
			boolToString(o.Bankrupt),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
