package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with the outcome bar chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string      { return "html" }
func (h HTMLFormatter) Extension() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"whole": FormatWholeCurrency,
	"json": func(v any) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.SimulationReport
		PlotOutcomes []int64
	}{report, report.Outcomes.FirstN(calculation.PlotLimit)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
