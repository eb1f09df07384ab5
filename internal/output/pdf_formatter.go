package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 15.0
	pdfPageWidth    = 210.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfChartHeight  = 60.0
)

// PDFFormatter renders a one-page summary with the outcome bar chart.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetTitle("Retirement Monte Carlo Summary", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 10, "Retirement Monte Carlo Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	generated := report.GeneratedAt
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated: %s    Seed: %d", generated.Format("2 January 2006 15:04"), report.Seed), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	params := report.Parameters
	pdfTable(pdf, "Inputs", [][2]string{
		{"Asset mix", params.AssetMix.Description()},
		{"Starting value", FormatWholeCurrency(params.StartValue)},
		{"Annual withdrawal (today's $, pre-tax)", FormatWholeCurrency(params.AnnualWithdrawal)},
		{"Years in retirement (min / likely / max)", fmt.Sprintf("%d / %d / %d", params.MinYears, params.MostLikelyYears, params.MaxYears)},
		{"Simulated lives", intToString(report.Summary.TrialCount)},
	})
	pdf.Ln(6)

	s := report.Summary
	pdfTable(pdf, "Results", [][2]string{
		{"Probability of running out of money", FormatPercentage(s.BankruptcyProbabilityPercent)},
		{"Average outcome", FormatCurrency(s.MeanOutcome)},
		{"Lowest / highest outcome", FormatWholeCurrency(s.MinOutcome) + " / " + FormatWholeCurrency(s.MaxOutcome)},
		{"Median outcome", FormatWholeCurrency(s.Percentiles.P50)},
		{"10th / 90th percentile", FormatWholeCurrency(s.Percentiles.P10) + " / " + FormatWholeCurrency(s.Percentiles.P90)},
		{"Average retirement length", s.AverageDuration.StringFixed(2) + " years"},
	})
	pdf.Ln(8)

	pdfOutcomeChart(pdf, report.Outcomes.FirstN(calculation.PlotLimit))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pdfTable(pdf *fpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, title, "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)
	labelWidth := pdfContentWidth * 0.6
	for _, row := range rows {
		pdf.CellFormat(labelWidth, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfContentWidth-labelWidth, 7, row[1], "1", 1, "R", false, 0, "")
	}
}

// pdfOutcomeChart draws one bar per simulated life, scaled to the largest outcome.
func pdfOutcomeChart(pdf *fpdf.Fpdf, values []int64) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, "$ Remaining per Simulated Life", "", 1, "L", false, 0, "")

	top := pdf.GetY() + 2
	bottom := top + pdfChartHeight
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(pdfMarginLeft, bottom, pdfMarginLeft+pdfContentWidth, bottom)
	pdf.Line(pdfMarginLeft, top, pdfMarginLeft, bottom)

	var peak int64
	for _, v := range values {
		peak = max(peak, v)
	}
	if len(values) > 0 && peak > 0 {
		pdf.SetFillColor(0, 0, 0)
		barWidth := pdfContentWidth / float64(len(values))
		for i, v := range values {
			if v <= 0 {
				continue
			}
			h := pdfChartHeight * float64(v) / float64(peak)
			pdf.Rect(pdfMarginLeft+float64(i)*barWidth, bottom-h, barWidth, h, "F")
		}
	}

	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(80, 80, 80)
	pdf.SetXY(pdfMarginLeft, top-1)
	pdf.CellFormat(pdfContentWidth, 4, FormatWholeCurrency(peak), "", 0, "L", false, 0, "")
	pdf.SetXY(pdfMarginLeft, bottom+1)
	pdf.CellFormat(pdfContentWidth, 5, fmt.Sprintf("Simulated Lives (first %d)", len(values)), "", 1, "C", false, 0, "")
}
