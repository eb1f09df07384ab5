package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/internal/output"
	stddec "github.com/shopspring/decimal"
)

func sampleReport() *domain.SimulationReport {
	return &domain.SimulationReport{
		Parameters: domain.SimulationParameters{
			AssetMix: domain.AssetMixStocks, StartValue: 1000, AnnualWithdrawal: 100,
			MinYears: 1, MostLikelyYears: 2, MaxYears: 3, TrialCount: 1,
		},
		Seed: 9,
		Summary: domain.SummaryStatistics{
			BankruptcyProbabilityPercent: stddec.Zero,
			MeanOutcome:                  stddec.NewFromInt(801),
			MinOutcome:                   801,
			MaxOutcome:                   801,
			TrialCount:                   1,
			AverageDuration:              stddec.NewFromInt(2),
		},
		Outcomes: domain.OutcomeSet{Outcomes: []domain.TrialOutcome{{Duration: 2, YearsSurvived: 2, Wealth: 801}}},
	}
}

func TestGenerateReport(t *testing.T) {
	dir := t.TempDir()

	paths, err := output.GenerateReport(sampleReport(), "json", dir)
	if err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if len(paths) != 1 || filepath.Ext(paths[0]) != ".json" {
		t.Fatalf("unexpected paths: %v", paths)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Fatalf("report not written: %v", err)
	}

	paths, err = output.GenerateReport(sampleReport(), "trials", dir)
	if err != nil {
		t.Fatalf("GenerateReport trials error: %v", err)
	}
	if filepath.Ext(paths[0]) != ".csv" {
		t.Fatalf("expected csv extension, got %s", paths[0])
	}
}

func TestGenerateReportAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := output.GenerateReport(sampleReport(), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(paths) != len(output.AvailableFormatterNames()) {
		t.Fatalf("expected one file per formatter, got %v", paths)
	}
}

func TestGenerateReportUnsupported(t *testing.T) {
	_, err := output.GenerateReport(sampleReport(), "xml", t.TempDir())
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "detailed-csv") {
		t.Fatalf("error should list formatters: %v", err)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	if err := output.WriteReport(&buf, sampleReport(), "console"); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	if !strings.Contains(buf.String(), "$801.00") {
		t.Fatalf("expected mean outcome in console output, got:\n%s", buf.String())
	}
	if err := output.WriteReport(&buf, sampleReport(), "nope"); !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
