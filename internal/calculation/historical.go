package calculation

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rpgo/wealth-journey/internal/domain"
	pkgdecimal "github.com/rpgo/wealth-journey/pkg/decimal"
	"github.com/shopspring/decimal"
)

// HistoricalSeries is one aligned series of annual decimal fractions.
type HistoricalSeries struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Source      string               `json:"source"`
	Values      []float64            `json:"values"`
	FirstYear   int                  `json:"first_year,omitempty"` // calendar year of index 0, when known
	Statistics  HistoricalStatistics `json:"statistics"`
}

// HistoricalStatistics provides statistical summary of the dataset
type HistoricalStatistics struct {
	Mean         decimal.Decimal `json:"mean"`
	StdDev       decimal.Decimal `json:"std_dev"`
	Min          decimal.Decimal `json:"min"`
	Max          decimal.Decimal `json:"max"`
	Count        int             `json:"count"`
	MissingYears []int           `json:"missing_years,omitempty"`
}

// seriesFile names the on-disk sources for one series. The percent-per-line text
// file is tried first, then a year,percent CSV.
type seriesFile struct {
	name        string
	text        string
	csv         string
	description string
}

var returnFiles = map[domain.AssetMix]seriesFile{
	domain.AssetMixBonds:    {"bonds", "10-yr_TBond_returns_1926-2013_pct.txt", "bonds.csv", "10-year Treasury bond annual returns"},
	domain.AssetMixStocks:   {"stocks", "SP500_returns_1926-2013_pct.txt", "stocks.csv", "S&P 500 annual total returns"},
	domain.AssetMixSBBlend:  {"sb_blend", "S-B_blend_1926-2013_pct.txt", "sb_blend.csv", "50/50 stock/bond blend annual returns"},
	domain.AssetMixSBCBlend: {"sbc_blend", "S-B-C_blend_1926-2013_pct.txt", "sbc_blend.csv", "40/50/10 stock/bond/cash blend annual returns"},
}

var inflationFile = seriesFile{"inflation", "annual_infl_rate_1926-2013_pct.txt", "inflation.csv", "Annual CPI inflation rate"}

// HistoricalDataManager holds the return series per asset mix and the shared
// inflation series. Series are immutable once loaded.
type HistoricalDataManager struct {
	Returns   map[domain.AssetMix]*HistoricalSeries `json:"returns"`
	Inflation *HistoricalSeries                     `json:"inflation"`
	DataPath  string                                `json:"data_path"`
	IsLoaded  bool                                  `json:"is_loaded"`
}

// NewHistoricalDataManager creates a new historical data manager
func NewHistoricalDataManager(dataPath string) *HistoricalDataManager {
	return &HistoricalDataManager{
		Returns:  make(map[domain.AssetMix]*HistoricalSeries),
		DataPath: dataPath,
	}
}

// NewHistoricalDataFromSeries builds a loaded manager from in-memory decimal
// fractions. Every asset mix must have a non-empty series of finite values.
func NewHistoricalDataFromSeries(returns map[domain.AssetMix][]float64, inflation []float64) (*HistoricalDataManager, error) {
	hdm := NewHistoricalDataManager("")
	for mix, values := range returns {
		if !mix.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAssetMix, string(mix))
		}
		series, err := newSeries(string(mix), mix.Description(), "memory", slices.Clone(values), 0, nil)
		if err != nil {
			return nil, err
		}
		hdm.Returns[mix] = series
	}
	series, err := newSeries("inflation", inflationFile.description, "memory", slices.Clone(inflation), 0, nil)
	if err != nil {
		return nil, err
	}
	hdm.Inflation = series
	hdm.IsLoaded = true
	return hdm, nil
}

// LoadAllData loads all historical datasets
func (hdm *HistoricalDataManager) LoadAllData() error {
	if hdm.IsLoaded {
		return nil // Already loaded
	}

	for _, mix := range domain.AllAssetMixes {
		series, err := hdm.loadSeries(returnFiles[mix])
		if err != nil {
			return fmt.Errorf("%w: %s returns: %v", domain.ErrDataUnavailable, mix, err)
		}
		hdm.Returns[mix] = series
	}

	series, err := hdm.loadSeries(inflationFile)
	if err != nil {
		return fmt.Errorf("%w: inflation: %v", domain.ErrDataUnavailable, err)
	}
	hdm.Inflation = series

	hdm.IsLoaded = true
	return nil
}

func (hdm *HistoricalDataManager) loadSeries(f seriesFile) (*HistoricalSeries, error) {
	textPath := filepath.Join(hdm.DataPath, f.text)
	if _, err := os.Stat(textPath); err == nil {
		values, err := loadPercentText(textPath)
		if err != nil {
			return nil, err
		}
		return newSeries(f.name, f.description, textPath, values, 0, nil)
	}

	csvPath := filepath.Join(hdm.DataPath, f.csv)
	if _, err := os.Stat(csvPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("neither %s nor %s found", textPath, csvPath)
		}
		return nil, err
	}
	return loadPercentCSV(csvPath, f)
}

// loadPercentText reads one percentage per line and converts to decimal fractions.
func loadPercentText(filePath string) ([]float64, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	var values []float64
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		pct, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid percentage %q", filePath, line, text)
		}
		values = append(values, PercentToFraction(pct))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return values, nil
}

// loadPercentCSV reads a year,percent CSV with a header row. Rows are expected in
// calendar order; gaps are recorded as missing years.
func loadPercentCSV(filePath string, f seriesFile) (*HistoricalSeries, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("invalid CSV format: expected at least 2 columns")
	}

	var values []float64
	var years []int
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if len(record) < 2 {
			continue // Skip malformed rows
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue // Skip rows with invalid year
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			continue // Skip rows with invalid value
		}
		years = append(years, year)
		values = append(values, PercentToFraction(pct))
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no valid data points found in %s", filePath)
	}
	return newSeries(f.name, f.description, filePath, values, years[0], years)
}

// PercentToFraction converts a percentage to a decimal fraction rounded to five places.
func PercentToFraction(pct float64) float64 {
	return pkgdecimal.RoundHalfEven(pct/100, 5).InexactFloat64()
}

func newSeries(name, description, source string, values []float64, firstYear int, years []int) (*HistoricalSeries, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: series %s is empty", domain.ErrDataUnavailable, name)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: series %s has non-finite value at index %d", domain.ErrDataUnavailable, name, i)
		}
	}
	return &HistoricalSeries{
		Name:        name,
		Description: description,
		Source:      source,
		Values:      values,
		FirstYear:   firstYear,
		Statistics:  calculateStatistics(values, years),
	}, nil
}

// calculateStatistics calculates statistical measures for the dataset
func calculateStatistics(values []float64, years []int) HistoricalStatistics {
	if len(values) == 0 {
		return HistoricalStatistics{}
	}

	n := decimal.NewFromInt(int64(len(values)))
	var sum decimal.Decimal
	min := decimal.NewFromFloat(values[0])
	max := min
	for _, v := range values {
		d := decimal.NewFromFloat(v)
		sum = sum.Add(d)
		if d.LessThan(min) {
			min = d
		}
		if d.GreaterThan(max) {
			max = d
		}
	}
	mean := sum.Div(n)

	var varianceSum decimal.Decimal
	for _, v := range values {
		diff := decimal.NewFromFloat(v).Sub(mean)
		varianceSum = varianceSum.Add(diff.Mul(diff))
	}
	variance := varianceSum.Div(n)
	// Convert to float for sqrt calculation
	stdDev := decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))

	var missingYears []int
	for i := 1; i < len(years); i++ {
		for y := years[i-1] + 1; y < years[i]; y++ {
			missingYears = append(missingYears, y)
		}
	}

	return HistoricalStatistics{
		Mean:         mean.Round(6),
		StdDev:       stdDev.Round(6),
		Min:          min,
		Max:          max,
		Count:        len(values),
		MissingYears: missingYears,
	}
}

// Series returns the loaded return series for an asset mix.
func (hdm *HistoricalDataManager) Series(mix domain.AssetMix) (*HistoricalSeries, error) {
	if !mix.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAssetMix, string(mix))
	}
	if hdm == nil || !hdm.IsLoaded {
		return nil, fmt.Errorf("%w: historical data not loaded", domain.ErrDataUnavailable)
	}
	series := hdm.Returns[mix]
	if series == nil || len(series.Values) == 0 {
		return nil, fmt.Errorf("%w: no return series for %s", domain.ErrDataUnavailable, mix)
	}
	return series, nil
}

// SeriesFor returns a copy of the return fractions for an asset mix.
func (hdm *HistoricalDataManager) SeriesFor(mix domain.AssetMix) ([]float64, error) {
	series, err := hdm.Series(mix)
	if err != nil {
		return nil, err
	}
	return slices.Clone(series.Values), nil
}

// InflationRates returns a copy of the shared inflation fractions.
func (hdm *HistoricalDataManager) InflationRates() ([]float64, error) {
	if hdm == nil || !hdm.IsLoaded || hdm.Inflation == nil || len(hdm.Inflation.Values) == 0 {
		return nil, fmt.Errorf("%w: inflation data not loaded", domain.ErrDataUnavailable)
	}
	return slices.Clone(hdm.Inflation.Values), nil
}

// ValidateDataQuality performs quality checks on the loaded data
func (hdm *HistoricalDataManager) ValidateDataQuality() ([]string, error) {
	if hdm == nil || !hdm.IsLoaded {
		return nil, fmt.Errorf("%w: historical data not loaded", domain.ErrDataUnavailable)
	}

	var issues []string
	expected := 0
	if hdm.Inflation != nil {
		expected = len(hdm.Inflation.Values)
		if len(hdm.Inflation.Statistics.MissingYears) > 0 {
			issues = append(issues, fmt.Sprintf("Missing years in inflation data: %v", hdm.Inflation.Statistics.MissingYears))
		}
	}

	for _, mix := range domain.AllAssetMixes {
		series := hdm.Returns[mix]
		if series == nil {
			issues = append(issues, fmt.Sprintf("%s series is not loaded", mix))
			continue
		}
		if expected > 0 && len(series.Values) != expected {
			issues = append(issues, fmt.Sprintf("%s has %d data points, inflation has %d", mix, len(series.Values), expected))
		}
		if len(series.Statistics.MissingYears) > 0 {
			issues = append(issues, fmt.Sprintf("Missing years in %s data: %v", mix, series.Statistics.MissingYears))
		}
		// Returns above 100% or at/below -100% are almost certainly unit errors.
		for i, v := range series.Values {
			if v > 1.0 {
				issues = append(issues, fmt.Sprintf("Extreme positive return in %s at index %d: %.5f", mix, i, v))
			}
			if v <= -1.0 {
				issues = append(issues, fmt.Sprintf("Return wipes out principal in %s at index %d: %.5f", mix, i, v))
			}
		}
	}

	return issues, nil
}
