package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/rpgo/wealth-journey/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/rpgo/wealth-journey/internal/calculation"

// DefaultMaxTrials caps a single run when the config sets no limit.
const DefaultMaxTrials = 1_000_000

// MonteCarloConfig holds execution settings for a simulator.
type MonteCarloConfig struct {
	Seed    int64 // 0 draws a fresh seed per run
	Workers int   // <= 0 uses GOMAXPROCS; 1 runs trials sequentially
	// MaxTrials rejects larger runs; <= 0 uses DefaultMaxTrials.
	MaxTrials int
}

// MonteCarloSimulator replays historical return windows against a withdrawal plan.
type MonteCarloSimulator struct {
	HistoricalData *HistoricalDataManager
	Seed           int64
	Workers        int
	MaxTrials      int
	Logger         Logger
	tracer         trace.Tracer
}

// MonteCarloResult represents the results of a Monte Carlo simulation
type MonteCarloResult struct {
	Parameters domain.SimulationParameters `json:"parameters"`
	Seed       int64                       `json:"seed"`
	Outcomes   domain.OutcomeSet           `json:"outcomes"`
	Summary    domain.SummaryStatistics    `json:"summary"`
	Elapsed    time.Duration               `json:"elapsed"`
}

// Report converts the result into the shape consumed by formatters and storage.
func (r *MonteCarloResult) Report() *domain.SimulationReport {
	return &domain.SimulationReport{
		Parameters:  r.Parameters,
		Seed:        r.Seed,
		Summary:     r.Summary,
		Outcomes:    r.Outcomes,
		GeneratedAt: nowFunc(),
	}
}

// NewMonteCarloSimulator creates a new Monte Carlo simulator
func NewMonteCarloSimulator(historicalData *HistoricalDataManager, config MonteCarloConfig) *MonteCarloSimulator {
	maxTrials := config.MaxTrials
	if maxTrials <= 0 {
		maxTrials = DefaultMaxTrials
	}
	return &MonteCarloSimulator{
		HistoricalData: historicalData,
		Seed:           config.Seed,
		Workers:        config.Workers,
		MaxTrials:      maxTrials,
		Logger:         NopLogger{},
		tracer:         otel.Tracer(tracerName),
	}
}

// SetLogger sets the simulator logger. If nil is provided, a no-op logger is used.
func (mcs *MonteCarloSimulator) SetLogger(l Logger) {
	if l == nil {
		mcs.Logger = NopLogger{}
		return
	}
	mcs.Logger = l
}

// WithSeed returns a copy of the simulator that uses seed for its runs.
func (mcs *MonteCarloSimulator) WithSeed(seed int64) *MonteCarloSimulator {
	clone := *mcs
	clone.Seed = seed
	return &clone
}

// Run executes the simulation without cancellation.
func (mcs *MonteCarloSimulator) Run(params domain.SimulationParameters) (*MonteCarloResult, error) {
	return mcs.RunContext(context.Background(), params)
}

// RunContext validates params, runs every trial and aggregates the outcomes.
// Cancellation is checked between trials; a cancelled run returns no result.
func (mcs *MonteCarloSimulator) RunContext(ctx context.Context, params domain.SimulationParameters) (*MonteCarloResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if mcs.MaxTrials > 0 && params.TrialCount > mcs.MaxTrials {
		return nil, fmt.Errorf("%w: trial count %d exceeds the limit of %d", domain.ErrInvalidParameters, params.TrialCount, mcs.MaxTrials)
	}
	if mcs.HistoricalData == nil {
		return nil, fmt.Errorf("%w: no historical data manager", domain.ErrDataUnavailable)
	}
	returns, err := mcs.HistoricalData.SeriesFor(params.AssetMix)
	if err != nil {
		return nil, err
	}
	inflation, err := mcs.HistoricalData.InflationRates()
	if err != nil {
		return nil, err
	}

	seed := resolveSeed(mcs.Seed)
	tracer := mcs.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	ctx, span := tracer.Start(ctx, "montecarlo.run", trace.WithAttributes(
		attribute.String("asset_mix", params.AssetMix.String()),
		attribute.Int("trial_count", params.TrialCount),
		attribute.Int64("seed", seed),
	))
	defer span.End()

	logger := mcs.Logger
	if logger == nil {
		logger = NopLogger{}
	}
	logger.Debugf("monte carlo: mix=%s trials=%d seed=%d years=%d/%d/%d", params.AssetMix, params.TrialCount, seed, params.MinYears, params.MostLikelyYears, params.MaxYears)

	started := time.Now()
	results, err := mcs.runTrials(ctx, seed, returns, inflation, params)
	if err != nil {
		logger.Warnf("monte carlo run cancelled after %s: %v", time.Since(started), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	outcomes := domain.OutcomeSet{Outcomes: results}
	for _, t := range results {
		if t.Bankrupt {
			outcomes.BankruptCount++
		}
	}
	summary := Summarize(outcomes)
	span.SetAttributes(attribute.Int("bankrupt_count", outcomes.BankruptCount))

	logger.Infof("monte carlo: mix=%s trials=%d bankrupt=%s%% mean=%s in %s",
		params.AssetMix, params.TrialCount, summary.BankruptcyProbabilityPercent, summary.MeanOutcome, time.Since(started))

	return &MonteCarloResult{
		Parameters: params,
		Seed:       seed,
		Outcomes:   outcomes,
		Summary:    summary,
		Elapsed:    time.Since(started),
	}, nil
}

// runTrials fans trials out over a bounded set of workers. Trial i always lands in results[i].
func (mcs *MonteCarloSimulator) runTrials(ctx context.Context, seed int64, returns, inflation []float64, params domain.SimulationParameters) ([]domain.TrialOutcome, error) {
	n := params.TrialCount
	results := make([]domain.TrialOutcome, n)

	workers := mcs.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += workers {
				if ctx.Err() != nil {
					return
				}
				results[i] = runTrial(trialRand(seed, i), i, returns, inflation, params)
			}
		}(w)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("monte carlo run interrupted: %w", err)
	}
	return results, nil
}

// runTrial draws the start year and duration for one trial and evaluates it.
func runTrial(rng *rand.Rand, index int, returns, inflation []float64, params domain.SimulationParameters) domain.TrialOutcome {
	startYear := rng.IntN(len(returns))
	duration := int(triangular(rng.Float64(), float64(params.MinYears), float64(params.MaxYears), float64(params.MostLikelyYears)))
	outcome := evaluateTrial(returns, inflation, params.StartValue, params.AnnualWithdrawal, startYear, duration)
	outcome.Index = index
	return outcome
}

// triangular maps a uniform draw u in [0,1) onto a triangular distribution on
// [low, high] with the given mode.
func triangular(u, low, high, mode float64) float64 {
	if high == low {
		return low
	}
	c := (mode - low) / (high - low)
	if u > c {
		u = 1.0 - u
		c = 1.0 - c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// evaluateTrial compounds one retirement over the window starting at startYear.
// Indices wrap modulo each series length. The withdrawal is inflated from the
// second year on, and both withdrawal and wealth are truncated to whole units
// every year. Wealth at or below zero ends the trial as bankrupt.
func evaluateTrial(returns, inflation []float64, startValue, withdrawal int64, startYear, duration int) domain.TrialOutcome {
	outcome := domain.TrialOutcome{StartYear: startYear, Duration: duration}
	wealth := startValue
	adjusted := withdrawal

	for k := 0; k < duration; k++ {
		year := startYear + k
		if k > 0 {
			adjusted = int64(float64(adjusted) * (1 + inflation[year%len(inflation)]))
		}
		wealth -= adjusted
		wealth = int64(float64(wealth) * (1 + returns[year%len(returns)]))

		if wealth <= 0 {
			outcome.YearsSurvived = k
			outcome.Bankrupt = true
			return outcome
		}
	}

	outcome.YearsSurvived = duration
	outcome.Wealth = wealth
	return outcome
}
