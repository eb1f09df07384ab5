package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/config"
)

// Replays a small run and cross-checks the chart series against the raw trials.
func main() {
	dataDir := "./data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	hdm := calculation.NewHistoricalDataManager(dataDir)
	if err := hdm.LoadAllData(); err != nil {
		log.Fatal(err)
	}

	params := config.DefaultParameters()
	params.TrialCount = 10
	sim := calculation.NewMonteCarloSimulator(hdm, calculation.MonteCarloConfig{Seed: 12345, Workers: 1})
	result, err := sim.Run(params)
	if err != nil {
		log.Fatal(err)
	}
	calc := calculation.NewCalculationResult(result)

	returns, _ := hdm.SeriesFor(params.AssetMix)
	fmt.Printf("=== RUN ===\n")
	fmt.Printf("Asset mix %s, %d years of history, seed %d\n", params.AssetMix, len(returns), result.Seed)
	fmt.Printf("Bankrupt %s%%, mean %s\n", calc.BankruptcyProbabilityPercent.StringFixed(1), calc.MeanOutcome.StringFixed(2))

	fmt.Printf("\n=== TRIALS ===\n")
	for _, t := range result.Outcomes.Outcomes {
		wraps := t.StartYear+t.Duration > len(returns)
		fmt.Printf("Trial %d: start=%d duration=%d survived=%d wealth=$%d bankrupt=%v wraps=%v\n",
			t.Index, t.StartYear, t.Duration, t.YearsSurvived, t.Wealth, t.Bankrupt, wraps)
	}

	fmt.Printf("\n=== CHART SERIES ===\n")
	mismatches := 0
	for i, v := range calc.PlotOutcomes {
		direct := result.Outcomes.Outcomes[i].Wealth
		if v != direct {
			mismatches++
			fmt.Printf("Trial %d: plotted=$%d direct=$%d\n", i, v, direct)
		}
	}
	if mismatches == 0 {
		fmt.Printf("Chart series matches all %d trials\n", len(calc.PlotOutcomes))
	}
}
