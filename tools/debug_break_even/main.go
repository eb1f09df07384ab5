package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/config"
	"github.com/rpgo/wealth-journey/internal/domain"
)

// Prints bankruptcy probability and mean outcome across a withdrawal sweep so the
// break-even search can be checked by eye.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: debug_break_even <data-dir> <params.yaml> [step]")
		return
	}
	step := int64(5000)
	if len(os.Args) > 3 {
		v, err := strconv.ParseInt(os.Args[3], 10, 64)
		if err != nil || v <= 0 {
			panic(fmt.Sprintf("invalid step %q", os.Args[3]))
		}
		step = v
	}

	params, err := config.NewInputParser().LoadFromFile(os.Args[2])
	if err != nil {
		panic(err)
	}
	hdm := calc.NewHistoricalDataManager(os.Args[1])
	if err := hdm.LoadAllData(); err != nil {
		panic(err)
	}
	sim := calc.NewMonteCarloSimulator(hdm, calc.MonteCarloConfig{Seed: 12345})

	fmt.Println("Withdrawal,WithdrawalRate,BankruptPct,MeanOutcome,P10,P50,P90")
	var prev *domain.SummaryStatistics
	for w := int64(0); w <= params.StartValue/4; w += step {
		p := *params
		p.AnnualWithdrawal = w
		res, err := sim.Run(p)
		if err != nil {
			panic(err)
		}
		s := res.Summary
		rate := 0.0
		if p.StartValue > 0 {
			rate = float64(w) / float64(p.StartValue) * 100
		}
		fmt.Printf("%d,%.2f,%s,%s,%d,%d,%d\n", w, rate, s.BankruptcyProbabilityPercent.StringFixed(1), s.MeanOutcome.StringFixed(0), s.Percentiles.P10, s.Percentiles.P50, s.Percentiles.P90)

		// with a fixed seed bankruptcy must not fall as the withdrawal grows
		if prev != nil && s.BankruptcyProbabilityPercent.LessThan(prev.BankruptcyProbabilityPercent) {
			fmt.Printf("!! bankruptcy fell from %s%% to %s%% at %d\n", prev.BankruptcyProbabilityPercent, s.BankruptcyProbabilityPercent, w)
		}
		prev = &s
	}
}
