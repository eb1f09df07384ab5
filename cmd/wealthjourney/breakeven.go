package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/pkg/decimal"
	shopspring "github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newBreakEvenCommand(a *app) *cobra.Command {
	opts := &simulateOptions{}
	var (
		target string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the largest withdrawal that keeps the bankruptcy probability at or below a target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetPct, err := shopspring.NewFromString(target)
			if err != nil {
				return fmt.Errorf("%w: target %q is not a number", domain.ErrInvalidParameters, target)
			}
			mixKey, params, err := opts.resolveParameters()
			if err != nil {
				return err
			}
			if params.AssetMix, err = domain.ParseAssetMix(mixKey); err != nil {
				return err
			}

			sim, err := a.loadSimulator()
			if err != nil {
				return err
			}
			res, err := sim.FindBreakEvenWithdrawal(cmd.Context(), params, targetPct)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintf(out, "Asset mix:             %s\n", params.AssetMix)
			fmt.Fprintf(out, "Starting value:        %s\n", decimal.NewMoneyFromInt(params.StartValue).FormatWhole())
			fmt.Fprintf(out, "Target bankruptcy:     %s%%\n", res.TargetPercent)
			fmt.Fprintf(out, "Break-even withdrawal: %s per year\n", decimal.NewMoneyFromInt(res.Withdrawal).FormatWhole())
			fmt.Fprintf(out, "Bankruptcy at that:    %s%%\n", res.BankruptcyProbabilityPercent.StringFixed(1))
			fmt.Fprintf(out, "Average outcome:       %s\n", decimal.NewMoneyFromDecimal(res.MeanOutcome).Format())
			fmt.Fprintf(out, "Runs:                  %d (seed %d)\n", res.Iterations, res.Seed)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "5", "highest acceptable bankruptcy probability, in percent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	addFormFlags(cmd, opts)
	return cmd
}
