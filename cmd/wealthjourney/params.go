package main

import (
	"fmt"

	"github.com/rpgo/wealth-journey/internal/config"
	"github.com/rpgo/wealth-journey/pkg/decimal"
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <params.yaml>",
		Short: "Check a parameter file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is valid\n", args[0])
			fmt.Fprintf(out, "  Asset mix:   %s (%s)\n", params.AssetMix, params.AssetMix.Description())
			fmt.Fprintf(out, "  Start:       %s\n", decimal.NewMoneyFromInt(params.StartValue).FormatWhole())
			fmt.Fprintf(out, "  Withdrawal:  %s per year\n", decimal.NewMoneyFromInt(params.AnnualWithdrawal).FormatWhole())
			fmt.Fprintf(out, "  Years:       %d / %d / %d\n", params.MinYears, params.MostLikelyYears, params.MaxYears)
			fmt.Fprintf(out, "  Trials:      %d\n", params.TrialCount)
			return nil
		},
	}
}

func newExampleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example <params.yaml>",
		Short: "Write a parameter file filled with the default values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveParameters(args[0], parser.CreateExampleParameters()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example parameters written to %s\n", args[0])
			return nil
		},
	}
}
