package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/spf13/cobra"
)

func newDataCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Load the historical series and report their statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := a.loadSimulator()
			if err != nil {
				return err
			}
			hdm := sim.HistoricalData

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SERIES\tYEARS\tMEAN\tSTD DEV\tMIN\tMAX\tSOURCE")
			for _, mix := range domain.AllAssetMixes {
				series, err := hdm.Series(mix)
				if err != nil {
					return err
				}
				s := series.Statistics
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n", mix, s.Count, s.Mean, s.StdDev, s.Min, s.Max, series.Source)
			}
			if infl := hdm.Inflation; infl != nil {
				s := infl.Statistics
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n", infl.Name, s.Count, s.Mean, s.StdDev, s.Min, s.Max, infl.Source)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			issues, err := hdm.ValidateDataQuality()
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No data quality issues found.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d data quality issue(s):\n", len(issues))
			for _, issue := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", issue)
			}
			return nil
		},
	}
}
