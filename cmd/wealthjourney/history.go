package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded simulation runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if store == nil {
				return errors.New("no run history configured; set WEALTHJOURNEY_DB_PATH or --db")
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tMIX\tSTART\tWITHDRAWAL\tTRIALS\tSEED\tBANKRUPT %\tMEAN")
			for _, r := range runs {
				p := r.Parameters
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\n",
					r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), p.AssetMix, p.StartValue,
					p.AnnualWithdrawal, p.TrialCount, r.Seed, r.BankruptcyProbabilityPercent.StringFixed(1), r.MeanOutcome.StringFixed(2))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print runs as JSON")
	return cmd
}
