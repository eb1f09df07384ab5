package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/config"
	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/internal/output"
	"github.com/rpgo/wealth-journey/internal/storage"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	paramsFile string
	format     string
	outputDir  string
	record     bool

	// raw form fields; blank or unparsable values fall back to the defaults
	assetMix   string
	startValue string
	withdrawal string
	minYears   string
	mostLikely string
	maxYears   string
	trials     string
}

func newSimulateCommand(a *app) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo simulation and print or write a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSimulate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", "console", "report format: "+strings.Join(output.AvailableFormatterNames(), ", ")+" or all")
	f.StringVarP(&opts.outputDir, "output", "o", "", "write report files to this directory instead of stdout")
	f.BoolVar(&opts.record, "record", true, "store the run in the history database when one is configured")
	addFormFlags(cmd, opts)
	return cmd
}

// addFormFlags registers the parameter file and per-field overrides.
func addFormFlags(cmd *cobra.Command, opts *simulateOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.paramsFile, "params", "p", "", "YAML parameter file; form flags override its values")
	f.StringVar(&opts.assetMix, "mix", "", "asset mix: bonds, stocks, sb_blend or sbc_blend")
	f.StringVar(&opts.startValue, "start", "", "starting portfolio value in dollars")
	f.StringVar(&opts.withdrawal, "withdrawal", "", "annual withdrawal in today's dollars")
	f.StringVar(&opts.minYears, "min-years", "", "shortest retirement in years")
	f.StringVar(&opts.mostLikely, "most-likely-years", "", "most likely retirement length in years")
	f.StringVar(&opts.maxYears, "max-years", "", "longest retirement in years")
	f.StringVar(&opts.trials, "trials", "", "number of simulated lives")
}

// resolveParameters starts from the defaults or the parameter file and
// applies any form flags on top.
func (opts *simulateOptions) resolveParameters() (string, domain.SimulationParameters, error) {
	base := config.DefaultParameters()
	if opts.paramsFile != "" {
		loaded, err := config.NewInputParser().LoadFromFile(opts.paramsFile)
		if err != nil {
			return "", domain.SimulationParameters{}, err
		}
		base = *loaded
	}

	mix := base.AssetMix.String()
	if strings.TrimSpace(opts.assetMix) != "" {
		mix = opts.assetMix
	}
	base.StartValue = config.SafeInt(opts.startValue, base.StartValue)
	base.AnnualWithdrawal = config.SafeInt(opts.withdrawal, base.AnnualWithdrawal)
	base.MinYears = int(config.SafeInt(opts.minYears, int64(base.MinYears)))
	base.MostLikelyYears = int(config.SafeInt(opts.mostLikely, int64(base.MostLikelyYears)))
	base.MaxYears = int(config.SafeInt(opts.maxYears, int64(base.MaxYears)))
	base.TrialCount = int(config.SafeInt(opts.trials, int64(base.TrialCount)))
	return mix, base, nil
}

func (a *app) runSimulate(cmd *cobra.Command, opts *simulateOptions) error {
	mix, params, err := opts.resolveParameters()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	stopTelemetry := a.startTelemetry(ctx)
	defer stopTelemetry()

	sim, err := a.loadSimulator()
	if err != nil {
		return err
	}

	result, err := calculation.CalculateResults(ctx, sim, mix,
		params.StartValue, params.AnnualWithdrawal,
		params.MinYears, params.MostLikelyYears, params.MaxYears, params.TrialCount)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	report := result.Run.Report()

	if opts.record {
		if err := a.recordRun(cmd, report); err != nil {
			a.logger.Warnf("%v", err)
		}
	}

	if opts.outputDir == "" {
		if output.NormalizeFormatName(opts.format) == "all" {
			return fmt.Errorf("format \"all\" requires --output")
		}
		return output.WriteReport(cmd.OutOrStdout(), report, opts.format)
	}

	paths, err := output.GenerateReport(report, opts.format, opts.outputDir)
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
	}
	return err
}

func (a *app) recordRun(cmd *cobra.Command, report *domain.SimulationReport) error {
	store, err := a.openStore()
	if err != nil || store == nil {
		return err
	}
	defer store.Close()

	id, err := store.RecordRun(cmd.Context(), storage.NewRunRecord(report))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	a.logger.Infof("recorded run %d", id)
	return nil
}
