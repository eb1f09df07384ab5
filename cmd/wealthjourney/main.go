// Command wealthjourney estimates how long a retirement portfolio lasts by
// replaying historical market returns.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/config"
	"github.com/rpgo/wealth-journey/internal/storage/sqlite"
	"github.com/rpgo/wealth-journey/internal/telemetry"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once the root has run.
type app struct {
	cfg    config.AppConfig
	logger *calculation.StdLogger
	stdout io.Writer
	stderr io.Writer

	dataPath string
	logLevel string
	dbPath   string
	workers  int
	seed     int64
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "wealthjourney",
		Short:         "Monte Carlo retirement outcome simulator",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.dataPath, "data", "", "directory holding the historical series (overrides WEALTHJOURNEY_DATA_PATH)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides WEALTHJOURNEY_LOG_LEVEL)")
	flags.StringVar(&a.dbPath, "db", "", "SQLite run history file (overrides WEALTHJOURNEY_DB_PATH)")
	flags.IntVar(&a.workers, "workers", 0, "trial workers; 0 uses every CPU")
	flags.Int64Var(&a.seed, "seed", 0, "random seed; 0 draws a fresh one")

	root.AddCommand(
		newSimulateCommand(a),
		newServeCommand(a),
		newValidateCommand(a),
		newExampleCommand(a),
		newDataCommand(a),
		newHistoryCommand(a),
		newBreakEvenCommand(a),
	)
	return root
}

// init resolves environment configuration, then applies flag overrides.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataPath = a.dataPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("db") {
		cfg.DBPath = a.dbPath
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}

	level, err := calculation.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = calculation.NewStdLogger(log.New(a.stderr, "", log.LstdFlags), level)
	return nil
}

// loadSimulator reads the historical series and builds a simulator from config.
func (a *app) loadSimulator() (*calculation.MonteCarloSimulator, error) {
	hdm := calculation.NewHistoricalDataManager(a.cfg.DataPath)
	if err := hdm.LoadAllData(); err != nil {
		return nil, fmt.Errorf("failed to load historical data: %w", err)
	}
	sim := calculation.NewMonteCarloSimulator(hdm, calculation.MonteCarloConfig{
		Seed:      a.cfg.Seed,
		Workers:   a.cfg.Workers,
		MaxTrials: a.cfg.MaxTrials,
	})
	sim.SetLogger(a.logger)
	return sim, nil
}

// openStore opens the run history database, or returns nil when none is configured.
func (a *app) openStore() (*sqlite.Store, error) {
	if a.cfg.DBPath == "" {
		return nil, nil
	}
	store, err := sqlite.Open(a.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return store, nil
}

// startTelemetry installs tracing when an endpoint is configured.
func (a *app) startTelemetry(ctx context.Context) func() {
	shutdown, err := telemetry.Setup(ctx, telemetry.ServiceName, a.cfg.OTelEndpoint)
	if err != nil {
		a.logger.Warnf("telemetry disabled: %v", err)
	}
	return func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warnf("telemetry shutdown: %v", err)
		}
	}
}
