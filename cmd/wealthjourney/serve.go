package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/api"
	"github.com/rpgo/wealth-journey/internal/storage"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Addr = addr
			}
			return a.runServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides WEALTHJOURNEY_ADDR)")
	return cmd
}

func (a *app) runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopTelemetry := a.startTelemetry(ctx)
	defer stopTelemetry()

	sim, err := a.loadSimulator()
	if err != nil {
		return err
	}
	if issues, err := sim.HistoricalData.ValidateDataQuality(); err == nil {
		for _, issue := range issues {
			a.logger.Warnf("data quality: %s", issue)
		}
	}

	var store storage.RunStore
	sqliteStore, err := a.openStore()
	if err != nil {
		return err
	}
	if sqliteStore != nil {
		defer sqliteStore.Close()
		store = sqliteStore
	}

	gin.SetMode(a.cfg.GinMode())
	srv := &http.Server{
		Addr: a.cfg.Addr,
		Handler: api.NewHandler(api.Options{
			Simulator:      sim,
			Store:          store,
			Logger:         a.logger,
			RequestTimeout: a.cfg.RequestTimeout,
			CORSOrigins:    a.cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("Starting API server on %s (profile %s)", a.cfg.Addr, a.cfg.Profile)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
