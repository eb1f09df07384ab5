// Package api exposes the simulator over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/api/handlers"
	"github.com/rpgo/wealth-journey/internal/api/middleware"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/storage"
	"github.com/rs/cors"
)

// Options wires the server's dependencies.
type Options struct {
	Simulator      *calculation.MonteCarloSimulator
	Store          storage.RunStore // optional
	Logger         calculation.Logger
	RequestTimeout time.Duration
	CORSOrigins    []string
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.ErrorHandler())

	var data *calculation.HistoricalDataManager
	if opts.Simulator != nil {
		data = opts.Simulator.HistoricalData
	}
	assetMixHandler := handlers.NewAssetMixHandler(data)
	simulationHandler := handlers.NewSimulationHandler(opts.Simulator, opts.Store, opts.RequestTimeout, opts.Logger)

	router.GET("/health", handlers.Health(data, opts.Store))

	api := router.Group("/api/v1")
	{
		api.GET("/asset-mixes", assetMixHandler.ListAssetMixes)

		api.POST("/simulations", simulationHandler.RunSimulation)
		api.GET("/simulations", simulationHandler.ListRuns)
		api.GET("/simulations/:id", simulationHandler.GetRun)
	}

	router.NoRoute(func(c *gin.Context) {
		middleware.Abort(c, http.StatusNotFound, middleware.CodeNotFound, "Not found")
	})

	return router
}

// NewHandler wraps the router with CORS for the configured origins.
func NewHandler(opts Options) http.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(NewRouter(opts))
}
