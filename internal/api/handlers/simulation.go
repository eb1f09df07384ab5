package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/api/middleware"
	"github.com/rpgo/wealth-journey/internal/api/models"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/config"
	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/internal/storage"
)

// DefaultListLimit is used when GET /api/v1/simulations has no limit.
const DefaultListLimit = 20

// SimulationHandler runs simulations and serves run history.
type SimulationHandler struct {
	sim      *calculation.MonteCarloSimulator
	store    storage.RunStore // nil disables history
	defaults domain.SimulationParameters
	timeout  time.Duration
	logger   calculation.Logger
}

// NewSimulationHandler creates a new simulation handler. A nil store disables
// run history; a non-positive timeout leaves runs bounded only by the request.
func NewSimulationHandler(sim *calculation.MonteCarloSimulator, store storage.RunStore, timeout time.Duration, logger calculation.Logger) *SimulationHandler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &SimulationHandler{
		sim:      sim,
		store:    store,
		defaults: config.DefaultParameters(),
		timeout:  timeout,
		logger:   logger,
	}
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, http.StatusBadRequest, middleware.CodeInvalidRequest, err.Error())
		return
	}

	mixKey := req.AssetMix
	if strings.TrimSpace(mixKey) == "" {
		mixKey = h.defaults.AssetMix.String()
	}
	d := h.defaults

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	sim := h.sim
	if req.Seed != nil {
		sim = sim.WithSeed(*req.Seed)
	}

	result, err := calculation.CalculateResults(ctx, sim, mixKey,
		config.SafeInt(string(req.StartValue), d.StartValue),
		config.SafeInt(string(req.AnnualWithdrawal), d.AnnualWithdrawal),
		safeInt(req.MinYears, d.MinYears),
		safeInt(req.MostLikelyYears, d.MostLikelyYears),
		safeInt(req.MaxYears, d.MaxYears),
		safeInt(req.Trials, d.TrialCount),
	)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	resp := models.SimulationResponse{
		Parameters:                   result.Run.Parameters,
		Seed:                         result.Seed,
		BankruptcyProbabilityPercent: result.BankruptcyProbabilityPercent,
		MeanOutcome:                  result.MeanOutcome,
		PlotOutcomes:                 result.PlotOutcomes,
		Summary:                      result.Summary,
		ElapsedMS:                    result.Run.Elapsed.Milliseconds(),
	}

	if h.store != nil && (req.Record == nil || *req.Record) {
		// a failed history write does not fail the run
		id, err := h.store.RecordRun(context.WithoutCancel(ctx), storage.NewRunRecord(result.Run.Report()))
		if err != nil {
			h.logger.Warnf("record run: %v", err)
		} else {
			resp.ID = id
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ListRuns handles GET /api/v1/simulations
func (h *SimulationHandler) ListRuns(c *gin.Context) {
	if h.store == nil {
		middleware.Abort(c, http.StatusNotFound, middleware.CodeHistoryDisabled, "run history is not configured")
		return
	}

	limit := int(config.SafeInt(c.Query("limit"), DefaultListLimit))
	if limit <= 0 {
		middleware.Abort(c, http.StatusBadRequest, middleware.CodeInvalidRequest, "limit must be positive")
		return
	}

	runs, err := h.store.ListRuns(c.Request.Context(), limit)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	total, err := h.store.CountRuns(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if runs == nil {
		runs = []storage.RunRecord{}
	}

	c.JSON(http.StatusOK, models.RunListResponse{Runs: runs, Total: total})
}

// GetRun handles GET /api/v1/simulations/:id
func (h *SimulationHandler) GetRun(c *gin.Context) {
	if h.store == nil {
		middleware.Abort(c, http.StatusNotFound, middleware.CodeHistoryDisabled, "run history is not configured")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.Abort(c, http.StatusBadRequest, middleware.CodeInvalidRequest, "id must be a positive integer")
		return
	}

	run, err := h.store.GetRun(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			middleware.Abort(c, http.StatusNotFound, middleware.CodeNotFound, "run not found")
			return
		}
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, run)
}

func safeInt(v models.RawValue, def int) int {
	return int(config.SafeInt(string(v), int64(def)))
}
