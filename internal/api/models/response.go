package models

import (
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/domain"
	"github.com/rpgo/wealth-journey/internal/storage"
	"github.com/shopspring/decimal"
)

// HealthResponse reports readiness.
type HealthResponse struct {
	Status         string `json:"status"`
	DataLoaded     bool   `json:"data_loaded"`
	HistoryEnabled bool   `json:"history_enabled"`
}

// AssetMixInfo describes one selectable asset mix
type AssetMixInfo struct {
	Key         string                            `json:"key"`
	Description string                            `json:"description"`
	Years       int                               `json:"years"`
	FirstYear   int                               `json:"first_year,omitempty"`
	Statistics  *calculation.HistoricalStatistics `json:"statistics,omitempty"`
}

// AssetMixListResponse lists the asset mixes and any data quality issues.
type AssetMixListResponse struct {
	AssetMixes []AssetMixInfo `json:"asset_mixes"`
	Issues     []string       `json:"issues,omitempty"`
}

// SimulationResponse is the result of one run
type SimulationResponse struct {
	ID                           int64                       `json:"id,omitempty"`
	Parameters                   domain.SimulationParameters `json:"parameters"`
	Seed                         int64                       `json:"seed"`
	BankruptcyProbabilityPercent decimal.Decimal             `json:"bankruptcy_probability_percent"`
	MeanOutcome                  decimal.Decimal             `json:"mean_outcome"`
	PlotOutcomes                 []int64                     `json:"plot_outcomes"`
	Summary                      domain.SummaryStatistics    `json:"summary"`
	ElapsedMS                    int64                       `json:"elapsed_ms"`
}

// RunListResponse is a page of run history, newest first.
type RunListResponse struct {
	Runs  []storage.RunRecord `json:"runs"`
	Total int64               `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
