package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/api/middleware"
	"github.com/rpgo/wealth-journey/internal/api/models"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/domain"
)

// AssetMixHandler serves the asset mix catalogue.
type AssetMixHandler struct {
	data *calculation.HistoricalDataManager
}

// NewAssetMixHandler creates a new asset mix handler
func NewAssetMixHandler(data *calculation.HistoricalDataManager) *AssetMixHandler {
	return &AssetMixHandler{data: data}
}

// ListAssetMixes handles GET /api/v1/asset-mixes
func (h *AssetMixHandler) ListAssetMixes(c *gin.Context) {
	issues, err := h.data.ValidateDataQuality()
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	mixes := make([]models.AssetMixInfo, 0, len(domain.AllAssetMixes))
	for _, mix := range domain.AllAssetMixes {
		info := models.AssetMixInfo{Key: mix.String(), Description: mix.Description()}
		if series, err := h.data.Series(mix); err == nil {
			stats := series.Statistics
			info.Years = len(series.Values)
			info.FirstYear = series.FirstYear
			info.Statistics = &stats
		}
		mixes = append(mixes, info)
	}

	c.JSON(http.StatusOK, models.AssetMixListResponse{AssetMixes: mixes, Issues: issues})
}
