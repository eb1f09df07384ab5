package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/wealth-journey/internal/api/models"
	"github.com/rpgo/wealth-journey/internal/calculation"
	"github.com/rpgo/wealth-journey/internal/storage"
)

// Health handles GET /health
func Health(data *calculation.HistoricalDataManager, store storage.RunStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:         "ok",
			DataLoaded:     data != nil && data.IsLoaded,
			HistoryEnabled: store != nil,
		})
	}
}
