package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/models"
	"github.com/gtdn/registry-api/internal/services"
	"github.com/gtdn/registry-api/internal/utils"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Get cache statistics and backend health
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	requestID := c.GetString("request_id")

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to retrieve cache statistics",
		})
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"stats":     stats,
		"health":    h.cacheService.Health(),
		"timestamp": time.Now(),
	})
}

// Clear handles cache clear request
// @Summary Clear all cache
// @Description Clear all cached registry and filings data
// @Tags Cache
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	requestID := c.GetString("request_id")

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to clear cache",
		})
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared")

	c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Cache cleared successfully",
		"success":   true,
		"timestamp": time.Now(),
	})
}

// DeleteSubject handles deletion of one cached subject detail
// @Summary Delete a cached subject
// @Description Remove one economic subject from the detail cache
// @Tags Cache
// @Param ico path string true "Business identifier to evict"
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /cache/subject/{ico} [delete]
func (h *CacheHandler) DeleteSubject(c *gin.Context) {
	requestID := c.GetString("request_id")

	ico := utils.NormalizeICO(c.Param("ico"))
	if !utils.IsValidICO(ico) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "ICO must be up to 8 digits",
		})
		return
	}

	if err := h.cacheService.Delete(c.Request.Context(), "ares", "detail", ico); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"ico":        ico,
			"error":      err.Error(),
		}).Error("Failed to evict subject from cache")

		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to delete from cache",
		})
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"message":   "Subject evicted from cache",
		"ico":       ico,
		"success":   true,
		"timestamp": time.Now(),
	})
}
