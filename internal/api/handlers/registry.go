package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/models"
	"github.com/gtdn/registry-api/internal/services"
)

// RegistryHandler handles business registry requests
type RegistryHandler struct {
	aresService services.AresServiceInterface
	logger      *logrus.Logger
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(aresService services.AresServiceInterface, logger *logrus.Logger) *RegistryHandler {
	return &RegistryHandler{
		aresService: aresService,
		logger:      logger,
	}
}

// Search handles registry search requests
// @Summary Search economic subjects
// @Description Search the ARES business registry by name, identifiers, legal form or location
// @Tags Registry
// @Accept json
// @Produce json
// @Param request body models.SearchQuery true "Search criteria"
// @Success 200 {object} models.SearchResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /registry/search [post]
func (h *RegistryHandler) Search(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	var query models.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid search request")

		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid search parameters: " + err.Error(),
		})
		return
	}

	result, err := h.aresService.Search(c.Request.Context(), query)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"duration":   time.Since(start),
		}).Error("Registry search failed")

		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"total_count": result.TotalCount,
		"duration":    time.Since(start),
	}).Info("Registry search completed")

	c.JSON(http.StatusOK, result)
}

// GetSubject handles single subject lookup
// @Summary Get economic subject
// @Description Retrieve one economic subject by its business identifier (ICO)
// @Tags Registry
// @Produce json
// @Param ico path string true "Business identifier, up to 8 digits" example(00006947)
// @Success 200 {object} models.EconomicSubject
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /registry/subject/{ico} [get]
func (h *RegistryHandler) GetSubject(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")
	ico := c.Param("ico")

	subject, err := h.aresService.GetByICO(c.Request.Context(), ico)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"ico":        ico,
			"error":      err.Error(),
			"duration":   time.Since(start),
		}).Warn("Subject lookup failed")

		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"ico":        subject.IcoID,
		"duration":   time.Since(start),
	}).Info("Subject lookup completed")

	c.JSON(http.StatusOK, subject)
}

// GetSubjectBatch handles batch subject lookup
// @Summary Get multiple economic subjects
// @Description Retrieve several economic subjects concurrently by their identifiers
// @Tags Registry
// @Accept json
// @Produce json
// @Param request body models.BatchSubjectRequest true "Batch lookup request"
// @Success 200 {object} models.BatchSubjectResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /registry/subject/batch [post]
func (h *RegistryHandler) GetSubjectBatch(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	var request models.BatchSubjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid batch request: " + err.Error(),
		})
		return
	}

	results, err := h.aresService.GetBatch(c.Request.Context(), request.Icos)
	if err != nil {
		respondError(c, err)
		return
	}

	successCount := 0
	for _, result := range results {
		if result.Success {
			successCount++
		}
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"total":      len(results),
		"success":    successCount,
		"duration":   time.Since(start),
	}).Info("Batch subject lookup completed")

	c.JSON(http.StatusOK, models.BatchSubjectResponse{
		Results: results,
		Total:   len(results),
		Success: successCount,
		Errors:  len(results) - successCount,
	})
}
