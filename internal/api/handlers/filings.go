package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/models"
	"github.com/gtdn/registry-api/internal/services"
)

// FilingsHandler handles court filings requests
type FilingsHandler struct {
	justiceService services.JusticeServiceInterface
	logger         *logrus.Logger
}

// NewFilingsHandler creates a new filings handler
func NewFilingsHandler(justiceService services.JusticeServiceInterface, logger *logrus.Logger) *FilingsHandler {
	return &FilingsHandler{
		justiceService: justiceService,
		logger:         logger,
	}
}

// GetDocument handles document retrieval requests
// @Summary Get a filed document
// @Description Download a PDF from the court filings collection, extract its text and tables and classify it
// @Tags Filings
// @Produce json
// @Param ico query string true "Business identifier of the filing subject" example(00006947)
// @Param document_id query string true "Document identifier in the filings collection"
// @Success 200 {object} models.CourtDocument
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /filings/document [get]
func (h *FilingsHandler) GetDocument(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	ico := c.Query("ico")
	documentID := c.Query("document_id")

	document, err := h.justiceService.GetDocument(c.Request.Context(), ico, documentID)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"ico":         ico,
			"document_id": documentID,
			"error":       err.Error(),
			"duration":    time.Since(start),
		}).Warn("Document retrieval failed")

		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id":    requestID,
		"ico":           document.Ico,
		"document_id":   document.DocumentID,
		"document_type": document.DocumentType,
		"tables":        document.TableCount,
		"duration":      time.Since(start),
	}).Info("Document retrieval completed")

	c.JSON(http.StatusOK, document)
}

// SearchCompanies handles company CSV import requests
// @Summary Import a company CSV export
// @Description Download a company CSV dataset from the open data portal and return the parsed records
// @Tags Filings
// @Produce json
// @Param dataset_url query string true "Absolute URL of the CSV dataset"
// @Success 200 {object} models.CompanyCSVResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /filings/search [get]
func (h *FilingsHandler) SearchCompanies(c *gin.Context) {
	start := time.Now()
	requestID := c.GetString("request_id")

	datasetURL := c.Query("dataset_url")

	records, err := h.justiceService.ImportCompaniesCSV(c.Request.Context(), datasetURL)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"dataset_url": datasetURL,
			"error":       err.Error(),
			"duration":    time.Since(start),
		}).Warn("Company CSV import failed")

		respondError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"records":    len(records),
		"duration":   time.Since(start),
	}).Info("Company CSV import completed")

	c.JSON(http.StatusOK, models.CompanyCSVResponse{
		Records: records,
		Total:   len(records),
	})
}
