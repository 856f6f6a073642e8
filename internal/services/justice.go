package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/config"
	"github.com/gtdn/registry-api/internal/models"
	"github.com/gtdn/registry-api/internal/parsers"
	"github.com/gtdn/registry-api/internal/utils"
)

// textResponseLimit caps the extracted text returned (and cached) per
// document; filed documents can run to hundreds of pages
const textResponseLimit = 10000

// JusticeService aggregates the justice.cz filings registry: the same
// validate, cache, throttle, fetch, parse, store pipeline as the ARES side,
// but over file downloads instead of a JSON API. Filed documents are
// immutable, so parsed documents cache for a day and CSV imports for half a
// day.
type JusticeService struct {
	cfg       config.JusticeConfig
	client    JusticeClientInterface
	pdfParser *parsers.DocumentParser
	csvParser *parsers.CompanyCSVParser
	cache     CacheServiceInterface
	throttle  ThrottleInterface
	logger    *logrus.Logger
}

// NewJusticeService creates a new filings aggregation service
func NewJusticeService(cfg config.JusticeConfig, client JusticeClientInterface, cache CacheServiceInterface, throttle ThrottleInterface, logger *logrus.Logger) JusticeServiceInterface {
	return &JusticeService{
		cfg:       cfg,
		client:    client,
		pdfParser: parsers.NewDocumentParser(),
		csvParser: parsers.NewCompanyCSVParser(),
		cache:     cache,
		throttle:  throttle,
		logger:    logger,
	}
}

// GetDocument downloads, parses and classifies a filed PDF document
func (s *JusticeService) GetDocument(ctx context.Context, ico, documentID string) (*models.CourtDocument, error) {
	start := time.Now()

	normalized := utils.NormalizeICO(ico)
	if !utils.IsValidICO(normalized) {
		return nil, &ValidationError{Message: "ICO must be 8 digits."}
	}
	if documentID == "" {
		return nil, &ValidationError{Message: "document_id is required."}
	}

	logger := s.logger.WithFields(logrus.Fields{
		"operation":   "document",
		"ico":         normalized,
		"document_id": documentID,
	})

	if cached, err := s.cache.Get(ctx, justiceServiceName, "doc", normalized, documentID); err == nil {
		var document models.CourtDocument
		if err := json.Unmarshal([]byte(cached), &document); err == nil {
			logger.WithField("duration", time.Since(start)).Info("Document served from cache")
			return &document, nil
		}
		logger.WithError(err).Warn("Failed to unmarshal cached document")
	}

	if !s.throttle.Allow(ctx) {
		return nil, s.rateLimitError()
	}

	pdfBytes, sourceURL, err := s.client.DownloadDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	text, err := s.pdfParser.ExtractText(pdfBytes)
	if err != nil {
		return nil, err
	}
	tables, err := s.pdfParser.ExtractTables(pdfBytes)
	if err != nil {
		return nil, err
	}

	document := &models.CourtDocument{
		Ico:          normalized,
		DocumentID:   documentID,
		DocumentType: s.pdfParser.ClassifyType(text),
		TextContent:  truncateRunes(text, textResponseLimit),
		Tables:       tables,
		TableCount:   len(tables),
		SourceURL:    sourceURL,
	}

	if encoded, err := json.Marshal(document); err == nil {
		if err := s.cache.Set(ctx, string(encoded), s.cfg.DocumentCacheTTL, justiceServiceName, "doc", normalized, documentID); err != nil {
			logger.WithError(err).Warn("Failed to cache document")
		}
	}

	logger.WithFields(logrus.Fields{
		"duration": time.Since(start),
		"type":     document.DocumentType,
		"tables":   document.TableCount,
	}).Info("Document parsed")
	return document, nil
}

// ImportCompaniesCSV downloads and parses a company CSV export from the open
// data portal
func (s *JusticeService) ImportCompaniesCSV(ctx context.Context, datasetURL string) ([]models.CompanyCSVRecord, error) {
	start := time.Now()

	if err := validateDatasetURL(datasetURL); err != nil {
		return nil, err
	}

	hash, err := s.cache.HashParams(map[string]string{"url": datasetURL})
	if err != nil {
		return nil, err
	}

	logger := s.logger.WithFields(logrus.Fields{
		"operation": "csv_import",
		"hash":      hash,
	})

	if cached, err := s.cache.Get(ctx, justiceServiceName, "csv", hash); err == nil {
		var records []models.CompanyCSVRecord
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			logger.WithField("duration", time.Since(start)).Info("CSV import served from cache")
			return records, nil
		}
		logger.WithError(err).Warn("Failed to unmarshal cached csv records")
	}

	if !s.throttle.Allow(ctx) {
		return nil, s.rateLimitError()
	}

	raw, err := s.client.DownloadCSV(ctx, datasetURL)
	if err != nil {
		return nil, err
	}

	records, err := s.csvParser.ParseAll(raw)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, string(encoded), s.cfg.CSVCacheTTL, justiceServiceName, "csv", hash); err != nil {
			logger.WithError(err).Warn("Failed to cache csv records")
		}
	}

	logger.WithFields(logrus.Fields{
		"duration": time.Since(start),
		"records":  len(records),
	}).Info("CSV import completed")
	return records, nil
}

// Health returns service health status
func (s *JusticeService) Health() map[string]interface{} {
	return map[string]interface{}{
		"status":   "healthy",
		"upstream": s.cfg.BaseURL,
	}
}

func (s *JusticeService) rateLimitError() *ExternalAPIError {
	return &ExternalAPIError{
		Message:    "Justice rate limit reached. Please try again in a minute.",
		StatusCode: http.StatusTooManyRequests,
		Service:    justiceServiceName,
	}
}

func validateDatasetURL(datasetURL string) error {
	if datasetURL == "" {
		return &ValidationError{Message: "dataset_url is required."}
	}
	parsed, err := url.Parse(datasetURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return &ValidationError{Message: "dataset_url must be an absolute http(s) URL."}
	}
	return nil
}

// truncateRunes caps s at limit runes without splitting a multi-byte character
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
