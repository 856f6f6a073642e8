package services

import (
	"context"
	"time"

	"github.com/gtdn/registry-api/internal/models"
)

// AresServiceInterface defines the interface for the business registry service
type AresServiceInterface interface {
	// Search runs a registry search and returns the normalized result
	Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error)

	// GetByICO returns one economic subject by business identifier
	GetByICO(ctx context.Context, ico string) (*models.EconomicSubject, error)

	// GetBatch looks up several subjects concurrently
	GetBatch(ctx context.Context, icos []string) ([]models.BatchSubjectResult, error)

	// Health returns service health status
	Health() map[string]interface{}
}

// JusticeServiceInterface defines the interface for the court filings service
type JusticeServiceInterface interface {
	// GetDocument downloads, parses and classifies a filed PDF document
	GetDocument(ctx context.Context, ico, documentID string) (*models.CourtDocument, error)

	// ImportCompaniesCSV downloads and parses a company CSV export
	ImportCompaniesCSV(ctx context.Context, datasetURL string) ([]models.CompanyCSVRecord, error)

	// Health returns service health status
	Health() map[string]interface{}
}

// CacheServiceInterface defines the interface for the namespaced cache
type CacheServiceInterface interface {
	// Get retrieves a value by namespaced key parts
	Get(ctx context.Context, namespace string, keyParts ...string) (string, error)

	// Set stores a value under namespaced key parts with a TTL
	Set(ctx context.Context, value string, ttl time.Duration, namespace string, keyParts ...string) error

	// Delete removes a value from cache
	Delete(ctx context.Context, namespace string, keyParts ...string) error

	// Clear clears all cache entries
	Clear(ctx context.Context) error

	// HashParams computes a stable 16-character digest of arbitrary parameters
	HashParams(params interface{}) (string, error)

	// GetStats returns cache statistics
	GetStats(ctx context.Context) (map[string]interface{}, error)

	// Health returns cache health status
	Health() map[string]interface{}
}

// ThrottleInterface defines the interface for the shared outbound throttle
type ThrottleInterface interface {
	// Allow reports whether another upstream call fits in the current window
	Allow(ctx context.Context) bool
}

// AresClientInterface defines the interface for the raw ARES HTTP client
type AresClientInterface interface {
	// Search performs POST /vyhledat with the native request body
	Search(ctx context.Context, body models.AresSearchRequest) (*models.AresSearchResponse, error)

	// GetByICO performs GET /{ico}
	GetByICO(ctx context.Context, ico string) (*models.AresEconomicSubject, error)
}

// JusticeClientInterface defines the interface for the raw justice.cz client
type JusticeClientInterface interface {
	// DownloadCSV fetches a CSV dataset from the open data portal
	DownloadCSV(ctx context.Context, datasetURL string) ([]byte, error)

	// DownloadDocument fetches a PDF from the document collection and returns
	// its bytes and source URL
	DownloadDocument(ctx context.Context, documentID string) ([]byte, string, error)
}
