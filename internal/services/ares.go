package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gtdn/registry-api/internal/config"
	"github.com/gtdn/registry-api/internal/models"
	"github.com/gtdn/registry-api/internal/translator"
	"github.com/gtdn/registry-api/internal/utils"
)

// batchConcurrency bounds parallel subject lookups within one batch request
const batchConcurrency = 5

// AresService aggregates the ARES business registry: validate, cache lookup,
// throttle, fetch, translate, cache store, return.
type AresService struct {
	cfg      config.AresConfig
	client   AresClientInterface
	cache    CacheServiceInterface
	throttle ThrottleInterface
	logger   *logrus.Logger
}

// NewAresService creates a new ARES aggregation service
func NewAresService(cfg config.AresConfig, client AresClientInterface, cache CacheServiceInterface, throttle ThrottleInterface, logger *logrus.Logger) AresServiceInterface {
	return &AresService{
		cfg:      cfg,
		client:   client,
		cache:    cache,
		throttle: throttle,
		logger:   logger,
	}
}

// Search runs a registry search and returns the normalized result. Each
// subject embedded in a fresh result is also stored under its own detail key,
// so a follow-up detail lookup skips the upstream entirely.
func (s *AresService) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResult, error) {
	start := time.Now()

	body := translator.ToSearchRequest(query)
	hash, err := s.cache.HashParams(body)
	if err != nil {
		return nil, err
	}

	logger := s.logger.WithFields(logrus.Fields{
		"operation": "search",
		"hash":      hash,
	})

	if cached, err := s.cache.Get(ctx, aresServiceName, "search", hash); err == nil {
		var result models.SearchResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			logger.WithField("duration", time.Since(start)).Info("Search served from cache")
			return &result, nil
		}
		logger.WithError(err).Warn("Failed to unmarshal cached search result")
	}

	if !s.throttle.Allow(ctx) {
		return nil, s.rateLimitError()
	}

	raw, err := s.client.Search(ctx, body)
	if err != nil {
		return nil, err
	}

	result := translator.ParseSearchResult(*raw)

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, string(encoded), s.cfg.SearchCacheTTL, aresServiceName, "search", hash); err != nil {
			logger.WithError(err).Warn("Failed to cache search result")
		}
	}
	s.prewarmDetails(ctx, result.EconomicSubjects, logger)

	logger.WithFields(logrus.Fields{
		"duration": time.Since(start),
		"total":    result.TotalCount,
	}).Info("Search completed")
	return &result, nil
}

// prewarmDetails stores every subject from a search result under its detail
// cache key
func (s *AresService) prewarmDetails(ctx context.Context, subjects []models.EconomicSubject, logger *logrus.Entry) {
	for _, subject := range subjects {
		if subject.IcoID == "" {
			continue
		}
		encoded, err := json.Marshal(subject)
		if err != nil {
			continue
		}
		if err := s.cache.Set(ctx, string(encoded), s.cfg.DetailCacheTTL, aresServiceName, "detail", subject.IcoID); err != nil {
			logger.WithFields(logrus.Fields{
				"ico_id": subject.IcoID,
				"error":  err.Error(),
			}).Warn("Failed to pre-warm detail cache")
		}
	}
}

// GetByICO returns one economic subject by business identifier. The
// identifier is zero-padded to 8 digits and validated before anything else;
// a malformed identifier never reaches the upstream.
func (s *AresService) GetByICO(ctx context.Context, ico string) (*models.EconomicSubject, error) {
	start := time.Now()

	normalized := utils.NormalizeICO(ico)
	if !utils.IsValidICO(normalized) {
		return nil, &ValidationError{Message: "ICO must be 8 digits."}
	}

	logger := s.logger.WithFields(logrus.Fields{
		"operation": "detail",
		"ico":       normalized,
	})

	if cached, err := s.cache.Get(ctx, aresServiceName, "detail", normalized); err == nil {
		var subject models.EconomicSubject
		if err := json.Unmarshal([]byte(cached), &subject); err == nil {
			logger.WithField("duration", time.Since(start)).Info("Detail served from cache")
			return &subject, nil
		}
		logger.WithError(err).Warn("Failed to unmarshal cached subject")
	}

	if !s.throttle.Allow(ctx) {
		return nil, s.rateLimitError()
	}

	raw, err := s.client.GetByICO(ctx, normalized)
	if err != nil {
		return nil, err
	}

	subject := translator.ParseEconomicSubject(*raw)

	if encoded, err := json.Marshal(subject); err == nil {
		if err := s.cache.Set(ctx, string(encoded), s.cfg.DetailCacheTTL, aresServiceName, "detail", normalized); err != nil {
			logger.WithError(err).Warn("Failed to cache subject")
		}
	}

	logger.WithField("duration", time.Since(start)).Info("Detail lookup completed")
	return &subject, nil
}

// GetBatch looks up several subjects concurrently. Per-subject failures land
// in the corresponding result entry instead of failing the whole batch.
func (s *AresService) GetBatch(ctx context.Context, icos []string) ([]models.BatchSubjectResult, error) {
	results := make([]models.BatchSubjectResult, len(icos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for i, ico := range icos {
		i, ico := i, ico
		g.Go(func() error {
			subject, err := s.GetByICO(gctx, ico)
			if err != nil {
				results[i] = models.BatchSubjectResult{Ico: ico, Success: false, Error: err.Error()}
				return nil
			}
			results[i] = models.BatchSubjectResult{Ico: ico, Success: true, Data: subject}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Health returns service health status
func (s *AresService) Health() map[string]interface{} {
	return map[string]interface{}{
		"status":   "healthy",
		"upstream": s.cfg.BaseURL,
	}
}

func (s *AresService) rateLimitError() *ExternalAPIError {
	return &ExternalAPIError{
		Message:    "ARES rate limit reached. Please try again in a minute.",
		StatusCode: http.StatusTooManyRequests,
		Service:    aresServiceName,
	}
}
