package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/config"
	"github.com/gtdn/registry-api/internal/models"
)

const aresServiceName = "ares"

// aresStatusMessages maps upstream HTTP statuses to caller-facing messages
var aresStatusMessages = map[int]string{
	http.StatusBadRequest:      "Invalid request parameters",
	http.StatusNotFound:        "Economic subject not found",
	http.StatusTooManyRequests: "Too many requests. Please try again later.",
}

// AresClient is the raw HTTP transport to the ARES business registry. It is
// constructed once and shared; the underlying http.Client pools connections
// and is safe for concurrent use.
type AresClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAresClient creates a new ARES client
func NewAresClient(cfg config.AresConfig, logger *logrus.Logger) AresClientInterface {
	return &AresClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Search performs POST /vyhledat with the native request body
func (c *AresClient) Search(ctx context.Context, body models.AresSearchRequest) (*models.AresSearchResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/vyhledat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("ARES search transport failure")
		return nil, c.unreachableError()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.mapError(resp.StatusCode)
	}

	var result models.AresSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &result, nil
}

// GetByICO performs GET /{ico}
func (c *AresClient) GetByICO(ctx context.Context, ico string) (*models.AresEconomicSubject, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+ico, nil)
	if err != nil {
		return nil, fmt.Errorf("building detail request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("ARES detail transport failure")
		return nil, c.unreachableError()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.mapError(resp.StatusCode)
	}

	var subject models.AresEconomicSubject
	if err := json.NewDecoder(resp.Body).Decode(&subject); err != nil {
		return nil, fmt.Errorf("decoding detail response: %w", err)
	}
	return &subject, nil
}

// mapError translates a non-2xx upstream status into a typed error
func (c *AresClient) mapError(status int) *ExternalAPIError {
	message, ok := aresStatusMessages[status]
	if !ok {
		message = "ARES service is temporarily unavailable"
	}
	return &ExternalAPIError{
		Message:    message,
		StatusCode: status,
		Service:    aresServiceName,
	}
}

func (c *AresClient) unreachableError() *ExternalAPIError {
	return &ExternalAPIError{
		Message: "Unable to connect to ARES service",
		Service: aresServiceName,
	}
}
