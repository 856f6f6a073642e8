package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/config"
)

const justiceServiceName = "justice"

// JusticeClient downloads CSV exports and PDF documents from the justice.cz
// registry. Downloaded bytes are handed straight to the parsers and never
// cached raw.
type JusticeClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
	maxBytes   int64
}

// NewJusticeClient creates a new justice.cz client
func NewJusticeClient(cfg config.JusticeConfig, logger *logrus.Logger) JusticeClientInterface {
	return &JusticeClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:   logger,
		maxBytes: int64(cfg.MaxPDFSizeMB) * 1024 * 1024,
	}
}

// DownloadCSV fetches a CSV dataset from the open data portal. The dataset
// URL is caller-supplied; exports live on a separate host from the document
// collection.
func (c *JusticeClient) DownloadCSV(ctx context.Context, datasetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, datasetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building csv request: %w", err)
	}
	req.Header.Set("User-Agent", clientUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("Justice CSV transport failure")
		return nil, &ExternalAPIError{
			Message: "Justice open data unavailable",
			Service: justiceServiceName,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ExternalAPIError{
			Message:    "Justice open data unavailable",
			StatusCode: resp.StatusCode,
			Service:    justiceServiceName,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ExternalAPIError{
			Message: "Justice open data unavailable",
			Service: justiceServiceName,
		}
	}
	return data, nil
}

// DownloadDocument fetches a PDF from the document collection. The declared
// content type must indicate PDF and the body must fit the size ceiling.
func (c *JusticeClient) DownloadDocument(ctx context.Context, documentID string) ([]byte, string, error) {
	url := fmt.Sprintf("%s/ias/content/download?id=%s", c.baseURL, documentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building document request: %w", err)
	}
	req.Header.Set("User-Agent", clientUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warn("Justice document transport failure")
		return nil, "", &ExternalAPIError{
			Message: "Justice document download failed",
			Service: justiceServiceName,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &ExternalAPIError{
			Message:    "Justice document download failed",
			StatusCode: resp.StatusCode,
			Service:    justiceServiceName,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "pdf") {
		return nil, "", &ExternalAPIError{
			Message: fmt.Sprintf("Expected PDF, got: %s", contentType),
			Service: justiceServiceName,
		}
	}

	if resp.ContentLength > 0 && resp.ContentLength > c.maxBytes {
		return nil, "", &PayloadTooLargeError{
			SizeMB:  int(resp.ContentLength / (1024 * 1024)),
			LimitMB: int(c.maxBytes / (1024 * 1024)),
		}
	}

	// Read one byte past the ceiling so truncated-at-the-limit bodies are
	// distinguishable from oversize ones when Content-Length is absent.
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, "", &ExternalAPIError{
			Message: "Justice document download failed",
			Service: justiceServiceName,
		}
	}
	if int64(len(data)) > c.maxBytes {
		return nil, "", &PayloadTooLargeError{
			SizeMB:  int(int64(len(data)) / (1024 * 1024)),
			LimitMB: int(c.maxBytes / (1024 * 1024)),
		}
	}

	return data, url, nil
}

const clientUserAgent = "GTDN-Backend/1.0"
