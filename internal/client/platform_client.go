package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"product-spec-api/internal/metrics"
)

// Currency is the host platform's active shop currency.
type Currency struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// PlatformClient defines the interface for host platform communication
type PlatformClient interface {
	// GetCurrency fetches the shop's active currency.
	GetCurrency(ctx context.Context) (Currency, error)
}

// platformClient implements PlatformClient interface
type platformClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewPlatformClient creates a new host platform API client
func NewPlatformClient(baseURL string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) PlatformClient {
	return &platformClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// GetCurrency fetches the active shop currency from the platform
func (c *platformClient) GetCurrency(ctx context.Context) (Currency, error) {
	url := fmt.Sprintf("%s/api/internal/shop/currency", c.baseURL)

	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Currency{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(url, "GET", statusCode, duration, err)
	}

	if err != nil {
		c.logger.Warn("Failed to fetch shop currency",
			zap.Error(err),
			zap.Duration("duration", duration),
		)
		return Currency{}, fmt.Errorf("failed to fetch currency: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Platform returned non-success status for currency",
			zap.Int("status_code", resp.StatusCode),
		)
		return Currency{}, fmt.Errorf("platform returned status %d", resp.StatusCode)
	}

	var currency Currency
	if err := json.NewDecoder(resp.Body).Decode(&currency); err != nil {
		return Currency{}, fmt.Errorf("failed to decode currency response: %w", err)
	}
	return currency, nil
}
