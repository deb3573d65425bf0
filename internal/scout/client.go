// Package scout is the polling watcher: it periodically fetches live
// matches and comeback alerts from the backend, detects new alerts by
// list-length growth, and surfaces them through the notify side channels.
package scout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/comebackscout/comeback-scout/internal/models"
)

// Client is the outbound HTTP client for the Comeback Scout API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates an API client with rate limiting.
func NewClient(baseURL string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 2),
		logger:     logger,
	}
}

// LiveMatches fetches the current live-match collection.
func (c *Client) LiveMatches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := c.do(ctx, http.MethodGet, "/api/matches/live", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Alerts fetches the current alert collection, newest first.
func (c *Client) Alerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := c.do(ctx, http.MethodGet, "/api/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// CheckComebacks asks the backend to recompute comeback evaluations.
// Returns the number of alerts the sweep created.
func (c *Client) CheckComebacks(ctx context.Context) (int, error) {
	var out struct {
		AlertsCreated int `json:"alerts_created"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/matches/check-comebacks", &out); err != nil {
		return 0, err
	}
	return out.AlertsCreated, nil
}

// Superteams fetches the monitored-club registry.
func (c *Client) Superteams(ctx context.Context) ([]models.Superteam, error) {
	var teams []models.Superteam
	if err := c.do(ctx, http.MethodGet, "/api/superteams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// do performs a rate-limited request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
