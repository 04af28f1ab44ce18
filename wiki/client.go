package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/olgasafonova/wikipedia-edit-tracker/metrics"
)

// Client handles communication with the MediaWiki action API
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new Wikipedia API client
func NewClient(config *Config, logger *slog.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		logger: logger,
	}
}

// apiRequest issues a single GET to the action API and decodes the JSON
// envelope. There is no retry loop: a lookup either completes on the first
// attempt or fails with a RequestError.
func (c *Client) apiRequest(ctx context.Context, action string, params url.Values) (map[string]interface{}, error) {
	params.Set("action", action)
	params.Set("format", "json")

	start := time.Now()
	result, err := c.doGet(ctx, params)
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordAPICall(action, duration, false)
		return nil, err
	}

	// The API reports its own failures in-band
	if errObj, ok := result["error"].(map[string]interface{}); ok {
		code := getString(errObj, "code")
		info := getString(errObj, "info")
		metrics.RecordAPICall(action, duration, false)
		return nil, &RequestError{
			Op:  action,
			Err: fmt.Errorf("API error [%s]: %s", code, info),
		}
	}

	metrics.RecordAPICall(action, duration, true)
	return result, nil
}

func (c *Client) doGet(ctx context.Context, params url.Values) (map[string]interface{}, error) {
	reqURL := c.config.BaseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &RequestError{Op: "request", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("API request failed",
			"url", c.config.BaseURL,
			"error", err)
		return nil, &RequestError{Op: "request", Err: err}
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, &RequestError{Op: "read", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("API returned non-OK status",
			"status", resp.StatusCode)
		return nil, &RequestError{
			Op:  "request",
			Err: fmt.Errorf("API returned status %d: %s", resp.StatusCode, truncateBody(body)),
		}
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &RequestError{
			Op:  "decode",
			Err: fmt.Errorf("invalid response from Wikipedia API: %w", err),
		}
	}

	return result, nil
}

// truncateBody keeps error messages readable when the server returns HTML
func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
